package compose

import (
	"fmt"
	"net/url"
	"strings"
)

// Request size bounds. More than four blocks would not fit the 2x2 grid.
const (
	MinItems = 1
	MaxItems = 4
)

// ValidateItems checks the request invariants: between MinItems and
// MaxItems entries, each with a caption that is non-empty after trimming
// and a well-formed http(s) URL. The first violation is returned as a
// CodeValidation error.
func ValidateItems(items []Item) error {
	if len(items) < MinItems || len(items) > MaxItems {
		return newError(CodeValidation, "provide between %d and %d items, got %d", MinItems, MaxItems, len(items))
	}
	for i, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			return newError(CodeValidation, "item %d: text must not be empty", i)
		}
		if err := validateImageURL(item.ImageURL); err != nil {
			return wrapError(CodeValidation, err, "item %d: invalid imageUrl %q", i, item.ImageURL)
		}
	}
	return nil
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
