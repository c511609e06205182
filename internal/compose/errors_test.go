package compose

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := wrapError(CodeDownload, cause, "failed to download image: %s", "http://x/a.png")

	if got := CodeOf(err); got != CodeDownload {
		t.Errorf("CodeOf() = %q, want %q", got, CodeDownload)
	}
	if !IsClient(err) {
		t.Error("IsClient() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if got := UserMessage(err); got != "failed to download image: http://x/a.png" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestPlainErrorsAreNotClient(t *testing.T) {
	err := fmt.Errorf("out of memory")
	if IsClient(err) {
		t.Error("IsClient() = true for a plain error")
	}
	if CodeOf(err) != "" {
		t.Errorf("CodeOf() = %q, want empty", CodeOf(err))
	}
	// Wrapping a coded error keeps its code visible.
	wrapped := fmt.Errorf("combine: %w", newError(CodeDecode, "invalid image content at: http://x"))
	if CodeOf(wrapped) != CodeDecode {
		t.Errorf("CodeOf(wrapped) = %q, want %q", CodeOf(wrapped), CodeDecode)
	}
}
