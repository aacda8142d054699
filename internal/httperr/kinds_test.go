package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := ErrFailedPrecondition("slot_unavailable", "Slot no longer available.")
	if KindOf(err) != KindFailedPrecondition {
		t.Fatalf("expected failed_precondition, got %s", KindOf(err))
	}

	wrapped := fmt.Errorf("booking: %w", err)
	if KindOf(wrapped) != KindFailedPrecondition {
		t.Fatalf("kind must survive wrapping, got %s", KindOf(wrapped))
	}

	if KindOf(errors.New("boom")) != KindInternal {
		t.Fatalf("untyped errors default to internal")
	}
	if KindOf(nil) != "" {
		t.Fatalf("nil has no kind")
	}
}

func TestIsKindAndCode(t *testing.T) {
	err := ErrNotFound("slot_not_found", "Slot not found.")

	if !IsKind(err, KindNotFound) {
		t.Fatalf("IsKind miss")
	}
	if IsKind(err, KindInvalidArgument) {
		t.Fatalf("IsKind false positive")
	}
	if !IsCode(err, "slot_not_found") {
		t.Fatalf("IsCode miss")
	}
	if IsCode(errors.New("boom"), "slot_not_found") {
		t.Fatalf("IsCode must require a typed error")
	}
}
