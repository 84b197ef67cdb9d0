package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "additional context",
			expected: "",
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			msg:      "additional context",
			expected: "additional context: original error",
		},
		{
			name:     "wrap with empty message",
			err:      errors.New("original error"),
			msg:      "",
			expected: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got.Error() != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got.Error())
			}
			if !errors.Is(got, tt.err) {
				t.Fatalf("wrapped error should match original via errors.Is")
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	base := errors.New("boom")

	got := Wrapf(base, "updating %s", "origin/linux")
	want := "updating origin/linux: boom"
	if got.Error() != want {
		t.Fatalf("expected %q, got %q", want, got.Error())
	}
	if !errors.Is(got, base) {
		t.Fatalf("wrapped error should match original via errors.Is")
	}

	if Wrapf(nil, "ignored %d", 1) != nil {
		t.Fatalf("Wrapf(nil, ...) should return nil")
	}
}
