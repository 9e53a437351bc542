package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidGrid, "bad grid %q", "0x3"),
			want: `INVALID_GRID: bad grid "0x3"`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeIO, stderrors.New("disk full"), "write state"),
			want: "IO_ERROR: write state: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeNoMorePanels, "advanced past last panel")

	if !Is(err, ErrCodeNoMorePanels) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNoSession) {
		t.Error("Is() should not match a different code")
	}
	if got := GetCode(err); got != ErrCodeNoMorePanels {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeNoMorePanels)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain error) = %q, want empty", got)
	}
}

func TestIsUnwrapsChain(t *testing.T) {
	inner := New(ErrCodeNonPositiveDim, "height is -2")
	outer := Wrap(ErrCodeIO, inner, "save figure 3")

	// The outermost code wins when matching.
	if !Is(outer, ErrCodeIO) {
		t.Error("Is() should report the outermost code")
	}
	// But the inner error is still reachable via errors.As semantics.
	var e *Error
	if !stderrors.As(stderrors.Unwrap(outer), &e) || e.Code != ErrCodeNonPositiveDim {
		t.Error("inner structured error should survive wrapping")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"usage", New(ErrCodeInvalidMargin, "three margins"), ExitUsage},
		{"session", New(ErrCodeNoSession, "no subplot information file"), ExitSession},
		{"layout", New(ErrCodeNonPositiveDim, "width <= 0"), ExitLayout},
		{"cursor", New(ErrCodeNoMorePanels, "exhausted"), ExitLayout},
		{"io", New(ErrCodeIO, "cannot write"), ExitIO},
		{"plain", stderrors.New("mystery"), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
