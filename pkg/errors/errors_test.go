package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTopology, "unknown topology: %s", "staging")

	if err.Code != ErrCodeInvalidTopology {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidTopology)
	}
	if err.Message != "unknown topology: staging" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "INVALID_TOPOLOGY") {
		t.Errorf("Error() = %q, want code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeRenderFailed, cause, "render %s", "out.png")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if got := err.Error(); !strings.Contains(got, "disk full") {
		t.Errorf("Error() = %q, want cause included", got)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodeDanglingEdge, "edge a->b"), ErrCodeDanglingEdge, true},
		{"DifferentCode", New(ErrCodeDanglingEdge, "edge a->b"), ErrCodeDuplicateNode, false},
		{"WrappedInStdError", fmt.Errorf("outer: %w", New(ErrCodeNotFound, "gone")), ErrCodeNotFound, true},
		{"PlainError", stderrors.New("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %s, want %s", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad flag")); got != "bad flag" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}
