package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	missing := errors.New("API key is required")

	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("unknown flag: --regoin"),
			wantCode:    ExitUserError,
			wantMessage: "unknown flag: --regoin",
		},
		{
			name:        "config error",
			err:         NewConfigError("API_KEY environment variable not set", missing),
			wantCode:    ExitUserError,
			wantMessage: "API_KEY environment variable not set",
		},
		{
			name:        "system error",
			err:         NewSystemErrorWithCause("Clockify API Error: 503 - Service Unavailable", nil),
			wantCode:    ExitSystemError,
			wantMessage: "Clockify API Error: 503 - Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewSystemErrorWithCause("fetching current user failed", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}

	sentinel := errors.New("API key is required")
	cfgErr := NewConfigError("no API key configured", sentinel)
	if !errors.Is(cfgErr, sentinel) {
		t.Error("errors.Is should find config sentinel")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"ExitError user", NewUserError("bad input"), ExitUserError},
		{"ExitError config", NewConfigError("no key", nil), ExitUserError},
		{"ExitError system", NewSystemErrorWithCause("remote failed", nil), ExitSystemError},
		{"wrapped ExitError", fmt.Errorf("serve: %w", NewSystemErrorWithCause("boom", errors.New("eof"))), ExitSystemError},
		{"regular error defaults to user error", errors.New("some error"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
