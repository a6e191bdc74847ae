package ops

import (
	"fmt"
	"log/slog"
	"strings"
)

const lowercaseLogPrefix = "ops:lowercase"

// Lowercase converts the message to lowercase using Go's default Unicode
// case mapping (no locale parameter).
func Lowercase(message string) *Result {
	slog.Info(fmt.Sprintf("%s - message=%s", lowercaseLogPrefix, message))

	return &Result{
		Status:    "success",
		Operation: OpLowercase,
		Message:   strings.ToLower(message),
	}
}
