package ops

import (
	"fmt"
	"log/slog"
	"strings"
)

const uppercaseLogPrefix = "ops:uppercase"

// Uppercase converts the message to uppercase using Go's default Unicode
// case mapping (no locale parameter).
func Uppercase(message string) *Result {
	slog.Info(fmt.Sprintf("%s - message=%s", uppercaseLogPrefix, message))

	return &Result{
		Status:    "success",
		Operation: OpUppercase,
		Message:   strings.ToUpper(message),
	}
}
