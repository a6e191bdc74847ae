package ops

import (
	"fmt"
	"log/slog"
)

const echoLogPrefix = "ops:echo"

// Echo returns the message unchanged.
func Echo(message string) *Result {
	slog.Info(fmt.Sprintf("%s - message=%s", echoLogPrefix, message))

	return &Result{
		Status:    "success",
		Operation: OpEcho,
		Message:   message,
	}
}
