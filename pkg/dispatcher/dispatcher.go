package dispatcher

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/d6e/echo-stf/pkg/ops"
)

const logPrefix = "dispatcher:dispatch"

// Dispatch validates the operation input and routes it to the matching
// transform. The check order is load-bearing: describe bypasses the
// message requirement entirely, and a missing message is reported before
// an unknown operation name. An empty-string message counts as missing;
// a whitespace-only message does not.
func Dispatch(input *OperationInput) *Envelope {
	if input == nil {
		input = &OperationInput{}
	}

	operation := input.Operation
	if operation == "" {
		operation = ops.OpEcho
	}
	slog.Info(fmt.Sprintf("%s - operation=%s", logPrefix, operation))

	if operation == ops.OpDescribe {
		return success(ops.Describe())
	}

	if input.Message == "" {
		return Failure(ops.NewError(ops.KindValue, "Message is required"))
	}

	def, known := ops.Operations[operation]
	if !known {
		return Failure(ops.NewError(ops.KindValue, fmt.Sprintf("Unknown operation: %s", operation)))
	}

	return success(def.Transform(input.Message))
}

// Failure converts an error into the failure envelope. Typed operation
// errors keep their reported kind; anything else falls through to the
// catch-all shape with the error's own Go type name as the kind.
func Failure(err error) *Envelope {
	var opErr *ops.Error
	if errors.As(err, &opErr) {
		return &Envelope{Error: opErr.Message, Type: opErr.Type}
	}
	return &Envelope{
		Error: fmt.Sprintf("Unexpected error: %s", err),
		Type:  kindOf(err),
	}
}

func success(result *ops.Result) *Envelope {
	return &Envelope{Output: result}
}

// kindOf reports the concrete type name of err without package path or
// pointer marker, e.g. "SyntaxError" for *json.SyntaxError.
func kindOf(err error) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
