// Package ops implements the operation table and the transform functions.
package ops

// Result is the operation-level payload wrapped into the output envelope.
type Result struct {
	Status    string        `json:"status"`
	Operation string        `json:"operation"`
	Message   string        `json:"message,omitempty"`
	Data      *DescribeData `json:"data,omitempty"`
}

// DescribeData is the static self-description returned by the describe operation.
type DescribeData struct {
	InputSchema InputSchema              `json:"input_schema"`
	Operations  map[string]OperationInfo `json:"operations"`
}

// InputSchema describes the accepted input document.
type InputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

// SchemaProperty describes a single input field.
type SchemaProperty struct {
	Type        string   `json:"type"`
	Enum        []string `json:"enum,omitempty"`
	Description string   `json:"description"`
}

// OperationInfo describes one operation's field requirements.
type OperationInfo struct {
	Description string   `json:"description"`
	Required    []string `json:"required"`
	Optional    []string `json:"optional"`
}

// Reported error kinds.
const (
	KindJSONDecode = "JSONDecodeError"
	KindValue      = "ValueError"
)

// Error is a typed operation failure carrying the reported error kind.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Type + ": " + e.Message
}

// NewError creates a new Error.
func NewError(kind, message string) *Error {
	return &Error{Type: kind, Message: message}
}
