// Package dispatcher routes incoming request documents to operations.
package dispatcher

import "github.com/d6e/echo-stf/pkg/ops"

// Request is the JSON envelope read from the input stream. The metadata
// fields are opaque and used only for logging; they accept any JSON type.
type Request struct {
	WorkspaceID any             `json:"workspace_id,omitempty"`
	STFID       any             `json:"stf_id,omitempty"`
	Caller      any             `json:"caller,omitempty"`
	Input       *OperationInput `json:"input,omitempty"`
}

// OperationInput is the caller-controlled part of the request.
type OperationInput struct {
	Operation string `json:"operation,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Envelope is the single JSON document written to the output stream:
// either the success shape {"output": ...} or the failure shape
// {"error": ..., "type": ...}, never both.
type Envelope struct {
	Output *ops.Result `json:"output,omitempty"`
	Error  string      `json:"error,omitempty"`
	Type   string      `json:"type,omitempty"`
}

// OK reports whether the envelope carries a success result.
func (e *Envelope) OK() bool {
	return e.Output != nil
}
