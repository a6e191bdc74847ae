// Package stdio encodes and decodes the JSON documents exchanged on the
// process streams: one request in, one response envelope out.
package stdio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/d6e/echo-stf/pkg/dispatcher"
	"github.com/d6e/echo-stf/pkg/ops"
)

// ReadRequest consumes the entire stream and decodes it as one request
// document. Stream read failures are returned as-is; decode failures are
// returned as JSONDecodeError operation errors.
func ReadRequest(r io.Reader) (*dispatcher.Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeRequest(data)
}

// DecodeRequest decodes one JSON request document. The document must be a
// single JSON object at the top level; anything else (including valid JSON
// such as null or an array) is a JSONDecodeError.
func DecodeRequest(data []byte) (*dispatcher.Request, error) {
	trimmed := bytes.TrimSpace(data)

	var req dispatcher.Request
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, ops.NewError(ops.KindJSONDecode, fmt.Sprintf("Invalid JSON input: %s", decodeDiagnostic(err)))
	}
	// Unmarshal accepts a bare null into a struct without error.
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ops.NewError(ops.KindJSONDecode, "Invalid JSON input: top-level value is not a JSON object")
	}
	return &req, nil
}

// WriteEnvelope writes the envelope as a single compact JSON line.
func WriteEnvelope(w io.Writer, env *dispatcher.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// decodeDiagnostic renders the parse failure with its byte offset when the
// underlying error carries one.
func decodeDiagnostic(err error) string {
	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		return fmt.Sprintf("%s (offset %d)", synErr, synErr.Offset)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s (offset %d)", typeErr, typeErr.Offset)
	}
	return err.Error()
}
