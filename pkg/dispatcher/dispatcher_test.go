package dispatcher

import (
	"encoding/json"
	"testing"

	"github.com/d6e/echo-stf/pkg/ops"
)

const dispatcherTestPrefix = "dispatcher:dispatcher_test"

func TestRequest_Unmarshal(t *testing.T) {
	raw := `{
		"workspace_id": "ws-1",
		"stf_id": "stf-echo",
		"caller": "user@example.com",
		"input": {"operation": "uppercase", "message": "hello"}
	}`

	var req Request
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("%s - failed to unmarshal: %v", dispatcherTestPrefix, err)
	}

	if req.WorkspaceID != "ws-1" {
		t.Errorf("%s - workspace_id = %v, want ws-1", dispatcherTestPrefix, req.WorkspaceID)
	}
	if req.Input == nil {
		t.Fatal(dispatcherTestPrefix + " - expected input, got nil")
	}
	if req.Input.Operation != "uppercase" {
		t.Errorf("%s - operation = %q, want uppercase", dispatcherTestPrefix, req.Input.Operation)
	}
	if req.Input.Message != "hello" {
		t.Errorf("%s - message = %q, want hello", dispatcherTestPrefix, req.Input.Message)
	}
}

// The metadata fields are opaque; non-string values must not fail decoding.
func TestRequest_MetadataAnyType(t *testing.T) {
	raw := `{"workspace_id": 42, "caller": {"id": "x"}, "input": {"message": "hi"}}`

	var req Request
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("%s - failed to unmarshal: %v", dispatcherTestPrefix, err)
	}
	if req.WorkspaceID != float64(42) {
		t.Errorf("%s - workspace_id = %v, want 42", dispatcherTestPrefix, req.WorkspaceID)
	}
	if req.STFID != nil {
		t.Errorf("%s - stf_id = %v, want nil", dispatcherTestPrefix, req.STFID)
	}
}

// The success envelope carries only the output key.
func TestEnvelope_SuccessShape(t *testing.T) {
	env := &Envelope{Output: ops.Echo("hi")}

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("%s - failed to marshal: %v", dispatcherTestPrefix, err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("%s - failed to unmarshal envelope: %v", dispatcherTestPrefix, err)
	}
	if len(decoded) != 1 {
		t.Errorf("%s - success envelope keys = %v, want only output", dispatcherTestPrefix, decoded)
	}
	if _, ok := decoded["output"]; !ok {
		t.Error(dispatcherTestPrefix + " - expected output key")
	}
	if !env.OK() {
		t.Error(dispatcherTestPrefix + " - expected OK()=true")
	}
}

// The failure envelope carries error and type, with no output wrapper.
func TestEnvelope_FailureShape(t *testing.T) {
	env := Failure(ops.NewError(ops.KindValue, "Message is required"))

	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("%s - failed to marshal: %v", dispatcherTestPrefix, err)
	}

	want := `{"error":"Message is required","type":"ValueError"}`
	if string(data) != want {
		t.Errorf("%s - envelope = %s, want %s", dispatcherTestPrefix, data, want)
	}
	if env.OK() {
		t.Error(dispatcherTestPrefix + " - expected OK()=false")
	}
}

type flakyStreamError struct{}

func (flakyStreamError) Error() string { return "stream closed" }

func TestFailure_CatchAllUsesTypeName(t *testing.T) {
	env := Failure(&flakyStreamError{})

	if env.Type != "flakyStreamError" {
		t.Errorf("%s - type = %q, want flakyStreamError", dispatcherTestPrefix, env.Type)
	}
	if env.Error != "Unexpected error: stream closed" {
		t.Errorf("%s - error = %q", dispatcherTestPrefix, env.Error)
	}
}

func TestFailure_OperationErrorKeepsKind(t *testing.T) {
	env := Failure(ops.NewError(ops.KindJSONDecode, "Invalid JSON input: boom"))

	if env.Type != "JSONDecodeError" {
		t.Errorf("%s - type = %q, want JSONDecodeError", dispatcherTestPrefix, env.Type)
	}
	if env.Error != "Invalid JSON input: boom" {
		t.Errorf("%s - error = %q", dispatcherTestPrefix, env.Error)
	}
}
