package ops

import (
	"fmt"
	"log/slog"
)

const describeLogPrefix = "ops:describe"

// Describe returns the static input schema and the field requirements of
// every available operation. The data block is rebuilt from the operation
// table on each call but is fully deterministic.
func Describe() *Result {
	slog.Info(fmt.Sprintf("%s - returning input schema", describeLogPrefix))

	return &Result{
		Status:    "success",
		Operation: OpDescribe,
		Data:      describeData(),
	}
}

func describeData() *DescribeData {
	operations := make(map[string]OperationInfo, len(Operations))
	for name, def := range Operations {
		operations[name] = OperationInfo{
			Description: def.Description,
			Required:    def.Required,
			Optional:    def.Optional,
		}
	}

	return &DescribeData{
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]SchemaProperty{
				"operation": {
					Type:        "string",
					Enum:        Names(),
					Description: "The operation to perform",
				},
				"message": {
					Type:        "string",
					Description: "The message to process",
				},
			},
			Required: []string{"operation"},
		},
		Operations: operations,
	}
}
