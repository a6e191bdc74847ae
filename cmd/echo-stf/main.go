// Package main is the entrypoint for the echo-stf binary.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/d6e/echo-stf/internal/handler"
	"github.com/d6e/echo-stf/pkg/ops"
)

const usage = `Usage: echo-stf [command]
       echo-stf run       Process one request document from stdin (default).
       echo-stf schema    Print the describe schema and operation table.

Commands:
  run      (default) Read one JSON request from stdin, write one JSON response to stdout, exit 0 on success and 1 on any failure.
  schema   Print the data block returned by the describe operation.

Environment: STF_NAME (default echo-stf), LOG_LEVEL (default info), LOG_FORMAT (text or json). Logs go to stderr; stdout carries only the response document.
`

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 && args[0] != "" {
		cmd = args[0]
	}

	switch cmd {
	case "schema":
		if err := runSchema(); err != nil {
			log.Fatalf("echo-stf schema: %v", err)
		}
		return
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	case "run", "":
		// run (explicit or default)
		break
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q.\n%s", cmd, usage)
		os.Exit(1)
	}

	os.Exit(handler.Run())
}

func runSchema() error {
	result := ops.Describe()
	data, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
