// Package handler orchestrates one request/response cycle: logging setup,
// reading the request from stdin, dispatch, writing the response to stdout.
package handler

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/d6e/echo-stf/internal/config"
	"github.com/d6e/echo-stf/pkg/dispatcher"
	"github.com/d6e/echo-stf/pkg/stdio"
)

const logPrefix = "handler:handler"

// Run processes exactly one request from stdin and writes exactly one
// response document to stdout. It returns the process exit code: 0 when
// the success envelope was written, 1 otherwise.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Even a config failure must produce a well-formed error envelope.
		slog.Error(fmt.Sprintf("%s - failed to load config: %v", logPrefix, err))
		if werr := stdio.WriteEnvelope(os.Stdout, dispatcher.Failure(err)); werr != nil {
			slog.Error(fmt.Sprintf("%s - failed to write output: %v", logPrefix, werr))
		}
		return 1
	}

	setupLogging(cfg)
	slog.Info(fmt.Sprintf("%s - service=%s starting", logPrefix, cfg.ServiceName))

	return Process(os.Stdin, os.Stdout)
}

// setupLogging configures the process-wide slog default. Stdout carries
// the response document, so all logging goes to stderr.
func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// Process runs one request/response cycle against the given streams and
// returns the exit code. Every failure mode still writes one complete
// error envelope before returning 1; log writes are best-effort and never
// preempt the output document.
func Process(r io.Reader, w io.Writer) int {
	runID := uuid.NewString()
	slog.Info(fmt.Sprintf("%s - run_id=%s reading input from stdin", logPrefix, runID))

	env := handle(r)

	if err := stdio.WriteEnvelope(w, env); err != nil {
		// Output stream is gone; nothing left to report to the caller.
		slog.Error(fmt.Sprintf("%s - run_id=%s failed to write output: %v", logPrefix, runID, err))
		return 1
	}

	if !env.OK() {
		slog.Error(fmt.Sprintf("%s - run_id=%s %s: %s", logPrefix, runID, env.Type, env.Error))
		return 1
	}
	slog.Info(fmt.Sprintf("%s - run_id=%s processing completed successfully", logPrefix, runID))
	return 0
}

func handle(r io.Reader) *dispatcher.Envelope {
	req, err := stdio.ReadRequest(r)
	if err != nil {
		return dispatcher.Failure(err)
	}

	slog.Info(fmt.Sprintf("%s - workspace_id=%v", logPrefix, req.WorkspaceID))
	slog.Info(fmt.Sprintf("%s - stf_id=%v", logPrefix, req.STFID))
	slog.Info(fmt.Sprintf("%s - caller=%v", logPrefix, req.Caller))

	return dispatcher.Dispatch(req.Input)
}
