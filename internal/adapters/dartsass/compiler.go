// Package dartsass runs the external Dart Sass executable.
package dartsass

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/sassbundle/internal/core/domain"
	"go.trai.ch/sassbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Compiler = (*Compiler)(nil)

// Compiler implements ports.Compiler by piping the input into `sass --stdin`.
type Compiler struct {
	binary string
	args   []string
	logger ports.Logger
}

// NewCompiler creates a Compiler invoking binary with extra args appended
// to every call.
func NewCompiler(binary string, args []string, logger ports.Logger) *Compiler {
	return &Compiler{
		binary: binary,
		args:   args,
		logger: logger,
	}
}

// Args returns the command line for req, without the executable.
func (c *Compiler) Args(req domain.CompileRequest) []string {
	style := "--style=expanded"
	if req.Compressed {
		style = "--style=compressed"
	}

	args := make([]string, 0, 3+len(req.LoadPaths)+len(c.args)+1)
	args = append(args, "--stdin", "--no-source-map", style)
	for _, p := range req.LoadPaths {
		args = append(args, "--load-path="+p)
	}
	args = append(args, c.args...)
	return append(args, req.OutputPath)
}

// Compile runs the compiler and returns req.OutputPath. Anything the
// compiler prints to stderr is logged as a warning.
func (c *Compiler) Compile(ctx context.Context, req domain.CompileRequest) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, c.Args(req)...) //nolint:gosec // binary comes from configuration
	cmd.Stdin = strings.NewReader(req.Input)

	var stderr bytes.Buffer
	stdoutLog := &logWriter{logger: c.logger}
	stderrLog := &logWriter{logger: c.logger}
	cmd.Stdout = stdoutLog
	cmd.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := cmd.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", zerr.Wrap(ctxErr, "compilation interrupted")
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", zerr.With(zerr.Wrap(domain.ErrCompilerStart, err.Error()), "binary", c.binary)
		}
		failure := zerr.Wrap(domain.ErrCompileFailed, strings.TrimSpace(stderr.String()))
		failure = zerr.With(failure, "exit_code", exitErr.ExitCode())
		return "", zerr.With(failure, "output", req.OutputPath)
	}

	return req.OutputPath, nil
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.logger.Warn(msg)
}
