// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/MKhiriev/go-bwenv/internal/logger"
)

// SessionEnv is the environment variable carrying the vault session token.
const SessionEnv = "BW_SESSION"

// waitDelay bounds how long Run waits for output pipes after the process is
// killed on cancellation.
const waitDelay = 2 * time.Second

type execRunner struct {
	binary  string
	session string
	timeout time.Duration
	environ func() []string

	logger *logger.Logger
}

// NewExecRunner returns a [Runner] that starts binary as a subprocess.
//
// Every child gets a copy of the parent environment with [SessionEnv] set to
// session. A positive timeout bounds each call.
func NewExecRunner(binary, session string, timeout time.Duration, logger *logger.Logger) Runner {
	return &execRunner{
		binary:  binary,
		session: session,
		timeout: timeout,
		environ: os.Environ,
		logger:  logger,
	}
}

func (r *execRunner) Run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	argv := append([]string{r.binary}, args...)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Env = childEnv(r.environ(), r.session)
	cmd.WaitDelay = waitDelay
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	event := r.logger.Debug().Strs("args", args).Dur("elapsed", time.Since(start))
	if err == nil {
		event.Msg("bw call finished")
		return stdout.Bytes(), nil
	}

	cmdErr := &CommandError{
		Args:     argv,
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr.String()),
	}

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		cmdErr.Err = ctx.Err()
	case errors.As(err, &exitErr):
		cmdErr.ExitCode = exitErr.ExitCode()
	default:
		cmdErr.Err = err
	}

	event.Int("exit_code", cmdErr.ExitCode).Msg("bw call failed")
	return nil, cmdErr
}

// childEnv copies parent and sets the session variable, dropping any
// inherited value.
func childEnv(parent []string, session string) []string {
	env := make([]string, 0, len(parent)+1)
	for _, kv := range parent {
		if strings.HasPrefix(kv, SessionEnv+"=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, SessionEnv+"="+session)
}
