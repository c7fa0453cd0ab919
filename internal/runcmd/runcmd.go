// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package runcmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ErrEmptyArgv is returned by Run when given an empty argument vector.
var ErrEmptyArgv = errors.New("runcmd: argv must have at least one element")

// Result is the outcome of running a child process to completion (or to
// its timeout).
type Result struct {
	// Stdout and Stderr hold the child's output, split into lines with
	// any CRLF line endings normalized to LF.
	Stdout []string
	Stderr []string

	// ExitCode is the child's exit status. It is meaningless when
	// TimedOut is true, since a killed process has no exit status of its
	// own.
	ExitCode int

	// TimedOut reports whether ctx's deadline was reached before the
	// child exited, in which case the child was sent SIGKILL.
	TimedOut bool
}

// Run executes argv[0] with the remaining elements of argv as its
// arguments, directly via exec(3) with no intervening shell, matching
// np_runcmd in the C original. The child's environment is reduced to
// LC_ALL=C plus an explicitly empty PATH, so locale-dependent output
// parsing downstream is never surprised by the operator's shell
// environment and the child never inherits the parent's PATH, and its
// core-dump rlimit is zeroed so a crashing child never leaves a dump file
// behind.
//
// ctx governs the child's lifetime: when ctx is done, the child is sent
// SIGKILL and Result.TimedOut is set. Run itself never returns ctx's
// error; callers that care should check ctx.Err() or Result.TimedOut.
func Run(ctx context.Context, argv []string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, ErrEmptyArgv
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = scrubbedEnv()

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("runcmd: stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Result{}, fmt.Errorf("runcmd: stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("runcmd: start: %w", err)
	}

	// Best effort: a child that exits before this lands, or a kernel that
	// refuses prlimit on a process we don't own (can't happen here, same
	// uid), just means the child keeps the parent's inherited rlimit.
	_ = zeroCoreDumpLimit(cmd.Process.Pid)

	stdoutCh := make(chan []string, 1)
	stderrCh := make(chan []string, 1)
	go func() { stdoutCh <- captureLines(stdoutPipe) }()
	go func() { stderrCh <- captureLines(stderrPipe) }()

	waitErr := cmd.Wait()

	res := Result{
		Stdout: <-stdoutCh,
		Stderr: <-stderrCh,
	}

	if ctx.Err() != nil {
		res.TimedOut = true
		return res, nil
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("runcmd: wait: %w", waitErr)
	}

	return res, nil
}

// scrubbedEnv returns the environment passed to the child: LC_ALL=C so
// that locale-dependent tools (notably ping(1) on systems where this
// package shells out rather than using the raw-socket engine) produce
// output in a fixed, parseable format, plus an explicitly empty PATH so
// the child never inherits the operator's PATH. A bare argv[0] is
// resolved inside Run by exec.CommandContext, via exec.LookPath against
// the parent's own PATH; the child itself has no PATH to fall back on.
func scrubbedEnv() []string {
	return []string{
		"LC_ALL=C",
		"PATH=",
	}
}

// zeroCoreDumpLimit sets pid's RLIMIT_CORE to zero, preventing it from
// writing a core file if it crashes. Mirrors the struct rlimit core_limit
// = {0, 0}; setrlimit(RLIMIT_CORE, &core_limit) call in the C original.
func zeroCoreDumpLimit(pid int) error {
	limit := unix.Rlimit{Cur: 0, Max: 0}
	return unix.Prlimit(pid, unix.RLIMIT_CORE, &limit, nil)
}

// captureLines reads r to completion and splits it into lines, trimming
// any trailing CR so CRLF-terminated output from the child is normalized
// to plain LF-delimited lines like the rest of this package expects.
func captureLines(r io.Reader) []string {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}
