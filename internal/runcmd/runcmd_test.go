// Copyright 2021 Adam Chalkley
//
// https://github.com/atc0005/check-icmp
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package runcmd

import (
	"context"
	"testing"
	"time"
)

func TestRunCapturesStdoutAndExitCode(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Run(ctx, []string{"/bin/sh", "-c", "echo hello; echo world"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if len(res.Stdout) != 2 || res.Stdout[0] != "hello" || res.Stdout[1] != "world" {
		t.Errorf("Stdout = %v, want [hello world]", res.Stdout)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Run(ctx, []string{"/bin/sh", "-c", "exit 3"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
}

func TestRunTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := Run(ctx, []string{"/bin/sh", "-c", "sleep 5"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !res.TimedOut {
		t.Error("TimedOut = false, want true")
	}
}

func TestRunEmptyArgv(t *testing.T) {
	_, err := Run(context.Background(), nil)
	if err != ErrEmptyArgv {
		t.Errorf("Run(nil) error = %v, want ErrEmptyArgv", err)
	}
}

func TestRunNormalizesCRLF(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := Run(ctx, []string{"/bin/sh", "-c", "printf 'a\\r\\nb\\r\\n'"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(res.Stdout) != 2 || res.Stdout[0] != "a" || res.Stdout[1] != "b" {
		t.Errorf("Stdout = %v, want [a b]", res.Stdout)
	}
}
