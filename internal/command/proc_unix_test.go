//go:build unix

package command

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExecRunnerKillsProcessGroup(t *testing.T) {
	t.Parallel()
	sh := requireShell(t)

	start := time.Now()
	_, err := NewRunner(WithTimeout(300*time.Millisecond)).Run(context.Background(), sh, "-c", "sleep 5; echo x")
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed >= waitDelay {
		t.Errorf("expected forked children to be killed with the shell, took %v", elapsed)
	}
}
