package mcp

import (
	"context"
	"os"
	"time"

	"rotor/internal/logging"
)

// ParentPollInterval is how often WatchParent checks the parent pid.
// Variable so tests can shorten it.
var ParentPollInterval = 2 * time.Second

// WatchParent cancels the server when the parent process dies, so a stdio
// server spawned by an editor or agent host cannot outlive its host and
// linger as a zombie.
func WatchParent(ctx context.Context, cancel context.CancelFunc) {
	ppid := os.Getppid()
	logger := logging.New("mcp")
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(ParentPollInterval):
				if os.Getppid() != ppid {
					logger.Warn("parent process died, shutting down", "was_pid", ppid)
					cancel()
					return
				}
			}
		}
	}()
}
