package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/tasksync/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Starting synchronization with server...")

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrSyncInProgress) {
			c.io.Println("A sync round is already running, try again later.")
			return nil
		}
		if errors.Is(err, sync.ErrNotInitialized) {
			return fmt.Errorf("replica is not initialized. Run 'tasksync init' first")
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.io.Printf("Pushed to server:   %d change(s)\n", result.PushedChanges)
	c.io.Printf("Pulled from server: %d change(s)\n", result.PulledChanges)
	c.io.Printf("Merged locally:     %d task(s)\n", result.MergedTasks)
	c.io.Printf("Acknowledged:       %d pending record(s)\n", result.AckedChanges)
	if result.Conflicts > 0 {
		c.io.Printf("Conflicts resolved: %d\n", result.Conflicts)
	}
	if result.SkippedTasks > 0 {
		c.io.Printf("Skipped (errors):   %d\n", result.SkippedTasks)
	}

	return nil
}
