package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Replica Status ===")
	c.io.Println()

	c.io.Printf("Sync state: %s\n", c.syncService.State())

	pendingCount, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending count: %w", err)
	}

	c.io.Println()
	if pendingCount > 0 {
		c.io.Printf("⚠ Pending sync: %d change(s) waiting to be synchronized\n", pendingCount)
		c.io.Println("Run 'tasksync sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All local changes acknowledged by the server")
	}

	return nil
}
