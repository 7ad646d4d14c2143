package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runInit(ctx context.Context, args []string) error {
	deviceType := "desktop"
	userID := ""
	if len(args) > 0 {
		deviceType = args[0]
	}
	if len(args) > 1 {
		userID = args[1]
	}

	c.io.Println("=== Initialize Replica ===")
	c.io.Println()
	c.io.Println("Registering this replica on the server...")

	if err := c.syncService.Initialize(ctx, deviceType, userID); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Replica registered successfully!")
	c.io.Println("Run 'tasksync sync' to synchronize, or 'tasksync add' to create tasks.")
	return nil
}
