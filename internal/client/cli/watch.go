package cli

import (
	"context"
	"fmt"
	"time"
)

const defaultWatchInterval = 30 * time.Second

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	interval := defaultWatchInterval
	if len(args) > 0 {
		parsed, err := time.ParseDuration(args[0])
		if err != nil {
			return fmt.Errorf("invalid interval %q: %w", args[0], err)
		}
		if parsed <= 0 {
			return fmt.Errorf("interval must be positive, got %q", args[0])
		}
		interval = parsed
	}

	c.io.Printf("Syncing every %s. Press Ctrl+C to stop.\n", interval)
	c.syncService.RunLoop(ctx, interval)
	c.io.Println()
	c.io.Println("Watch stopped.")
	return nil
}
