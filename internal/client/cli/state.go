package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/tasksync/internal/client/sync"
)

// runState показывает слитое состояние с точки зрения сервера.
// Диагностическая команда: локальная база не изменяется.
func (c *Cli) runState(ctx context.Context) error {
	resp, err := c.syncService.ServerState(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrNotInitialized) {
			return fmt.Errorf("replica is not initialized. Run 'tasksync init' first")
		}
		return fmt.Errorf("failed to fetch server state: %w", err)
	}

	deleted := 0
	for _, task := range resp.Tasks {
		if task.Deleted {
			deleted++
		}
	}

	c.io.Println("=== Server State ===")
	c.io.Println()
	c.io.Printf("Server clock: %s@%d\n", resp.ServerClock.NodeID, resp.ServerClock.Counter)
	c.io.Printf("Tasks:        %d (%d deleted)\n", len(resp.Tasks), deleted)

	return nil
}
