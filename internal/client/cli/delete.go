package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tasksync delete <id> [--yes]")
	}

	id := args[0]
	confirmed := false
	for _, arg := range args[1:] {
		if arg == "--yes" {
			confirmed = true
		}
	}

	if !confirmed {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete task %s? (y/N): ", id))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.ToLower(answer) != "y" {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := c.dataService.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.io.Printf("✓ Task %s deleted\n", id)
	return nil
}
