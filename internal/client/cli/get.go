package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing task id. Usage: tasksync get <id>")
	}

	task, err := c.dataService.GetTask(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	c.io.Println("=== Task Details ===")
	c.io.Println()
	c.io.Printf("ID:        %s\n", task.ID)
	c.io.Printf("Title:     %s\n", task.Title)
	c.io.Printf("Status:    %s\n", task.Status)
	c.io.Printf("Priority:  %s\n", task.Priority)
	if task.Assignee != "" {
		c.io.Printf("Assignee:  %s\n", task.Assignee)
	}
	if len(task.Payload) > 0 {
		c.io.Printf("Notes:     %s\n", string(task.Payload))
	}
	c.io.Printf("Created:   %s\n", task.CreatedAt.Format(time.RFC3339))
	c.io.Printf("Updated:   %s\n", task.UpdatedAt.Format(time.RFC3339))
	c.io.Printf("Clock:     %s@%d\n", task.Clock.NodeID, task.Clock.Counter)
	return nil
}
