package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tasksync/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	// По умолчанию завершенные и отмененные задачи скрываются
	showAll := false
	for _, arg := range args {
		if arg == "--all" {
			showAll = true
		}
	}

	tasks, err := c.dataService.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	c.io.Println("=== Tasks ===")
	c.io.Println()

	shown := 0
	for _, task := range tasks {
		if !showAll && (task.Status == models.StatusCompleted || task.Status == models.StatusCancelled) {
			continue
		}
		c.io.Printf("%s  [%s] [%s] %s", task.ID, task.Status, task.Priority, task.Title)
		if task.Assignee != "" {
			c.io.Printf("  (%s)", task.Assignee)
		}
		c.io.Println()
		shown++
	}

	if shown == 0 {
		if showAll {
			c.io.Println("No tasks found.")
		} else {
			c.io.Println("No open tasks. Use 'tasksync list --all' to include completed ones.")
		}
		return nil
	}

	c.io.Println()
	c.io.Printf("Total: %d task(s)\n", shown)
	return nil
}
