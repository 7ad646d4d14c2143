package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/tasksync/internal/models"
)

func (c *Cli) runRename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tasksync rename <id> <title>")
	}

	title := strings.Join(args[1:], " ")
	task, err := c.dataService.UpdateTitle(ctx, args[0], title)
	if err != nil {
		return fmt.Errorf("failed to rename task: %w", err)
	}

	c.io.Printf("✓ Task %s renamed to %q\n", task.ID, task.Title)
	return nil
}

func (c *Cli) runMove(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tasksync move <id> <pending|in_progress|completed|cancelled>")
	}

	task, err := c.dataService.UpdateStatus(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	c.io.Printf("✓ Task %s is now %s\n", task.ID, task.Status)
	return nil
}

func (c *Cli) runDone(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tasksync done <id>")
	}

	task, err := c.dataService.UpdateStatus(ctx, args[0], models.StatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	c.io.Printf("✓ Task %s completed\n", task.ID)
	return nil
}

func (c *Cli) runPriority(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tasksync priority <id> <low|normal|high|critical>")
	}

	task, err := c.dataService.SetPriority(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to set priority: %w", err)
	}

	c.io.Printf("✓ Task %s priority set to %s\n", task.ID, task.Priority)
	return nil
}

func (c *Cli) runAssign(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tasksync assign <id> <assignee>")
	}

	task, err := c.dataService.Assign(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to assign task: %w", err)
	}

	c.io.Printf("✓ Task %s assigned to %s\n", task.ID, task.Assignee)
	return nil
}
