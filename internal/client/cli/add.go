package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Task ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	priority, err := c.io.ReadInput("Priority (low/normal/high/critical) [normal]: ")
	if err != nil {
		return fmt.Errorf("failed to read priority: %w", err)
	}

	assignee, err := c.io.ReadInput("Assignee (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read assignee: %w", err)
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	var payload []byte
	if description != "" {
		payload = []byte(description)
	}

	task, err := c.dataService.CreateTask(ctx, title, priority, assignee, payload)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Task created!")
	c.io.Printf("ID:       %s\n", task.ID)
	c.io.Printf("Title:    %s\n", task.Title)
	c.io.Printf("Priority: %s\n", task.Priority)
	c.io.Println()
	c.io.Println("The change is queued locally. Run 'tasksync sync' to push it to the server.")
	return nil
}
