package cli

import (
	"fmt"

	"github.com/iudanet/tasksync/internal/client/data"
	"github.com/iudanet/tasksync/internal/client/iocli"
	"github.com/iudanet/tasksync/internal/client/sync"
)

// Cli связывает команды терминала с локальными сервисами реплики.
// Все команды работают offline-first: мутации применяются локально,
// обмен с сервером происходит только в командах init, sync и watch.
type Cli struct {
	io          iocli.IO
	dataService data.Service
	syncService sync.Service
}

func New(io iocli.IO, dataService data.Service, syncService sync.Service) *Cli {
	return &Cli{
		io:          io,
		dataService: dataService,
		syncService: syncService,
	}
}

func PrintUsage() {
	fmt.Println("Usage: tasksync <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  init [device-type] [user-id]   Register this replica on the server")
	fmt.Println("  add                            Add a new task (interactive)")
	fmt.Println("  list                           List tasks")
	fmt.Println("  get <id>                       Show task details")
	fmt.Println("  rename <id> <title>            Change task title")
	fmt.Println("  move <id> <status>             Change task status (pending|in_progress|completed|cancelled)")
	fmt.Println("  done <id>                      Mark task as completed")
	fmt.Println("  priority <id> <priority>       Change task priority (low|normal|high|critical)")
	fmt.Println("  assign <id> <assignee>         Assign task to someone")
	fmt.Println("  delete <id> [--yes]            Delete a task")
	fmt.Println("  sync                           Run one synchronization round")
	fmt.Println("  status                         Show replica and sync status")
	fmt.Println("  state                          Show merged state as seen by the server")
	fmt.Println("  watch [interval]               Sync periodically until interrupted (default 30s)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  TASKSYNC_SERVER   Server base URL (default http://localhost:8080)")
	fmt.Println("  TASKSYNC_DB       Path to the local database file")
}
