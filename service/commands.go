package service

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travelshare/app/auth"
	"travelshare/app/repositories"
)

// HandleCommand runs a subcommand and returns its exit code. The caller
// decides whether to exit.
func HandleCommand(args []string) int {
	if len(args) < 1 {
		printHelp()
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		return RunAppServer()
	case "clean":
		return clean()
	case "init":
		return initDb()
	case "backup":
		return backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			return 1
		}
		return restore(args[1])
	case "token":
		return token(args[1:])
	case "help":
		printHelp()
		return 0
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		printHelp()
		return 1
	}
}

func printHelp() {
	helpText := `Usage: travelshare <command> [options]

Commands:
  serve                           Run the API server
  init                            Initialize a new empty database
  clean                           Remove the database
  backup                          Create a backup of the database
  restore <file>                  Restore database from backup
  token [flags]                   Mint a signed access token for development
  version                         Show version information
  help                            Display this help message

Configuration is read from config.yaml (or $CONFIG_PATH) and TRAVELSHARE_*
environment variables.
`
	fmt.Println(helpText)
}

func clean() int {
	cfg := mustConfig()
	if cfg == nil {
		return 1
	}
	dbPath := cfg.Database.Path

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return 0
	}

	if !confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Println("Operation cancelled")
		return 0
	}

	if err := os.RemoveAll(dbPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return 1
	}
	fmt.Println("Database cleaned successfully")
	return 0
}

func initDb() int {
	cfg := mustConfig()
	if cfg == nil {
		return 1
	}
	dbPath := cfg.Database.Path

	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return 0
	}

	store, err := repositories.OpenStore(repositories.StoreOptions{Path: dbPath})
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return 1
	}
	defer store.Close()

	fmt.Println("Database initialized successfully")
	return 0
}

func backup() int {
	cfg := mustConfig()
	if cfg == nil {
		return 1
	}
	dbPath := cfg.Database.Path

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return 1
	}

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return 1
	}

	store, err := repositories.OpenStore(repositories.StoreOptions{Path: dbPath})
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Printf("Failed to create backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := store.Backup(f); err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return 1
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
	return 0
}

func restore(backupFile string) int {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}

	cfg := mustConfig()
	if cfg == nil {
		return 1
	}
	dbPath := cfg.Database.Path

	if _, err := os.Stat(dbPath); err == nil {
		if !confirm("Database already exists. Restoring will overwrite it. Continue?") {
			fmt.Println("Operation cancelled")
			return 0
		}
		if err := os.RemoveAll(dbPath); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Printf("Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	store, err := repositories.OpenStore(repositories.StoreOptions{Path: dbPath})
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer store.Close()

	// Badger may panic on a corrupt backup stream.
	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic occurred during restore: %v", r)
			}
		}()
		return store.Restore(f)
	}()
	if err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Println("Database restored successfully")
	return 0
}

// token mints a token signed with the configured secret so the API can be
// exercised by hand when auth is enabled.
func token(args []string) int {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	id := fs.String("id", "", "user id (required)")
	plan := fs.String("plan", string(auth.PlanBasic), "plan: basic, advanced or pro")
	roles := fs.String("roles", string(auth.RoleUser), "comma separated roles")
	addons := fs.String("addons", "", "comma separated addons")
	if err := fs.Parse(args); err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}
	if *id == "" {
		fmt.Println("Error: --id is required")
		return 1
	}

	cfg := mustConfig()
	if cfg == nil {
		return 1
	}
	manager, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		fmt.Printf("Failed to create token: %v\n", err)
		return 1
	}

	signed, err := manager.Issue(auth.User{
		ID:     *id,
		Plan:   *plan,
		Roles:  splitFlag(*roles),
		Addons: splitFlag(*addons),
	})
	if err != nil {
		fmt.Printf("Failed to create token: %v\n", err)
		return 1
	}
	fmt.Println(signed)
	return 0
}

func splitFlag(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
