package service

import (
	"fmt"
	"os"

	"travelshare/app/config"
	"travelshare/app/logging"
)

// loadConfig is swapped out by tests.
var loadConfig = config.Load

// backupDir is where the backup command writes its files.
var backupDir = "data/backups"

// mustConfig loads the configuration and initializes logging, printing the
// error and returning nil when the configuration is unusable.
func mustConfig() *config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return nil
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
	return cfg
}

// confirm asks a yes/no question on stdin. Anything but y/Y is a no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	var answer string
	fmt.Scanln(&answer)
	return answer == "y" || answer == "Y"
}
