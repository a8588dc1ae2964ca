package main

import (
	"fmt"
	"os"
	"strings"

	"travelshare/service"
)

const cliVersion = "1.0.0"

var exit = os.Exit

func main() {
	exit(run(os.Args[1:]))
}

// run dispatches a command line and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printHelp()
		return 1
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case "version":
		fmt.Printf("travelshare version %s\n", cliVersion)
		return 0
	case "help", "-h", "--help":
		printHelp()
		return 0
	default:
		return service.HandleCommand(append([]string{cmd}, args[1:]...))
	}
}

func printHelp() {
	service.HandleCommand([]string{"help"})
}
