package main

import (
	"fmt"
	"os"
	"strings"
)

var commandNames = map[string]bool{
	"start":  true,
	"end":    true,
	"show":   true,
	"status": true,
	"import": true,
}

// splitArgs separates the record file path from the command arguments. The
// record file is normally the first argument; help and completion work
// without one, and a leading known command falls back to WORKLOG_FILE.
func splitArgs(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", args, nil
	}

	first := args[0]
	if first == "help" || first == "completion" || strings.HasPrefix(first, "-") {
		return "", args, nil
	}

	if commandNames[first] {
		path := os.Getenv("WORKLOG_FILE")
		if path == "" {
			return "", nil, fmt.Errorf("no record file given and WORKLOG_FILE is not set")
		}
		return path, args, nil
	}

	return first, args[1:], nil
}

func main() {
	path, rest, err := splitArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := SetupCommands(NewApp(path))
	rootCmd.SetArgs(rest)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
