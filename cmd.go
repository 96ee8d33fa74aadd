package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:           "worklog <record-file> <command>",
		Short:         "A work time tracking CLI application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// command for recording the start of a work session
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Record the start of a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Start(time.Now())
		},
	}

	// command for recording the end of a work session
	endCmd := &cobra.Command{
		Use:   "end",
		Short: "Record the end of a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.End(time.Now())
		},
	}

	var yesterday bool
	var dateValue string

	// command for reporting sessions of a single day
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Report work sessions for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if yesterday {
				date = date.AddDate(0, 0, -1)
			}
			if dateValue != "" {
				parsed, err := time.ParseInLocation(dateFormat, dateValue, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date value %q, expected YYYY-MM-DD", dateValue)
				}
				date = parsed
			}

			return a.Show(date)
		},
	}
	showCmd.Flags().BoolVar(&yesterday, "yesterday", false, "Report the previous day")
	showCmd.Flags().StringVar(&dateValue, "date", "", "Report an explicit date (YYYY-MM-DD)")
	showCmd.MarkFlagsMutuallyExclusive("yesterday", "date")

	// command for watching the currently open session
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Watch the currently running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Status()
		},
	}

	// command for importing records from a companion API
	importCmd := &cobra.Command{
		Use:   "import <url>",
		Short: "Import records from a remote worklog server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.Import(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, msg)
			return nil
		},
	}

	// add commands
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(importCmd)

	return rootCmd
}
