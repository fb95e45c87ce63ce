package main

import (
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write YYYY-MM-DD",
	Short: "Replace the entry for a date with text from stdin",
	Long: `Replace the entry for a date with everything read from stdin.

When stdin is not a terminal the first line is taken as the password:

  { echo "$PASSWORD"; cat note.txt; } | diary write 2026-01-21`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.WriteEntry(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
