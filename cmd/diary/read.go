package main

import (
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read YYYY-MM-DD",
	Short: "Print the entry for a date",
	Long:  `Print the raw text of the entry for a date after asking for the password.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return app.ReadEntry(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
