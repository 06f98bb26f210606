package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizcert/quizcert/internal/bank"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question counts per category for the loaded bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(resolveBankPath(cmd))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if b.Meta.Title != "" {
			fmt.Fprintf(out, "Bank: %s\n", b.Meta.Title)
		}
		if b.Meta.License != "" {
			fmt.Fprintf(out, "License: %s\n", b.Meta.License)
		}
		fmt.Fprintf(out, "Questions: %d\n\n", b.Len())

		stats := b.Stats()
		for _, c := range b.Index().Categories {
			fmt.Fprintf(out, "%-8s %4d  %s\n", c.ID, stats[c.ID], c.DisplayName)
		}
		return nil
	},
}
