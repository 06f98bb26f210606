package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizcert",
	Short: "Timed multiple-choice assessments with PDF certificates",
	Long: "Quizcert assembles randomized quizzes from a static question bank, " +
		"grades submitted answers per question and per category, and renders " +
		"a paginated certificate document from the graded result.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank document (overrides QUIZCERT_BANK env var)")

	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankPath returns the bank path using --bank (highest priority),
// then the QUIZCERT_BANK env var, then the default.
func resolveBankPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	if p := os.Getenv("QUIZCERT_BANK"); p != "" {
		return p
	}
	return "bank.json"
}
