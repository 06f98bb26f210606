package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizcert/quizcert/internal/assemble"
	"github.com/quizcert/quizcert/internal/bank"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a randomized quiz from the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(resolveBankPath(cmd))
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetString("seed")
		catFlag, _ := cmd.Flags().GetString("categories")

		var categories []string
		for _, tok := range strings.Split(catFlag, ",") {
			if id := strings.TrimSpace(tok); id != "" {
				categories = append(categories, id)
			}
		}

		quiz, err := assemble.Assemble(b, assemble.Options{
			CategoryIDs: categories,
			Count:       count,
			Seed:        seed,
		})
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		return writeJSONFile(out, quiz)
	},
}

func init() {
	assembleCmd.Flags().Int("count", 20, "Number of questions to select (clamped to 5-50)")
	assembleCmd.Flags().String("categories", "", "Comma-separated category ids (empty = all)")
	assembleCmd.Flags().String("seed", "", "Seed for a deterministic shuffle (empty = system entropy)")
	assembleCmd.Flags().StringP("out", "o", "quiz.json", "Output quiz file")
}

// writeJSONFile marshals v to path, or to stdout when path is "-".
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
