package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizcert/quizcert/internal/assemble"
	"github.com/quizcert/quizcert/internal/grade"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a completed attempt against an assembled quiz",
	Long: "Reads the assembled quiz and an answers file (a JSON object mapping " +
		"question id to selected option index; unanswered questions are simply " +
		"absent) and writes the graded result. Grading never fails: missing or " +
		"out-of-range answers count as incorrect.",
	RunE: func(cmd *cobra.Command, args []string) error {
		quizPath, _ := cmd.Flags().GetString("quiz")
		answersPath, _ := cmd.Flags().GetString("answers")

		var quiz assemble.Quiz
		if err := readJSONFile(quizPath, &quiz); err != nil {
			return fmt.Errorf("read quiz: %w", err)
		}
		answers := map[string]int{}
		if answersPath != "" {
			if err := readJSONFile(answersPath, &answers); err != nil {
				return fmt.Errorf("read answers: %w", err)
			}
		}

		result := grade.Grade(&quiz, answers)

		out, _ := cmd.Flags().GetString("out")
		return writeJSONFile(out, result)
	},
}

func init() {
	gradeCmd.Flags().String("quiz", "quiz.json", "Assembled quiz file")
	gradeCmd.Flags().String("answers", "", "Answers file (question id -> option index)")
	gradeCmd.Flags().StringP("out", "o", "result.json", "Output result file")
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
