package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizcert/quizcert/internal/cert"
	"github.com/quizcert/quizcert/internal/envinfo"
	"github.com/quizcert/quizcert/internal/grade"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Render a PDF certificate from a graded result",
	RunE: func(cmd *cobra.Command, args []string) error {
		resultPath, _ := cmd.Flags().GetString("result")
		name, _ := cmd.Flags().GetString("name")

		candidate := grade.Candidate{Name: name}
		if err := grade.ValidateCandidate(candidate); err != nil {
			return err
		}

		var result grade.Result
		if err := readJSONFile(resultPath, &result); err != nil {
			return fmt.Errorf("read result: %w", err)
		}

		opts := cert.DefaultOptions()
		if title, _ := cmd.Flags().GetString("title"); title != "" {
			opts.Title = title
		}

		now := time.Now()
		var details *envinfo.Details
		if withEnv, _ := cmd.Flags().GetBool("env-details"); withEnv {
			details = envinfo.Collect(now)
		}

		pdfBytes, err := cert.NewRenderer(opts).Render(&result, candidate.Normalize().Name, details, now)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cert.Filename(name, now)
		}
		if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	certCmd.Flags().String("result", "result.json", "Graded result file")
	certCmd.Flags().String("name", "", "Candidate display name (required)")
	certCmd.Flags().String("title", "", "Certificate title override")
	certCmd.Flags().Bool("env-details", false, "Include local/UTC time and timezone on the certificate")
	certCmd.Flags().StringP("out", "o", "", "Output PDF file (default: generated from the candidate name and date)")
	certCmd.MarkFlagRequired("name")
}
