package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quizcert/quizcert/internal/bank"
	"github.com/quizcert/quizcert/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Seed the environment from .env if present, then read config.
		_ = godotenv.Load()
		cfg := httpapi.ConfigFromEnv()

		if p, _ := cmd.Flags().GetString("bank"); p != "" {
			cfg.BankPath = p
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Any bank load failure aborts startup rather than serving a
		// partially loaded bank.
		b, err := bank.Load(cfg.BankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}
		logger.Info("bank loaded",
			"path", cfg.BankPath,
			"questions", b.Len(),
			"categories", len(b.Index().Categories),
		)

		srv := httpapi.New(cfg, b, logger)
		logger.Info("listening", "addr", cfg.Addr)
		return http.ListenAndServe(cfg.Addr, srv.Router())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZCERT_ADDR env var)")
}
