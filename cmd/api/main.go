package main

import (
	"fmt"
	"os"

	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/core/config"
	"bizlens/pkg/core/store"
	"bizlens/pkg/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "Start the business performance analysis API",
		RunE:  runServer,
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "config/bizlens.hjson",
		"Path to the HJSON config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	benchmarks, err := benchmark.Load()
	if err != nil {
		return fmt.Errorf("failed to load benchmark tables: %w", err)
	}
	logger.Info().Str("version", benchmarks.Version()).Msg("benchmark tables loaded")

	var reports *store.ReportRepo
	if cfg.PersistReports {
		if err := store.InitDB(cmd.Context()); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer store.Close()
		reports = store.NewReportRepo()
		logger.Info().Msg("report persistence enabled")
	} else {
		logger.Info().Msg("report persistence disabled")
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout(),
		Benchmarks:      benchmarks,
		Reports:         reports,
	})
	return api.Start()
}

func newLogger(cfg config.Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var logger zerolog.Logger
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		logger = zerolog.New(os.Stdout)
	}
	return logger.Level(level).With().Timestamp().Logger(), nil
}
