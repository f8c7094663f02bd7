package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brrrr-calculator/config"
	"brrrr-calculator/logging"
	"brrrr-calculator/repository"
	"brrrr-calculator/service"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	outputDir string
	jsonOut   bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "brrrr-calculator",
	Short: "Generate BRRRR property investment spreadsheets",
	Long: `brrrr-calculator evaluates a Buy, Rehab, Rent, Refinance, Repeat deal and
writes the result as Excel workbooks: precomputed tables, live formula
layouts and a strategy comparison.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromFiles(cfgFile)
		if err != nil {
			return err
		}
		config.ApplyFlagOverrides(cfg, outputDir, verbose)

		logger, err = logging.New(cfg.Logging)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for generated workbooks")
	metricsCmd.Flags().BoolVar(&jsonOut, "json", false, "print metrics as JSON")
	strategiesCmd.Flags().BoolVar(&jsonOut, "json", false, "print strategies as JSON")

	rootCmd.AddCommand(generateCmd, metricsCmd, strategiesCmd, layoutsCmd)
}

// newCache returns the in-process cache unless a Redis address is configured.
func newCache(c config.CacheConfig) (repository.CacheRepository, func()) {
	if c.RedisAddr == "" {
		return repository.NewMemoryCache(), func() {}
	}
	redisCache := repository.NewRedisCache(c.RedisAddr, c.KeyPrefix, c.TTL())
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("failed to close redis cache", zap.Error(err))
		}
	}
}

func newReportService() (*service.ReportService, func()) {
	cache, closeCache := newCache(cfg.Cache)
	metrics := service.NewMetricsService(cache, logger)
	reports := service.NewReportService(
		metrics,
		service.NewStrategyService(),
		repository.NewReportRepositoryMemory(),
		logger,
		service.ReportOptions{
			OutputDir:   cfg.Output.Dir,
			ColumnWidth: cfg.Output.ColumnWidth,
		},
	)
	return reports, closeCache
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
