package main

import (
	"fmt"
	"os"
	"path/filepath"

	"bridge_tokens/internal/app/port"
	"bridge_tokens/internal/app/provider"
	"bridge_tokens/internal/app/service"
	"bridge_tokens/internal/infrastructure/configloader"
	"bridge_tokens/internal/infrastructure/logocopier"
	networkdefinition "bridge_tokens/internal/infrastructure/network/definition"
	"bridge_tokens/internal/infrastructure/tokenloader"
	"bridge_tokens/internal/infrastructure/tokenwriter"
	"bridge_tokens/internal/pkg/logger"
	"bridge_tokens/internal/pkg/metrics"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/config.yml"

var (
	rootDir    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "token_config",
	Short: "Generate bridge token lists and logo directories",
	Long: `Reads data/token_mappings, writes tokens.json, eth.json, meter.json and bsc.json,
and copies each token's logo into tokens/<chain>/<address>/logo.png.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&rootDir, "root", ".", "project root containing data/ and the output files")
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "YAML config path, relative to --root unless absolute")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Token config generation failed", "error", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfgFile := configPath
	if !filepath.IsAbs(cfgFile) {
		cfgFile = filepath.Join(rootDir, cfgFile)
	}
	cfg, found, err := configloader.LoadOrDefault(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if found {
		logger.Info("Configuration loaded", "path", cfgFile)
	} else {
		logger.Info("No configuration file, using defaults", "path", cfgFile)
	}

	appLogger := logger.NewSlogAdapter()
	fs := afero.NewBasePathFs(afero.NewOsFs(), rootDir)

	var recorder port.RunRecorder = metrics.Nop{}
	var promRecorder *metrics.Recorder
	if cfg.Metrics.Textfile != "" {
		promRecorder = metrics.NewRecorder()
		recorder = promRecorder
	}

	svc := service.NewTokenConfigService(
		provider.NewMappingProvider(
			tokenloader.NewMappingLoader(fs, cfg.Paths.MappingsDir, cfg.Paths.ManifestFile, appLogger),
			appLogger,
		),
		networkdefinition.NewChainDefinitionProvider(appLogger),
		tokenwriter.NewWriter(fs, cfg.Paths.OutputDir, appLogger),
		logocopier.NewCopier(fs, cfg.Paths.LogoStoreDir, appLogger),
		service.NewChainProjector(cfg.Images.BaseURL, appLogger),
		recorder,
		appLogger,
		cfg.Paths.SummaryFile,
	)

	_, runErr := svc.Run()

	if promRecorder != nil {
		textfile := cfg.Metrics.Textfile
		if !filepath.IsAbs(textfile) {
			textfile = filepath.Join(rootDir, textfile)
		}
		if err := promRecorder.WriteTextfile(textfile); err != nil {
			logger.Warn("Failed to export metrics", "error", err)
		}
	}
	return runErr
}
