package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-pronomen/internal/config"
	"github.com/goliatone/go-pronomen/pkg/catalog"
	"github.com/goliatone/go-pronomen/pkg/engine"
	"github.com/goliatone/go-pronomen/pkg/random"
	"github.com/goliatone/go-pronomen/pkg/results"
	"github.com/goliatone/go-pronomen/pkg/session"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	verbose    bool
	configPath string
	envFile    string
	catalogDir string

	cfg    *config.Config
	logger *zap.Logger
	random random.Source
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pronomen",
		Short: "Render German texts with pronoun and name placeholders",
		Long: `pronomen fills template texts such as "[Vorname] bestellt, [nominativ] lacht"
with names and pronoun declensions and prints the result as an HTML fragment.

Use "pronomen list" to see the available texts and pronoun sets.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Configuration file (YAML)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "File with PRONOMEN_* environment overrides")
	root.PersistentFlags().StringVar(&a.catalogDir, "catalog", "", "Directory with catalog files (default: embedded catalog)")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newInteractiveCmd(a))
	root.AddCommand(newListCmd(a))

	return root
}

func (a *app) init() error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.catalogDir != "" {
		cfg.CatalogDir = a.catalogDir
	}
	a.cfg = cfg

	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = zapcore.InfoLevel
		}
		if a.verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	if a.random == nil {
		a.random = random.Default()
	}
	return nil
}

func (a *app) catalog() (*catalog.Catalog, error) {
	if a.cfg.CatalogDir == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(os.DirFS(a.cfg.CatalogDir))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Loaded catalog",
		zap.String("dir", a.cfg.CatalogDir),
		zap.Int("sets", len(cat.Sets())),
		zap.Int("texts", len(cat.Texts())),
	)
	return cat, nil
}

func (a *app) session(markers engine.MarkerMode) (*session.Session, error) {
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}

	var rendererOptions []results.Option
	if a.cfg.TemplatesDir != "" {
		rendererOptions = append(rendererOptions, results.WithTemplatesDir(a.cfg.TemplatesDir))
	}

	return session.New(cat,
		session.WithRandom(a.random),
		session.WithLogger(a.logger),
		session.WithEngineOptions(
			engine.WithMarkers(markers),
			engine.WithDialogID(a.cfg.DialogID),
		),
		session.WithRendererOptions(rendererOptions...),
	)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
