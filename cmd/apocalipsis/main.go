package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"apocalipsis/internal/config"
	"apocalipsis/internal/scripture"
	"apocalipsis/internal/session"
	"apocalipsis/internal/ui"
)

var version = "dev"

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "apocalipsis",
	Short: "Apocalipsis - estudio bíblico social en la terminal",
	Long: `Apocalipsis es una aplicación de estudio bíblico para la terminal:
versículos destacados, comentarios y proverbios de la comunidad,
traducción palabra por palabra con gematría, y un cuaderno personal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal, so the logger writes to a file.
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}
		logDir := filepath.Join(dir, "apocalipsis")
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		cfg.OutputPaths = []string{filepath.Join(logDir, "apocalipsis.log")}
		cfg.ErrorOutputPaths = cfg.OutputPaths
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("apocalipsis %s\n", version)
	},
}

func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("falling back to default colors", zap.Error(err))
		cfg = config.Default()
	}
	logger.Info("starting", zap.String("version", version))

	sess := session.New(scripture.NewCatalog())
	model := ui.New(sess, ui.NewStyles(cfg))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited cleanly")
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
