package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikbrunner/techbook/internal/launcher"
	"github.com/nikbrunner/techbook/internal/manager"
	"github.com/nikbrunner/techbook/internal/storage"
	"github.com/nikbrunner/techbook/internal/tui"
)

// options holds the persistent flags and the services built from them.
type options struct {
	storage    string // overrides the config file's backend
	dataPath   string // overrides the default slot location
	configPath string
	debug      bool

	logger   *zap.Logger
	launcher launcher.Launcher
	stdin    io.Reader
}

// newRootCmd builds the command tree around opts.
func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "techbook",
		Short: "TechBook - quick access to your IT tools and resources",
		Long: `TechBook keeps a small list of web bookmarks grouped by category.

Run without arguments to start the interactive grid. Subcommands cover
quick-open, listing and editing from the shell.

Data Storage:
  ~/.config/techbook/bookmarks.json  (storage: json)
  ~/.config/techbook/techbook.db     (storage: sqlite)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			logger, err := newLogger(opts)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.storage, "storage", "", "storage backend: json or sqlite (default from config)")
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "bookmark data file (default depends on backend)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/techbook/config.json)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newOpenCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newCategoriesCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))

	return rootCmd
}

// newLogger builds a JSON logger writing to the log file next to the config.
// The terminal belongs to the TUI, so nothing is logged to stderr.
func newLogger(opts *options) (*zap.Logger, error) {
	configPath, err := opts.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	logPath := filepath.Join(filepath.Dir(configPath), "techbook.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	if opts.debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	return config.Build()
}

func (o *options) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return storage.DefaultConfigFilePath()
}

// session is an opened slot plus the manager working on it.
type session struct {
	config  *storage.Config
	backend storage.Backend
	manager *manager.Manager
}

func (s *session) Close() error {
	return s.backend.Close()
}

// openSession loads the config, opens the storage backend and loads the bookmarks.
func openSession(opts *options) (*session, error) {
	configPath, err := opts.resolveConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.storage != "" {
		config.Storage = opts.storage
	}

	backend, err := storage.OpenStorage(*config, opts.dataPath)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	logger := opts.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("storage opened",
		zap.String("backend", config.Storage),
		zap.String("path", backend.Path()))

	m := manager.New(manager.Params{
		Storage:     backend,
		Launcher:    opts.launcher,
		Logger:      logger,
		DefaultIcon: config.DefaultIcon,
	})
	if err := m.Load(); err != nil {
		_ = backend.Close()
		return nil, err
	}

	return &session{config: config, backend: backend, manager: m}, nil
}

// runTUI runs the full interactive TUI.
func runTUI(opts *options) error {
	s, err := openSession(opts)
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w", err)
	}
	defer s.Close()

	app := tui.NewApp(tui.AppParams{
		Manager:         s.manager,
		Logger:          opts.logger,
		DefaultCategory: s.config.DefaultCategory,
		DefaultIcon:     s.config.DefaultIcon,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

func main() {
	opts := &options{stdin: os.Stdin}
	if err := newRootCmd(opts).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
