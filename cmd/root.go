package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/learnkit/internal/binder"
	"github.com/abhisek/learnkit/internal/config"
	"github.com/abhisek/learnkit/internal/course/lesson4"
	"github.com/abhisek/learnkit/internal/dataset"
	"github.com/abhisek/learnkit/internal/session"
	"github.com/abhisek/learnkit/internal/store"
	"github.com/spf13/cobra"
)

const lessonTitle = "Time Series as Features"

var rootCmd = &cobra.Command{
	Use:   "learnkit",
	Short: "Practice exercises for time series feature engineering",
	Long:  "learnkit checks answers to course exercises, reveals hints and solutions, and keeps a history of every attempt.",
	// main prints errors; a failed check has already printed its outcome.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// IsCheckFailure reports whether err only signals a wrong answer.
func IsCheckFailure(err error) bool {
	return errors.Is(err, errCheckFailed)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNKIT_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("data", "", "Path to the store sales CSV (default: synthetic data)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(solutionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime is everything a command needs: configuration, the open store,
// the session tracker and the bound exercises.
type runtime struct {
	cfg     *config.Config
	store   *store.Store
	tracker *session.Tracker
	ns      binder.Namespace
}

func (r *runtime) Close() error {
	return r.store.Close()
}

// exercise looks up a bound exercise by name.
func (r *runtime) exercise(name string) (*binder.Exercise, error) {
	ex, ok := r.ns.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown exercise %q (have %s)", name, strings.Join(r.ns.Names(), ", "))
	}
	return ex, nil
}

// loadConfig layers defaults, the config file, the environment and the
// persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(dbPath, cfgPath, "")
	if err != nil {
		return nil, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataPath = p
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return cfg, nil
}

// setupLogging installs the default slog logger at the configured level.
func setupLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

// setup opens the store and binds the lesson. The caller must Close the
// returned runtime.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.LogLevel)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	tracker := session.NewTracker(st.EventRepo())
	tol := cfg.Tolerance.Compare()
	ns := binder.Namespace{}
	names, err := lesson4.Bind(ns, cfg.Pattern, dataset.New(cfg.DataPath),
		lesson4.Options{Tolerance: &tol, Lazy: cfg.Lazy},
		binder.WithTracker(tracker))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("bind exercises: %w", err)
	}
	slog.Debug("bound exercises", "names", names, "session", tracker.SessionID(), "db", cfg.DBPath)

	return &runtime{cfg: cfg, store: st, tracker: tracker, ns: ns}, nil
}
