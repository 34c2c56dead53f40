// Package main provides the CLI entrypoint for olympus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/olympus/internal/config"
	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/editor"
	"github.com/verte-zerg/olympus/internal/logging"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/store"
	"github.com/verte-zerg/olympus/internal/timer"
	"github.com/verte-zerg/olympus/internal/tui"
)

const (
	defaultLogLevel   = "warn"
	defaultAutosaveMs = 800
	defaultRestExtend = 15
)

var (
	rootDBPath   string
	rootLogLevel string
	rootLogFile  string
	rootDay      string
	rootUnit     string

	fileCfg config.FileConfig
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "olympus",
		Short:             "Workout log, warm-up planner and strength standards",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setupRun,
		RunE:              runLogCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootDBPath, "db", config.DefaultDBPath(), "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", defaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().StringVar(&rootDay, "day", string(model.DayPush), "day to open (push, legs, pull)")
	rootCmd.Flags().StringVar(&rootUnit, "unit", "", "unit for this session (metric, imperial)")

	rootCmd.AddCommand(newWarmupCmd())
	rootCmd.AddCommand(newPlatesCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newStandardsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newUnitCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setupRun loads the config file and configures logging before any command.
func setupRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = cfg
	applyStringConfig(cmd, "db", &rootDBPath, fileCfg.General.DB)
	applyStringConfig(cmd, "log-level", &rootLogLevel, fileCfg.General.LogLevel)
	applyStringConfig(cmd, "log-file", &rootLogFile, fileCfg.General.LogFile)

	params := logging.SetupParams{
		LogLevel:    rootLogLevel,
		LogFileName: rootLogFile,
		Stderr:      cmd.ErrOrStderr(),
	}
	if cmd == cmd.Root() {
		// The alt screen owns the terminal.
		params.Quiet = true
		if params.LogFileName == "" {
			params.LogFileName = config.DefaultLogPath()
		}
	}
	logging.Setup(params)
	logrus.WithField("db", rootDBPath).Debug("configuration loaded")
	return nil
}

func runLogCmd(cmd *cobra.Command, _ []string) error {
	day, err := daylog.ParseDay(rootDay)
	if err != nil {
		return err
	}

	autosaveMs := defaultAutosaveMs
	if fileCfg.Log.AutosaveMs != nil {
		autosaveMs = *fileCfg.Log.AutosaveMs
	}
	presets, extend, err := restSettings(fileCfg.Timer)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	unit, err := resolveUnit(ctx, cmd, st, "unit", rootUnit)
	if err != nil {
		return err
	}

	out, bell := programOutput(os.Stdout)
	ed := editor.New(daylog.NewStore(st), unit, time.Duration(autosaveMs)*time.Millisecond)
	m, err := tui.NewModel(ctx, ed, tui.Options{
		Day:         day,
		RestPresets: presets,
		RestExtend:  extend,
		Notifier:    bell,
		SaveUnit:    st.SaveUnit,
	})
	if err != nil {
		return fmt.Errorf("failed to open %s log: %w", day, err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// syncOutput serializes terminal writes so the rest bell lands between
// rendered frames. The embedded file keeps Fd visible for window sizing.
type syncOutput struct {
	mu sync.Mutex
	*os.File
}

func (o *syncOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.File.Write(p)
}

func (o *syncOutput) WriteString(s string) (int, error) {
	return o.Write([]byte(s))
}

// programOutput shares one writer between the renderer and the bell. BEL
// does not move the cursor, so it leaves the alt screen intact.
func programOutput(f *os.File) (*syncOutput, timer.Notifier) {
	out := &syncOutput{File: f}
	return out, timer.BellNotifier{W: out}
}

func restSettings(cfg config.TimerConfig) ([]time.Duration, time.Duration, error) {
	presets := timer.DefaultRestPresets
	if len(cfg.RestPresets) > 0 {
		presets = make([]time.Duration, len(cfg.RestPresets))
		for i, sec := range cfg.RestPresets {
			if sec <= 0 {
				return nil, 0, fmt.Errorf("timer.rest-presets must be > 0, got %d", sec)
			}
			presets[i] = time.Duration(sec) * time.Second
		}
	}
	extend := defaultRestExtend
	if cfg.RestExtend != nil {
		extend = *cfg.RestExtend
	}
	if extend <= 0 {
		return nil, 0, fmt.Errorf("timer.rest-extend must be > 0")
	}
	return presets, time.Duration(extend) * time.Second, nil
}

// resolveUnit picks the unit: an explicit flag, then the stored preference,
// then the config file, then metric.
func resolveUnit(ctx context.Context, cmd *cobra.Command, st *store.Store, flag, value string) (model.Unit, error) {
	if cmd.Flags().Changed(flag) {
		return model.ParseUnit(value)
	}
	fallback := model.UnitMetric
	if fileCfg.General.Unit != nil {
		u, err := model.ParseUnit(*fileCfg.General.Unit)
		if err != nil {
			return "", fmt.Errorf("invalid general.unit in config: %w", err)
		}
		fallback = u
	}
	return st.LoadUnit(ctx, fallback), nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(rootDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editorCmd := strings.TrimSpace(os.Getenv("EDITOR"))
	if editorCmd == "" {
		editorCmd = "vi"
	}
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# olympus configuration
# Uncomment a value to enable it. CLI flags override config values.

[general]
# unit = "metric"          # metric or imperial; a unit saved with "olympus unit" wins
# log-level = %q         # trace, debug, info, warn, error
# log-file = ""            # Rotated log file (the log editor always logs to a file)
# db = ""                  # SQLite database path

[warmup]
# template = %q       # Default warm-up template (see "olympus templates")
# bar = 20                 # Bar weight in your unit

[log]
# autosave-ms = %d        # Debounce before an edit is saved

[timer]
# rest-presets = [60, 90, 120, 180]   # Rest lengths in seconds, keys 1-9
# rest-extend = %d                    # Seconds added by "+"
`,
		defaultLogLevel,
		defaultTemplate,
		defaultAutosaveMs,
		defaultRestExtend,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
