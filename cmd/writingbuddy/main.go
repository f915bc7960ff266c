package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"writingbuddy/internal/bootstrap"
	"writingbuddy/internal/platform/config"
	"writingbuddy/internal/platform/i18n"
	"writingbuddy/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configFile string
	initialize bool
	logFile    string
	logLevel   string
	language   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "writingbuddy",
		Short:         "Distraction-free writing sessions in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, flags)
		},
	}
	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file (toml, yaml or json; extension optional)")
	root.PersistentFlags().BoolVarP(&flags.initialize, "initialize-config", "i", false, "write a default config file when none is found")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "append logs to this file (overrides log_file)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "trace|debug|info|warn|error|off (overrides log_level)")
	root.PersistentFlags().StringVar(&flags.language, "lang", "", "UI language, e.g. de or en-US (overrides language)")

	root.AddCommand(newHistoryCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	return root
}

func loadSettings(flags *rootFlags) (config.Loaded, error) {
	loaded, err := config.Load(config.LoadOptions{ConfigFile: flags.configFile, Initialize: flags.initialize})
	if err != nil {
		return config.Loaded{}, err
	}
	if flags.logFile != "" {
		loaded.Settings.LogFile = flags.logFile
	}
	if flags.logLevel != "" {
		loaded.Settings.LogLevel = strings.ToLower(flags.logLevel)
		if err := loaded.Settings.Validate(); err != nil {
			return config.Loaded{}, err
		}
	}
	if flags.language != "" {
		loaded.Settings.Language = flags.language
	}
	return loaded, nil
}

// loadApp wires the application. The returned close function also closes
// the log file.
func loadApp(cmd *cobra.Command, flags *rootFlags) (*bootstrap.App, config.Loaded, func(), error) {
	loaded, err := loadSettings(flags)
	if err != nil {
		return nil, config.Loaded{}, nil, err
	}
	logger, closeLog, err := logging.New(logging.Options{Path: loaded.Settings.LogFile, Level: loaded.Settings.LogLevel})
	if err != nil {
		return nil, config.Loaded{}, nil, err
	}
	logger.Info("config loaded", "path", loaded.Path, "created", loaded.Created)
	app, err := bootstrap.New(bootstrap.Options{
		Settings:  loaded.Settings,
		Logger:    logger,
		Languages: i18n.EnvLocales(),
	})
	if err != nil {
		_ = closeLog()
		return nil, config.Loaded{}, nil, err
	}
	if loaded.Created {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.Text.Messagef("created-config", loaded.Path))
	}
	return app, loaded, func() {
		if err := app.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
		_ = closeLog()
	}, nil
}

func runSession(cmd *cobra.Command, flags *rootFlags) error {
	app, _, closeApp, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	defer closeApp()

	session := app.NewSession()
	runErr := bootstrap.RunTUI(session, app.Text)

	// The text is stored even when the terminal loop failed.
	if err := persist(cmd.Context(), cmd.OutOrStdout(), app, session); err != nil {
		if runErr != nil {
			return fmt.Errorf("run terminal ui: %v; store text: %w", runErr, err)
		}
		return err
	}
	if runErr != nil {
		return fmt.Errorf("run terminal ui: %w", runErr)
	}
	return nil
}

func persist(ctx context.Context, w io.Writer, app *bootstrap.App, session bootstrap.Session) error {
	pending, err := session.CLI.Pending(ctx)
	if err != nil {
		return fmt.Errorf("resolve output file: %w", err)
	}
	if !pending.HasText {
		return nil
	}
	_, _ = fmt.Fprintln(w, app.Text.Messagef("storing-text", pending.Path))
	if _, err := session.CLI.Finish(ctx); err != nil {
		return fmt.Errorf("store text: %w", err)
	}
	return nil
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List recent writing sessions (requires history_db)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, closeApp, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer closeApp()
			rows, err := app.ManuscriptCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), app.Text.Message("history-empty"))
				return nil
			}
			for _, r := range rows {
				goals := "-"
				if r.WordGoal > 0 || r.TimeGoalSeconds > 0 {
					goals = "missed"
					if r.GoalsAchieved {
						goals = "met"
					}
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%dw\t%s\tgoals=%s\tresets=%d\t%s\t%s\n",
					r.FinishedAt.Local().Format("2006-01-02 15:04"),
					r.Words,
					(time.Duration(r.ActiveSeconds) * time.Second).String(),
					goals,
					r.Resets,
					r.Path,
					r.Title,
				)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 20, "number of sessions to list")
	return history
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cfg := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadSettings(flags)
			if err != nil {
				return err
			}
			source := loaded.Path
			if source == "" {
				source = "built-in defaults"
			}
			b, err := yaml.Marshal(loaded.Settings)
			if err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", source, b)
			return nil
		},
	})
	return cfg
}
