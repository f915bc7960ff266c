package bootstrap

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	manuscriptinadapter "writingbuddy/internal/modules/manuscript/adapter/in"
	manuscriptoutadapter "writingbuddy/internal/modules/manuscript/adapter/out"
	manuscriptin "writingbuddy/internal/modules/manuscript/port/in"
	manuscriptout "writingbuddy/internal/modules/manuscript/port/out"
	manuscriptservice "writingbuddy/internal/modules/manuscript/service"
	manuscriptusecase "writingbuddy/internal/modules/manuscript/usecase"
	sessioninadapter "writingbuddy/internal/modules/session/adapter/in"
	sessionoutadapter "writingbuddy/internal/modules/session/adapter/out"
	"writingbuddy/internal/modules/session/domain"
	sessionservice "writingbuddy/internal/modules/session/service"
	sessionusecase "writingbuddy/internal/modules/session/usecase"
	"writingbuddy/internal/platform/clock"
	"writingbuddy/internal/platform/config"
	"writingbuddy/internal/platform/i18n"
	"writingbuddy/internal/platform/id"
	uiapp "writingbuddy/internal/ui/app"
)

type Options struct {
	Settings config.Settings
	Logger   hclog.Logger
	// WorkDir is where output files and a relative history_db resolve.
	// Empty means the process working directory.
	WorkDir string
	// Languages are locale candidates used when Settings.Language is empty.
	Languages []string
	Clock     clock.Clock
}

type App struct {
	Settings      config.Settings
	Text          *i18n.Catalog
	ManuscriptCLI manuscriptinadapter.CLIHandler

	logger     hclog.Logger
	clock      clock.Clock
	manuscript manuscriptin.Usecase
	closers    []func() error
}

// Session is the composed writing session of one run.
type Session struct {
	TUI sessioninadapter.TUIHandler
	CLI sessioninadapter.CLIHandler
}

func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}

	languages := opts.Languages
	if opts.Settings.Language != "" {
		languages = append([]string{opts.Settings.Language}, languages...)
	}
	text, err := i18n.New(languages...)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	app := &App{Settings: opts.Settings, Text: text, logger: logger, clock: clk}

	var history manuscriptout.HistoryStore
	if opts.Settings.HistoryDB != "" {
		dbPath := opts.Settings.HistoryDB
		if opts.WorkDir != "" && !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(opts.WorkDir, dbPath)
		}
		store, err := manuscriptoutadapter.NewSQLiteHistoryStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		app.closers = append(app.closers, store.Close)
		history = store
	}

	app.manuscript = manuscriptusecase.NewInteractor(manuscriptservice.NewManuscriptService(
		id.UUID{},
		logger,
		manuscriptoutadapter.NewFileAppender(),
		history,
		opts.WorkDir,
		opts.Settings.FileFormat,
	))
	app.ManuscriptCLI = manuscriptinadapter.NewCLIHandler(app.manuscript)
	logger.Debug("app ready", "language", text.Language(), "history", history != nil)
	return app, nil
}

// NewSession starts the single writing session of this process.
func (a *App) NewSession() Session {
	uc := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		a.clock,
		a.logger,
		sessionoutadapter.NewManuscriptAdapter(a.manuscript),
		SessionSettings(a.Settings),
		a.Settings.TitleFormat,
	))
	return Session{
		TUI: sessioninadapter.NewTUIHandler(uc),
		CLI: sessioninadapter.NewCLIHandler(uc),
	}
}

// SessionSettings converts file settings, in whole seconds, to session
// settings.
func SessionSettings(s config.Settings) domain.Settings {
	return domain.Settings{
		TimeGoal:         time.Duration(s.TimeGoal) * time.Second,
		WordGoal:         s.WordGoal,
		StrictMode:       s.StrictMode,
		BackspaceEnabled: s.BackspaceActive,
		KeystrokeTimeout: time.Duration(s.KeystrokeTimeout) * time.Second,
	}.Normalize()
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// RunTUI blocks until the user quits. The terminal is restored before it
// returns, also on error.
func RunTUI(session Session, text *i18n.Catalog, opts ...tea.ProgramOption) error {
	model := uiapp.NewModel(session.TUI, text)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	_, err := program.Run()
	return err
}
