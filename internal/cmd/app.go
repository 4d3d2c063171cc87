// Package cmd implements the sorter command-line interface.
package cmd

import (
	"io"
	"os"
	"sync"

	"file-sorter/internal/config"
	"file-sorter/internal/configstore"
	"file-sorter/internal/configstore/filesystem"
	"file-sorter/internal/editor"
	"file-sorter/internal/logging"
)

// App holds application state shared across commands.
type App struct {
	Editor   *editor.Editor
	Settings config.Settings
	Out      io.Writer
	Err      io.Writer
	JSON     bool // list output in JSON format
}

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Captured from flags before Execute()
	PrefsPath  string
	Overrides  config.Overrides
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a mock/test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	settings, err := config.Resolve(p.PrefsPath, p.Overrides)
	if err != nil {
		return nil, err
	}

	logging.Setup(settings.Verbose, settings.LogFormat, errOut)

	file := filesystem.New(settings.ConfigPath)
	logging.Debug("preferences resolved", "config", file.Path(), "prefs", p.PrefsPath)
	store := configstore.New(file)

	return &App{
		Editor:   editor.New(store, editor.TextReporter{Out: out}),
		Settings: settings,
		Out:      out,
		Err:      errOut,
		JSON:     p.JSONOutput,
	}, nil
}
