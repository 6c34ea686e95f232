package app

import (
	"context"
	"errors"
	"sync"

	"hello-window/internal/gui"
	"hello-window/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Hello Window"
	AppID      = "io.github.hellowindow"
	AppVersion = "1.0.0"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

var ErrNilApp = errors.New("fyne app is nil")

// Application owns the toolkit event loop and the main window.
type Application struct {
	fyneApp   fyne.App
	window    *gui.MainWindow
	logger    logger.Logger
	lifecycle *Lifecycle

	quitOnce sync.Once
}

// NewFyneApp creates the production toolkit app with its metadata set.
func NewFyneApp() fyne.App {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return app.NewWithID(AppID)
}

func NewApplication(fyneApp fyne.App, log logger.Logger) (*Application, error) {
	if fyneApp == nil {
		return nil, ErrNilApp
	}
	if log == nil {
		log = logger.Nop()
	}

	window := gui.NewMainWindow(fyneApp, log)

	application := &Application{
		fyneApp:   fyneApp,
		window:    window,
		logger:    log,
		lifecycle: NewLifecycle(log),
	}

	application.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
	})

	return application, nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "main window closed, stopping event loop", nil)
		a.lifecycle.Shutdown()
		a.fyneApp.Quit()
	})
}

// Run shows the main window and blocks in the event loop until the window is
// closed, Quit is called, or ctx is cancelled.
func (a *Application) Run(ctx context.Context) int {
	stop := context.AfterFunc(ctx, func() {
		a.logger.Info("Application", "context cancelled, quitting", nil)
		a.Quit()
	})
	defer stop()

	a.window.Show()

	a.logger.Info("Application", "entering event loop", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	a.logger.Info("Application", "event loop finished", map[string]interface{}{
		"exit_code": ExitOK,
	})

	return ExitOK
}

// Quit asks the event loop to stop by closing the main window. Safe to call
// repeatedly and from any goroutine.
func (a *Application) Quit() {
	a.quitOnce.Do(func() {
		a.logger.Debug("Application", "quit requested", nil)
		fyne.Do(func() {
			if a.window.Closed() {
				a.fyneApp.Quit()
				return
			}
			a.window.Close()
		})
	})
}

// Shutdown lets the signal-driven shutdown manager stop the application.
func (a *Application) Shutdown() {
	a.Quit()
}

func (a *Application) Window() *gui.MainWindow {
	return a.window
}

// OnShutdown registers a teardown step run once when the event loop stops.
// Steps run in reverse registration order.
func (a *Application) OnShutdown(name string, fn func()) {
	a.lifecycle.Register(name, fn)
}
