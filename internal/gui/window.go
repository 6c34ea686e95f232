package gui

import (
	"sync"

	"hello-window/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle  = "Hello"
	GreetingText = "Hello, world!"

	MinWindowWidth  = 320
	MinWindowHeight = 120
)

// MainWindow is the single top-level window. Its only content is a static
// label that is set before the window can be shown.
type MainWindow struct {
	window fyne.Window
	label  *widget.Label
	logger logger.Logger

	mu       sync.Mutex
	shown    bool
	closed   bool
	onClosed func()
}

func NewMainWindow(fyneApp fyne.App, log logger.Logger) *MainWindow {
	window := fyneApp.NewWindow(WindowTitle)
	label := widget.NewLabel(GreetingText)

	mw := &MainWindow{
		window: window,
		label:  label,
		logger: log,
	}

	window.SetContent(label)
	window.SetMaster()
	window.Resize(calculateWindowSize(label.MinSize()))
	window.CenterOnScreen()
	window.SetOnClosed(mw.handleClosed)

	log.Debug("MainWindow", "window constructed", map[string]interface{}{
		"title": WindowTitle,
		"text":  GreetingText,
	})

	return mw
}

// Show makes the window visible. Calls after the first are no-ops.
func (mw *MainWindow) Show() {
	mw.mu.Lock()
	if mw.shown {
		mw.mu.Unlock()
		mw.logger.Debug("MainWindow", "show ignored, already visible", nil)
		return
	}
	mw.shown = true
	mw.mu.Unlock()

	mw.window.Show()
	mw.logger.Info("MainWindow", "window shown", map[string]interface{}{
		"title": WindowTitle,
	})
}

func (mw *MainWindow) Shown() bool {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.shown
}

func (mw *MainWindow) Closed() bool {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.closed
}

func (mw *MainWindow) Text() string {
	return mw.label.Text
}

func (mw *MainWindow) Content() fyne.CanvasObject {
	return mw.window.Content()
}

func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// SetOnClosed registers a hook run once, after the window has closed.
func (mw *MainWindow) SetOnClosed(fn func()) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.onClosed = fn
}

// Close closes the window unless it is already closed.
func (mw *MainWindow) Close() {
	if mw.Closed() {
		return
	}
	mw.window.Close()
}

func (mw *MainWindow) handleClosed() {
	mw.mu.Lock()
	if mw.closed {
		mw.mu.Unlock()
		return
	}
	mw.closed = true
	hook := mw.onClosed
	mw.mu.Unlock()

	mw.logger.Info("MainWindow", "window closed", nil)
	if hook != nil {
		hook()
	}
}

func calculateWindowSize(content fyne.Size) fyne.Size {
	return fyne.NewSize(
		max(content.Width, MinWindowWidth),
		max(content.Height, MinWindowHeight),
	)
}
