package main

import (
	"fmt"
	"log"
	"runtime"
	"sync/atomic"

	"desk-calculator/internal/controllers"
	"desk-calculator/internal/history"
	"desk-calculator/internal/logger"
	"desk-calculator/internal/models"
	"desk-calculator/internal/services"
	"desk-calculator/internal/shutdown"
	"desk-calculator/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

const (
	AppName    = "Calculator"
	AppID      = "com.desk.calculator"
	AppVersion = "1.0.0"

	windowWidth  = 420
	windowHeight = 560
)

// Application wires the calculator MVC components to the Fyne app
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	service    *services.CalculatorService
	store      *history.Store

	shutdown     *shutdown.Manager
	windowClosed atomic.Bool
}

func main() {
	application, err := NewApplication(afero.NewOsFs())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication creates the window, loads the history file from fs and
// connects controller, view and service.
func NewApplication(fs afero.Fs) (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())
	appLogger.Info("Application", "application starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%dx%d", windowWidth, windowHeight),
		"go_version":  runtime.Version(),
	})

	store := history.NewStore(history.DefaultPath, history.WithFs(fs), history.WithLogger(appLogger))
	service := services.NewCalculatorService(
		models.NewCalculatorState(),
		models.NewMemoryStack(),
		services.LoadHistory(store, appLogger),
		store,
		appLogger,
	)

	mainView := views.NewMainView(fyneApp, window)
	mainController := controllers.NewMainController(service, appLogger)
	mainController.SetMainView(mainView)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("controller", mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: mainController,
		view:       mainView,
		service:    service,
		store:      store,
		shutdown:   shutdownManager,
	}

	application.setupWindowEvents()

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"history_file":    store.Path(),
		"history_entries": len(service.History()),
	})

	return application, nil
}

// Run shows the window and blocks in the Fyne event loop until it closes.
// A shutdown started elsewhere, e.g. by a signal, closes the window.
func (a *Application) Run() {
	a.shutdown.OnShutdown(func() {
		if !a.windowClosed.Load() {
			fyne.Do(a.window.Close)
		}
	})
	a.shutdown.Listen()

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.windowClosed.Store(true)
		a.logger.Info("Application", "window closed", nil)
		a.shutdown.Shutdown()
	})
}
