package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/ytget/randomizer/internal/config"
	"github.com/ytget/randomizer/internal/logger"
	"github.com/ytget/randomizer/internal/picker"
	"github.com/ytget/randomizer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(ui.AppID)

	settings := config.NewSettingsFromApp(myApp)
	level, levelErr := logger.ParseLevel(settings.GetLogLevel())
	log := logger.NewConsoleLogger(level)
	if levelErr != nil {
		log.Warning("Application", "falling back to info level", map[string]interface{}{
			"error": levelErr.Error(),
		})
	}

	log.Info("Application", "starting", map[string]interface{}{"version": version})

	myApp.Settings().SetTheme(ui.NewTheme(settings.GetTextSize()))

	myWindow := myApp.NewWindow(ui.AppTitle)
	myWindow.Resize(settings.GetWindowSize())

	pickerSvc := picker.NewService(picker.WithLogger(log))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, pickerSvc, log)

	// Show and run
	myWindow.ShowAndRun()

	log.Info("Application", "stopped", nil)
}
