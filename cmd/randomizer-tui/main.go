package main

import (
	"github.com/ytget/randomizer/internal/config"
	"github.com/ytget/randomizer/internal/logger"
	"github.com/ytget/randomizer/internal/picker"
	"github.com/ytget/randomizer/internal/tui"
)

func main() {
	// No Fyne app in the terminal, so settings come from defaults
	settings := config.NewSettings(nil)

	level, _ := logger.ParseLevel(settings.GetLogLevel())
	log := logger.NewConsoleLogger(level)

	p := picker.NewService(picker.WithLogger(log))

	if err := tui.Run(p, log); err != nil {
		log.Fatal("TUI", err)
	}
}
