// Package main provides the entry point for the Ashby Plotter application.
package main

import (
	"log"
	"os"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"ashby-plotter/internal/app"
	"ashby-plotter/ui/mainwindow"
	"ashby-plotter/ui/prefs"
)

const (
	appTitle   = "Ashby Plotter"
	appVersion = "0.1.0"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, appVersion)

	fyneApp := fyneapp.NewWithID("ashby-plotter")
	fyneApp.Settings().SetTheme(&app.AshbyTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Handle command line arguments
	if len(os.Args) > 1 {
		dataPath := os.Args[1]
		if err := appState.LoadTable(dataPath); err != nil {
			log.Printf("Failed to load %s: %v", dataPath, err)
		}
	}

	setupHotReload(win, appPrefs)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow, appPrefs *prefs.Prefs) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	reloader.OnTick(func() {
		appPrefs.FlushIfDirty()
	})

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if restart {
					log.Println("Hot reload: saving preferences before restart...")
					if err := appPrefs.Save(); err != nil {
						log.Printf("Hot reload: saving preferences failed: %v", err)
					}
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
					return
				}
				reloader.ResetBaseline()
				reloader.Start()
			}, win)
	})

	reloader.Start()
}
