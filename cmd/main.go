// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/satyam-v3/InfraMind/internal/config"
	"github.com/satyam-v3/InfraMind/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	// Initialize version info
	nuts.InitVersion()
	DrawLogo()
	nuts.L.Infof("[Main] Starting InfraMind room console v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	nuts.L.Infof("[Main] Catalog provider %q, refresh every %s", cfg.Catalog.Provider, cfg.Catalog.RefreshInterval)

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen when attached to a terminal.
func ClearConsole() {
	if tm.Width() <= 0 {
		return
	}
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"  ___        __           __  __ _           _ ",
		" |_ _|_ __  / _|_ __ __ _|  \\/  (_)_ __   __| |",
		"  | || '_ \\| |_| '__/ _` | |\\/| | | '_ \\ / _` |",
		"  | || | | |  _| | | (_| | |  | | | | | | (_| |",
		" |___|_| |_|_| |_|  \\__,_|_|  |_|_|_| |_|\\__,_|",
		"................................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
