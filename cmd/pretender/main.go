//go:build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/appengine-ltd/pretender/internal/gui"
	"go.uber.org/zap"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to the yaml config file (default ./"+config.DefaultPath+" or the user config dir)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pretender %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, log, err := setup(config.Resolve(configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	app := gui.NewApp(gui.AppConfig{
		Version: version,
		Config:  cfg,
		Log:     log,
	})
	if err := app.Run(); err != nil {
		log.Error("app exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
