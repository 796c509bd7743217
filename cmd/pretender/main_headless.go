//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/appengine-ltd/pretender/internal/config"
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
		scriptPath  string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to the yaml config file (default ./"+config.DefaultPath+" or the user config dir)")
	flag.StringVar(&scriptPath, "script", "-", "event script to play, - for stdin")
	flag.Parse()

	if showVersion {
		fmt.Printf("Pretender %s (%s) %s (headless)\n", version, commit, date)
		return
	}

	cfg, log, err := setup(config.Resolve(configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var script io.Reader = os.Stdin
	if scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		script = f
	}

	if err := runScript(cfg, log, script, os.Stdout); err != nil {
		log.Error("script failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
