// Command neu is a small modal text editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TheRakeshPurohit/neu/internal/app"
	"github.com/TheRakeshPurohit/neu/pkg/config"
	"github.com/TheRakeshPurohit/neu/pkg/logs"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to configuration file (default ~/.neu/config.yaml)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: neu [options] [file]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "neu: %v\n", err)
		return 1
	}
	logger := logs.FromEnv(cfg.Log.Enabled, cfg.Log.File)
	defer logger.Close()

	r := app.New(cfg, logger)
	if flag.NArg() > 0 {
		if err := r.LoadFile(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "neu: %v\n", err)
			return 1
		}
	}
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "neu: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
