package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"ShapeBoard/internal/state"
)

const Port = 8888

// Run modes.
const (
	ModeDesktop  = "desktop"
	ModeServe    = "serve"
	ModeDiscover = "discover"
	ModeConvert  = "convert"
)

// Config is everything main needs, taken from the command line.
type Config struct {
	Mode            string
	Port            int
	Name            string
	Advertise       bool
	DiscoverTimeout time.Duration
	Input           string
	Output          string
}

func parseConfig(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("shapeboard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg      Config
		serve    bool
		discover bool
	)
	fs.BoolVar(&serve, "serve", false, "run the drawing server for browser front-ends instead of the desktop app")
	fs.BoolVar(&discover, "discover", false, "list drawing servers on the local network and exit")
	fs.IntVar(&cfg.Port, "port", Port, "port the drawing server listens on")
	fs.BoolVar(&cfg.Advertise, "mdns", true, "advertise the drawing server over mDNS")
	fs.StringVar(&cfg.Name, "name", state.DefaultName, "name of new drawings")
	fs.DurationVar(&cfg.DiscoverTimeout, "timeout", 3*time.Second, "how long -discover listens")
	fs.StringVar(&cfg.Input, "convert", "", "exported drawing (.json) to convert")
	fs.StringVar(&cfg.Output, "o", "", "output of -convert; .json, .pdf or .svg")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	modes := 0
	cfg.Mode = ModeDesktop
	if serve {
		cfg.Mode = ModeServe
		modes++
	}
	if discover {
		cfg.Mode = ModeDiscover
		modes++
	}
	if cfg.Input != "" {
		cfg.Mode = ModeConvert
		modes++
	}
	if modes > 1 {
		return Config{}, errors.New("-serve, -discover and -convert are mutually exclusive")
	}

	if cfg.Mode == ModeConvert && cfg.Output == "" {
		return Config{}, errors.New("-convert needs an output file (-o)")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}
