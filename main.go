package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"ShapeBoard/internal/export"
	boardnet "ShapeBoard/internal/net"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/ui"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	switch cfg.Mode {
	case ModeServe:
		err = runServer(cfg)
	case ModeDiscover:
		err = runDiscover(cfg, os.Stdout)
	case ModeConvert:
		err = runConvert(cfg)
	default:
		runDesktop(cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runDesktop(cfg Config) {
	log.Println("Starting desktop app")
	ui.RunApp(state.NewBoard(cfg.Name), "")
}

func runServer(cfg Config) error {
	log.Println("Starting drawing server")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Advertise {
		adv, err := boardnet.Advertise(cfg.Port)
		if err != nil {
			// Discovery is a convenience; the server works without it.
			log.Printf("[MDNS] %v", err)
		} else {
			defer adv.Shutdown()
		}
	}

	log.Printf("Browsers on this network can connect to %s", boardnet.ShareLink(cfg.Port))
	srv := boardnet.NewServer(fmt.Sprintf(":%d", cfg.Port), cfg.Name)
	return srv.ListenAndServe(ctx)
}

func runDiscover(cfg Config, out io.Writer) error {
	log.Printf("Looking for drawing servers for %v", cfg.DiscoverTimeout)
	found := 0
	err := boardnet.Browse(cfg.DiscoverTimeout, func(addr string) {
		found++
		fmt.Fprintf(out, "ws://%s/ws\n", addr)
	})
	if err != nil {
		return err
	}
	if found == 0 {
		log.Println("No drawing servers found")
	}
	return nil
}

// outputs picks a renderer by output file extension.
var outputs = map[string]func(io.Writer, state.Document) error{
	".json": func(w io.Writer, doc state.Document) error {
		data, err := export.Serialize(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	},
	".pdf": export.WritePDF,
	".svg": export.WriteSVG,
}

func runConvert(cfg Config) error {
	render, ok := outputs[strings.ToLower(filepath.Ext(cfg.Output))]
	if !ok {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(cfg.Output))
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", cfg.Input, err)
	}
	doc, err := export.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	var buf bytes.Buffer
	if err := render(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", cfg.Output, err)
	}
	log.Printf("Converted %q (%d shapes) to %s", doc.Name, len(doc.Shapes), cfg.Output)
	return nil
}
