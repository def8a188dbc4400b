package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/example/fractalexplorer/internal/remote"
)

type serveCmd struct {
	*root
	fs      *flag.FlagSet
	view    *viewFlags
	addr    string
	width   int
	height  int
	workers int
}

func parseServeCmd(args []string, r *root) (*serveCmd, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	c := &serveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	c.view = addViewFlags(fs, r.config.Variant)
	fs.StringVar(&c.addr, "addr", "localhost:8080", "listen address")
	fs.IntVar(&c.width, "width", 800, "frame width in pixels")
	fs.IntVar(&c.height, "height", 600, "frame height in pixels")
	fs.IntVar(&c.workers, "workers", 0, "render goroutines (default: config value or one per CPU)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *serveCmd) Program() string { return c.subcommand("serve") }

func (c *serveCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *serveCmd) Run() error {
	v, err := c.view.viewport()
	if err != nil {
		return err
	}
	srv := &remote.Server{
		Width:  c.width,
		Height: c.height,
		Engine: c.engineOptions(c.workers),
		View:   v,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return srv.ListenAndServe(ctx, c.addr)
}
