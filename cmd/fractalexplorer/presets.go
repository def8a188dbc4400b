package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/example/fractalexplorer/internal/viewport"
)

type presetsCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parsePresetsCmd(args []string, r *root) (*presetsCmd, error) {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	c := &presetsCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *presetsCmd) Program() string { return c.subcommand("presets") }

func (c *presetsCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *presetsCmd) Run() error {
	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSLUG\tC")
	for _, p := range viewport.Presets {
		fmt.Fprintf(tw, "%s\t%s\t%.4f%+.4fi\n", p.Name, p.Slug(), p.C.X, p.C.Y)
	}
	return tw.Flush()
}
