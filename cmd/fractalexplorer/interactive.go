package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/example/fractalexplorer/internal/appstate"
	"github.com/example/fractalexplorer/internal/viewport"
)

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

var errNoWindow = errors.New("no window open; use open first")

type interactiveCmd struct {
	*root
	fs     *flag.FlagSet
	execs  commandList
	in     io.Reader
	stdout io.Writer
	stderr io.Writer

	mu    sync.Mutex
	view  viewport.Viewport
	state *appstate.AppState
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	c := &interactiveCmd{
		root:   r,
		fs:     fs,
		in:     os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		view:   viewport.New(r.config.Variant),
	}
	fs.Usage = usageFunc(c)
	fs.Var(&c.execs, "e", "execute interactive command in immediate mode (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *interactiveCmd) Program() string { return c.subcommand("interactive") }

func (c *interactiveCmd) FlagSet() *flag.FlagSet { return c.fs }

func (c *interactiveCmd) Run() error {
	if c.root.interactive != nil {
		return fmt.Errorf("already in interactive mode")
	}
	c.root.interactive = c
	defer func() { c.root.interactive = nil }()

	if len(c.execs) > 0 {
		for _, line := range c.execs {
			done, err := c.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(c.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := c.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(c.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// executeLine runs one command and reports whether the session should end.
func (c *interactiveCmd) executeLine(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case "exit", "quit":
		return true, nil
	case "help":
		c.printHelp()
		return false, nil
	case "open":
		return false, c.root.dispatch("explore", append(c.viewArgs(), args[1:]...))
	case "status":
		fmt.Fprintln(c.stdout, c.currentView().Status())
		return false, nil
	case "action":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: action NAME")
		}
		return false, c.trigger(args[1])
	case "render":
		return false, c.root.dispatch("render", append(c.viewArgs(), args[1:]...))
	case "interactive":
		return false, nil
	}
	if ok, err := c.editView(args); ok {
		return false, err
	}
	return false, c.root.dispatch(args[0], args[1:])
}

// editView handles the commands that change the current view. It reports
// false when args is not one of them.
func (c *interactiveCmd) editView(args []string) (bool, error) {
	v := c.currentView()
	switch args[0] {
	case "variant":
		if len(args) != 2 {
			return true, fmt.Errorf("usage: variant NAME")
		}
		variant, err := viewport.ParseVariant(args[1])
		if err != nil {
			return true, err
		}
		v.Reset(variant)
	case "zoom":
		nums, err := parseFloats(args[1:], 1, "zoom FACTOR")
		if err != nil {
			return true, err
		}
		if !(nums[0] > 0) {
			return true, fmt.Errorf("zoom must be positive")
		}
		v.Zoom = nums[0]
	case "center":
		nums, err := parseFloats(args[1:], 2, "center X Y")
		if err != nil {
			return true, err
		}
		v.Center = viewport.Point{X: nums[0], Y: nums[1]}
	case "julia":
		nums, err := parseFloats(args[1:], 2, "julia RE IM")
		if err != nil {
			return true, err
		}
		v.SetJuliaC(nums[0], nums[1])
	case "preset":
		if len(args) < 2 {
			return true, fmt.Errorf("usage: preset NAME")
		}
		p, err := viewport.PresetByName(strings.Join(args[1:], " "))
		if err != nil {
			return true, err
		}
		v.ApplyPreset(p)
	default:
		return false, nil
	}
	if !v.Valid() {
		return true, fmt.Errorf("invalid view %+v", v)
	}
	c.setView(v)
	if st := c.window(); st != nil && !st.SetViewport(v) {
		return true, errNoWindow
	}
	return true, nil
}

func parseFloats(args []string, n int, usage string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = f
	}
	return out, nil
}

func (c *interactiveCmd) trigger(name string) error {
	st := c.window()
	if st == nil || !st.Trigger(name) {
		return errNoWindow
	}
	return nil
}

// viewArgs renders the current view as explore/render flags.
func (c *interactiveCmd) viewArgs() []string {
	v := c.currentView()
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return []string{
		"-variant", v.Variant.String(),
		"-center-x", f(v.Center.X),
		"-center-y", f(v.Center.Y),
		"-zoom", f(v.Zoom),
		"-julia-re", f(v.JuliaC.X),
		"-julia-im", f(v.JuliaC.Y),
	}
}

// open starts an explorer window that later commands can drive.
func (c *interactiveCmd) open(opts ...appstate.Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != nil {
		return fmt.Errorf("window already open")
	}
	opts = append(opts,
		appstate.WithViewListener(c.setView),
		appstate.WithOnClose(c.closed),
	)
	c.state = appstate.New(opts...)
	c.view = c.state.View
	go c.state.Run()
	return nil
}

func (c *interactiveCmd) closed() {
	c.mu.Lock()
	c.state = nil
	c.mu.Unlock()
}

func (c *interactiveCmd) window() *appstate.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *interactiveCmd) currentView() viewport.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *interactiveCmd) setView(v viewport.Viewport) {
	c.mu.Lock()
	c.view = v
	c.mu.Unlock()
}

func (c *interactiveCmd) printHelp() {
	fmt.Fprint(c.stdout, `Commands:
  open [explore flags]    open a window on the current view
  status                  print the current view
  variant NAME            switch fractal and reset the view
  zoom FACTOR             set the zoom
  center X Y              set the view center
  julia RE IM             set the Julia constant
  preset NAME             apply a Julia preset
  action NAME             run a window shortcut (zoom-in, pan-left, save, copy, reset, ...)
  render [render flags]   write the current view to a PNG
  exit                    leave interactive mode
Any other line runs as a fractalexplorer subcommand.
`)
}
