package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/example/fractalexplorer/internal/viewport"
)

func newTestInteractive(t *testing.T, input string) (*interactiveCmd, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cmd, err := parseInteractiveCmd(nil, newTestRoot())
	if err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	cmd.in = strings.NewReader(input)
	cmd.stdout = &out
	cmd.stderr = &errOut
	return cmd, &out, &errOut
}

func TestInteractiveEditsView(t *testing.T) {
	cmd, out, errOut := newTestInteractive(t, "variant julia\npreset douady rabbit\nzoom 4\ncenter 0.1 -0.2\nstatus\nexit\nzoom 9\n")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected errors: %s", errOut)
	}
	v := cmd.currentView()
	want := viewport.Viewport{
		Center:  viewport.Point{X: 0.1, Y: -0.2},
		Zoom:    4,
		Variant: viewport.Julia,
		JuliaC:  viewport.Point{X: -0.123, Y: 0.745},
	}
	if v != want {
		t.Fatalf("view = %+v", v)
	}
	if !strings.Contains(out.String(), "Julia Set  Zoom: 4.00e+00") {
		t.Fatalf("status not printed: %q", out.String())
	}
}

func TestInteractiveReportsErrorsAndContinues(t *testing.T) {
	cmd, _, errOut := newTestInteractive(t, "zoom -1\nvariant nope\nfrobnicate\nvariant koch\n")
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"zoom must be positive", "unknown fractal variant", "Usage: fractalexplorer"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q: %q", want, errOut.String())
		}
	}
	if got := cmd.currentView().Variant; got != viewport.Koch {
		t.Fatalf("variant = %v", got)
	}
}

func TestInteractiveActionNeedsWindow(t *testing.T) {
	cmd, _, _ := newTestInteractive(t, "")
	cmd.execs = commandList{"action zoom-in"}
	if err := cmd.Run(); !errors.Is(err, errNoWindow) {
		t.Fatalf("expected errNoWindow, got %v", err)
	}
}

func TestViewArgsRoundTrip(t *testing.T) {
	cmd, _, _ := newTestInteractive(t, "")
	v := viewport.New(viewport.Julia)
	v.Center = viewport.Point{X: -0.743643887037151, Y: 0.13182590420533}
	v.Zoom = 1e9
	cmd.setView(v)

	rc, err := parseRenderCmd(cmd.viewArgs(), cmd.root)
	if err != nil {
		t.Fatal(err)
	}
	got, err := rc.view.viewport()
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Fatalf("round trip = %+v, want %+v", got, v)
	}
}
