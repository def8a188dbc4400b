package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/fractalexplorer/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func capture(t *testing.T) *[]sent {
	t.Helper()
	var got []sent
	original := sendFn
	sendFn = func(title, body string, opts platform.Options) error {
		got = append(got, sent{title, body, opts})
		return nil
	}
	t.Cleanup(func() { sendFn = original })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Copy("image")
	n.Save("x.png")
	var nilNotifier *Notifier
	nilNotifier.Copy("image")
	if len(*got) != 0 {
		t.Fatalf("unexpected notifications: %+v", *got)
	}
}

func TestSaveUsesFileAsIcon(t *testing.T) {
	got := capture(t)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventSave, true)
	n.Save(path)
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	s := (*got)[0]
	if s.title != "Fractal Explorer" || s.body != "Saved "+path || s.opts.IconPath != path {
		t.Fatalf("notification = %+v", s)
	}
}

func TestCopyDefaultsDetail(t *testing.T) {
	got := capture(t)
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy(" ")
	if len(*got) != 1 || (*got)[0].body != "Copied image to clipboard" {
		t.Fatalf("notifications = %+v", *got)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("FRACTALEXPLORER_NOTIFY_TITLE", "Fractals")
	t.Setenv("FRACTALEXPLORER_NOTIFY_RENDER_TEXT", "Done: %s")
	prefs := LoadPreferences()
	if prefs.Title != "Fractals" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if prefs.Events[EventRender].Template != "Done: %s" {
		t.Fatalf("render template = %q", prefs.Events[EventRender].Template)
	}
	if prefs.Events[EventSave].Template != "Saved %s" {
		t.Fatalf("save template changed: %q", prefs.Events[EventSave].Template)
	}
}
