package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/bubble"
	"honnef.co/go/bubble/message"
	"honnef.co/go/bubble/render"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(render.DefaultPalette, p); d != "" {
		t.Errorf("unexpected palette (-want +got):\n%s", d)
	}
	if cfg.Expiry != 10*time.Second {
		t.Errorf("got expiry %s", cfg.Expiry)
	}
}

func TestParse(t *testing.T) {
	const data = `
style:
  corner_radius: 12
  tail_width: 6
layout:
  max_width: 300
colors:
  sent: "#34c759"
expiry: 1m30s
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Style.CornerRadius = 12
	want.Style.TailWidth = 6
	want.Layout.MaxWidth = 300
	want.Colors.Sent = "#34c759"
	want.Expiry = 90 * time.Second
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Palette.Sent != (color.RGBA{0x34, 0xc7, 0x59, 0xff}) {
		t.Errorf("got sent color %v", opts.Palette.Sent)
	}
	if opts.Style.CornerRadius != 12 {
		t.Errorf("got corner radius %g", opts.Style.CornerRadius)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "colour: red\n",
		"syntax":          "style: [\n",
		"negative radius": "style:\n  corner_radius: -1\n",
		"bad color":       "colors:\n  background: blue\n",
		"negative expiry": "expiry: -1s\n",
		"small layout":    "layout:\n  max_width: 10\n",
		"bad duration":    "expiry: soon\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("got error %v, want ErrInvalid", err)
			}
		})
	}

	_, err := Parse([]byte("style:\n  tail_height: -2\n"))
	if !errors.Is(err, bubble.ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bubble.yaml")
	if err := os.WriteFile(path, []byte("expiry: 0s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Expiry != 0 {
		t.Errorf("got expiry %s", cfg.Expiry)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got error %v, want ErrNotExist", err)
	}
}

func TestScript(t *testing.T) {
	const data = `
- type: received
  content: Are you coming?
- type: sent
  content: On my way
  tail: none
- type: sent
  content: "5 minutes"
- content: ""
`
	s, err := ParseScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 4 {
		t.Fatalf("got %d entries, want 4", len(s))
	}
	msgs, tails := s.Messages()
	var contents []string
	var types []message.Type
	for _, m := range msgs {
		contents = append(contents, m.Content)
		types = append(types, m.Type)
	}
	if d := cmp.Diff([]string{"Are you coming?", "On my way", "5 minutes", ""}, contents); d != "" {
		t.Errorf("unexpected contents (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]message.Type{message.Received, message.Sent, message.Sent, message.Sent}, types); d != "" {
		t.Errorf("unexpected types (-want +got):\n%s", d)
	}
	want := []message.TailPosition{message.TailNone, message.TailNone, message.TailUndefined, message.TailUndefined}
	if d := cmp.Diff(want, tails); d != "" {
		t.Errorf("unexpected tails (-want +got):\n%s", d)
	}

	for _, bad := range []string{
		"- type: forwarded\n",
		"- tail: up\n",
		"- colour: red\n",
	} {
		if _, err := ParseScript([]byte(bad)); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseScript(%q): got error %v", bad, err)
		}
	}
}
