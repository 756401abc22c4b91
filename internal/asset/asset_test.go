package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGIF(t *testing.T, frames int) string {
	t.Helper()
	pal := color.Palette{color.Black, color.White}
	g := &gif.GIF{}
	for i := 0; i < frames; i++ {
		g.Image = append(g.Image, image.NewPaletted(image.Rect(0, 0, 4, 3), pal))
		g.Delay = append(g.Delay, 10)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	path := filepath.Join(t.TempDir(), "satellite.gif")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write gif: %v", err)
	}
	return path
}

func TestLoadGIF(t *testing.T) {
	path := writeGIF(t, 3)
	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Frames != 3 || a.Width != 4 || a.Height != 3 {
		t.Fatalf("unexpected asset: %+v", a)
	}
	if got := a.Summary(); got != "🛰 satellite.gif (3 frames, 4x3)" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images", "satellite.gif")
	_, err := Load(path)
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
	banner, err := Banner(path)
	if err == nil {
		t.Fatalf("expected error from Banner")
	}
	if !strings.Contains(banner, "табылмады") || !strings.HasPrefix(banner, path) {
		t.Fatalf("unexpected warning %q", banner)
	}
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "satellite.gif")
	if err := os.WriteFile(path, []byte("not a gif"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Frames != 0 || a.Size != 9 {
		t.Fatalf("unexpected asset: %+v", a)
	}
	if !strings.Contains(a.Summary(), "9 bytes") {
		t.Fatalf("unexpected summary %q", a.Summary())
	}
}
