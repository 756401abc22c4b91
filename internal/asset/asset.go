// Package asset loads the decorative satellite animation shown in the
// dashboard header. The asset is optional: a missing file is reported as a
// warning and never stops the session.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image/gif"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMissingAsset is returned when the decorative file does not exist.
var ErrMissingAsset = errors.New("asset not found")

// Asset describes a loaded animation.
type Asset struct {
	Path   string
	Size   int
	Frames int
	Width  int
	Height int
}

// Load reads the GIF at path. A file that exists but cannot be decoded is
// still returned with its size, so the header can mention it.
func Load(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("read asset: %w", err)
	}
	a := &Asset{Path: path, Size: len(data)}
	if g, err := gif.DecodeAll(bytes.NewReader(data)); err == nil {
		a.Frames = len(g.Image)
		a.Width = g.Config.Width
		a.Height = g.Config.Height
	}
	return a, nil
}

// Summary is the one-line header description of the asset.
func (a *Asset) Summary() string {
	name := filepath.Base(a.Path)
	if a.Frames == 0 {
		return fmt.Sprintf("🛰 %s (%d bytes)", name, a.Size)
	}
	return fmt.Sprintf("🛰 %s (%d frames, %dx%d)", name, a.Frames, a.Width, a.Height)
}

// Warning is the text shown in place of a missing asset.
func Warning(path string) string {
	return fmt.Sprintf("%s табылмады. images папкасында тұрғанын тексер.", path)
}

// Banner loads the asset and returns the header line, falling back to the
// warning text on any error. The error is returned for logging.
func Banner(path string) (string, error) {
	a, err := Load(path)
	if err != nil {
		return Warning(path), err
	}
	return a.Summary(), nil
}
