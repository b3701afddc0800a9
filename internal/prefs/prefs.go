// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
)

const prefsFile = "preferences.json"

// Prefs stores the editor's persistent settings. The checkerboard pair is
// the transparent-background pattern behind the artwork; it belongs to the
// appearance layer, not the core, and is injected into the canvas widget.
type Prefs struct {
	CheckerLight string `json:"checker_light"`
	CheckerDark  string `json:"checker_dark"`
	GridWidth    int    `json:"grid_width"`
	GridHeight   int    `json:"grid_height"`
	BrushSize    int    `json:"brush_size"`
	SharePort    int    `json:"share_port"`

	path string
}

func defaults() *Prefs {
	return &Prefs{
		CheckerLight: "#C8C8C8",
		CheckerDark:  "#969696",
		GridWidth:    32,
		GridHeight:   32,
		BrushSize:    1,
		SharePort:    8890,
	}
}

// Load reads preferences from ~/.config/pixelpad/preferences.json, falling
// back to defaults for anything missing or unreadable.
func Load() *Prefs {
	p := defaults()

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	p.path = filepath.Join(configDir, "pixelpad", prefsFile)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, p)
	p.sanitize()
	return p
}

func (p *Prefs) sanitize() {
	d := defaults()
	if _, err := ParseHexColor(p.CheckerLight); err != nil {
		p.CheckerLight = d.CheckerLight
	}
	if _, err := ParseHexColor(p.CheckerDark); err != nil {
		p.CheckerDark = d.CheckerDark
	}
	if p.GridWidth < 1 || p.GridWidth > 320 {
		p.GridWidth = d.GridWidth
	}
	if p.GridHeight < 1 || p.GridHeight > 320 {
		p.GridHeight = d.GridHeight
	}
	if p.BrushSize < 1 || p.BrushSize > 16 {
		p.BrushSize = d.BrushSize
	}
	if p.SharePort < 1 || p.SharePort > 65535 {
		p.SharePort = d.SharePort
	}
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// CheckerColors returns the decoded checkerboard pair.
func (p *Prefs) CheckerColors() (light, dark color.NRGBA) {
	light, _ = ParseHexColor(p.CheckerLight)
	dark, _ = ParseHexColor(p.CheckerDark)
	return light, dark
}

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ParseHexColor parses "#RRGGBB" (leading '#' optional) into an opaque
// color. Anything else is rejected.
func ParseHexColor(s string) (color.NRGBA, error) {
	m := hexColorRe.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q, expected #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(m[1], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatHexColor renders a color as "#RRGGBB" for display and storage.
func FormatHexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
