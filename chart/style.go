package chart

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied sRGB color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA converts c for use with image/color based toolkits.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseColor accepts #RGB, #RRGGBB and #RRGGBBAA, with or without the
// leading '#'.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 3:
		return Color{
			R: uint8(v>>8&0xf) * 17,
			G: uint8(v>>4&0xf) * 17,
			B: uint8(v&0xf) * 17,
			A: 0xff,
		}, nil
	case 6:
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	case 8:
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: want 3, 6 or 8 hex digits", s)
	}
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Style holds every visual constant of a chart. Configuration is decoded on
// top of DefaultStyle, so omitted fields keep their defaults.
type Style struct {
	// GridRows and GridColumns count the horizontal and vertical
	// background lines.
	GridRows    int     `yaml:"grid_rows"`
	GridColumns int     `yaml:"grid_columns"`
	GridColor   Color   `yaml:"grid_color"`
	GridWidth   float64 `yaml:"grid_width"`

	Rising  Color `yaml:"rising_color"`
	Falling Color `yaml:"falling_color"`
	// AreaAlpha is the opacity of the top of the area gradient. The gradient
	// fades to transparent at the bottom edge.
	AreaAlpha uint8   `yaml:"area_alpha"`
	LineWidth float64 `yaml:"line_width"`

	Marker       Color   `yaml:"marker_color"`
	MarkerRadius float64 `yaml:"marker_radius"`
	RingRadius   float64 `yaml:"ring_radius"`
	GuideWidth   float64 `yaml:"guide_width"`

	LabelDate  Color   `yaml:"label_date_color"`
	LabelValue Color   `yaml:"label_value_color"`
	LabelGap   float64 `yaml:"label_gap"`
	DateSize   float64 `yaml:"date_size"`
	ValueSize  float64 `yaml:"value_size"`
}

func DefaultStyle() Style {
	return Style{
		GridRows:     5,
		GridColumns:  7,
		GridColor:    RGB(0x8e, 0x8e, 0x93).WithAlpha(0x1a),
		GridWidth:    0.5,
		Rising:       RGB(0x34, 0xc7, 0x59),
		Falling:      RGB(0xff, 0x3b, 0x30),
		AreaAlpha:    0x4c,
		LineWidth:    2,
		Marker:       RGB(0xff, 0xff, 0xff),
		MarkerRadius: 4,
		RingRadius:   8,
		GuideWidth:   1,
		LabelDate:    RGB(0x8e, 0x8e, 0x93),
		LabelValue:   RGB(0xff, 0xff, 0xff),
		LabelGap:     12,
		DateSize:     12,
		ValueSize:    16,
	}
}

// TrendColor returns the stroke color for t.
func (s Style) TrendColor(t Trend) Color {
	if t == Falling {
		return s.Falling
	}
	return s.Rising
}

// Validate reports every field that cannot be drawn.
func (s Style) Validate() error {
	var errs []error
	if s.GridRows < 0 {
		errs = append(errs, fmt.Errorf("grid_rows must not be negative, got %d", s.GridRows))
	}
	if s.GridColumns < 0 {
		errs = append(errs, fmt.Errorf("grid_columns must not be negative, got %d", s.GridColumns))
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"grid_width", s.GridWidth},
		{"line_width", s.LineWidth},
		{"marker_radius", s.MarkerRadius},
		{"ring_radius", s.RingRadius},
		{"guide_width", s.GuideWidth},
		{"label_gap", s.LabelGap},
		{"date_size", s.DateSize},
		{"value_size", s.ValueSize},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", f.name, f.value))
		}
	}
	return errors.Join(errs...)
}
