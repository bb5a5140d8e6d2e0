package main

import (
	"image/color"

	"gioui.org/widget/material"
	"git.sr.ht/~whereswaldon/folio/chart"
)

// Dark palette of the application.
var (
	background = color.NRGBA{A: 0xff}
	surface    = color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 0xff}
	foreground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	secondary  = color.NRGBA{R: 0x8e, G: 0x8e, B: 0x93, A: 0xff}
	accent     = color.NRGBA{R: 0x0a, G: 0x84, B: 0xff, A: 0xff}
)

func darkPalette() material.Palette {
	return material.Palette{
		Bg:         background,
		Fg:         foreground,
		ContrastBg: accent,
		ContrastFg: foreground,
	}
}

// changeColor picks the rising or falling color of style for a change.
func changeColor(style chart.Style, positive bool) color.NRGBA {
	if positive {
		return style.Rising.NRGBA()
	}
	return style.Falling.NRGBA()
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
