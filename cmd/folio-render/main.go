package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"git.sr.ht/~whereswaldon/folio/backend"
	"git.sr.ht/~whereswaldon/folio/chart"
	"git.sr.ht/~whereswaldon/folio/format"
	"git.sr.ht/~whereswaldon/folio/model"
	"git.sr.ht/~whereswaldon/folio/raster"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: render a portfolio chart to png
Usage:

 %[1]s -timeframe 1w -select-x 120 > chart.png

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	timeframeName := flag.String("timeframe", chart.DefaultTimeframe.String(), "Visible window: 1h, 8h, 1d, 1w, 1m, 6m or 1y")
	currencyName := flag.String("currency", format.PrimaryCode, "Label currency: INR or BTC")
	width := flag.Float64("width", 360, "Image width in pixels")
	height := flag.Float64("height", 220, "Image height in pixels")
	selectX := flag.Float64("select-x", -1, "Select the point nearest this x position; negative for no selection")
	historyName := flag.String("history", "", "CSV history to render instead of the demonstration data")
	styleName := flag.String("style", "", "YAML chart style (overridden by $"+backend.StyleEnv+")")
	fontName := flag.String("font", "", "TrueType font for labels")
	background := flag.String("background", "#000000", "Background color, empty for transparent")
	outputName := flag.String("output", "-", "Output file for the PNG")
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(config{
		timeframe:  *timeframeName,
		currency:   *currencyName,
		viewport:   chart.Viewport{Width: *width, Height: *height},
		selectX:    *selectX,
		history:    *historyName,
		style:      backend.StylePath(*styleName),
		font:       *fontName,
		background: *background,
		output:     *outputName,
	}); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
}

type config struct {
	timeframe, currency string
	viewport            chart.Viewport
	selectX             float64
	history, style      string
	font, background    string
	output              string
}

func run(cfg config) error {
	tf, err := chart.ParseTimeframe(cfg.timeframe)
	if err != nil {
		return err
	}
	mode, err := format.ParseCurrencyMode(cfg.currency)
	if err != nil {
		return err
	}
	style, err := backend.LoadStyle(cfg.style)
	if err != nil {
		return err
	}
	history := backend.Mock{}.History(time.Now())
	if cfg.history != "" {
		f, err := os.Open(cfg.history)
		if err != nil {
			return fmt.Errorf("failed opening history: %w", err)
		}
		history, err = backend.ReadHistoryCSV(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed reading %q: %w", cfg.history, err)
		}
	}
	opts := raster.Options{FontPath: cfg.font}
	if cfg.background != "" {
		bg, err := chart.ParseColor(cfg.background)
		if err != nil {
			return err
		}
		opts.Background = bg.NRGBA()
	}

	p := model.New(history)
	p.SelectTimeframe(tf)
	p.SetCurrency(mode)
	if cfg.selectX >= 0 {
		p.Press(cfg.selectX, cfg.viewport)
		p.Release()
	}
	scene := p.Scene(cfg.viewport, style)
	if v, ok := p.DisplayValue(); ok {
		log.Info().
			Str("timeframe", tf.String()).
			Int("points", len(p.Visible())).
			Str("value", p.Format.FormatValue(v, mode)).
			Msg("rendering")
	}

	var output io.WriteCloser = os.Stdout
	if cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("failed opening output file: %w", err)
		}
		output = f
	}
	if err := raster.New(opts).EncodePNG(output, scene); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}
