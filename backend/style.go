package backend

import (
	"context"
	"fmt"
	"os"

	"git.sr.ht/~whereswaldon/folio/chart"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// StyleEnv names the environment variable that overrides the style path.
const StyleEnv = "FOLIO_STYLE"

// StylePath picks the style file to use: the environment override wins over
// flagValue.
func StylePath(flagValue string) string {
	if p := os.Getenv(StyleEnv); p != "" {
		return p
	}
	return flagValue
}

// LoadStyle decodes a YAML style on top of chart.DefaultStyle. An empty path
// yields the defaults.
func LoadStyle(path string) (chart.Style, error) {
	style := chart.DefaultStyle()
	if path == "" {
		return style, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return style, fmt.Errorf("failed reading style: %w", err)
	}
	if err := yaml.Unmarshal(b, &style); err != nil {
		return chart.DefaultStyle(), fmt.Errorf("failed parsing style %q: %w", path, err)
	}
	if err := style.Validate(); err != nil {
		return chart.DefaultStyle(), fmt.Errorf("invalid style %q: %w", path, err)
	}
	return style, nil
}

// StyleSource publishes the chart style, reloading it when its file
// changes.
type StyleSource struct {
	path  string
	style *feed[chart.Style]
}

// NewStyleSource loads path once. An empty path serves the defaults forever.
func NewStyleSource(path string) (*StyleSource, error) {
	style, err := LoadStyle(path)
	if err != nil {
		return nil, err
	}
	return &StyleSource{
		path:  path,
		style: newFeed(style),
	}, nil
}

func (s *StyleSource) Current() chart.Style {
	return s.style.Load()
}

// Stream is a skel stream provider for the style.
func (s *StyleSource) Stream(ctx context.Context) <-chan chart.Style {
	return s.style.Subscribe(ctx)
}

// Reload rereads the style file. A broken file leaves the current style in
// place.
func (s *StyleSource) Reload() error {
	style, err := LoadStyle(s.path)
	if err != nil {
		return err
	}
	s.style.Store(style)
	return nil
}

// Watch reloads the style whenever its file is written, until ctx is done.
func (s *StyleSource) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}
	return watchFile(ctx, s.path, func() {
		if err := s.Reload(); err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("keeping previous style")
			return
		}
		log.Info().Str("path", s.path).Msg("reloaded style")
	})
}
