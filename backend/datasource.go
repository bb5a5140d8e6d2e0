package backend

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"git.sr.ht/~whereswaldon/folio/chart"
	"github.com/rs/zerolog/log"
)

// feed holds a value and delivers the latest one to every subscriber. Slow
// subscribers skip intermediate values.
type feed[T any] struct {
	lock  sync.Mutex
	value T
	subs  map[chan T]struct{}
}

func newFeed[T any](initial T) *feed[T] {
	return &feed[T]{
		value: initial,
		subs:  make(map[chan T]struct{}),
	}
}

func (f *feed[T]) Load() T {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.value
}

func (f *feed[T]) Store(v T) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.value = v
	for ch := range f.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Subscribe returns a channel that immediately holds the current value and
// is closed once ctx is done.
func (f *feed[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)
	f.lock.Lock()
	ch <- f.value
	f.subs[ch] = struct{}{}
	f.lock.Unlock()
	go func() {
		<-ctx.Done()
		f.lock.Lock()
		defer f.lock.Unlock()
		delete(f.subs, ch)
		close(ch)
	}()
	return ch
}

// DemoSource is the Status source of the built-in history.
const DemoSource = "demo data"

// Status describes where the current history came from and the outcome of
// the last import.
type Status struct {
	Source string
	Err    error
}

// Datasource owns the portfolio history shown by the application.
type Datasource struct {
	mock    Mock
	history *feed[[]chart.Point]
	status  *feed[Status]
}

// NewDatasource starts with the mock history ending at now.
func NewDatasource(now time.Time) *Datasource {
	var mock Mock
	return &Datasource{
		mock:    mock,
		history: newFeed(mock.History(now)),
		status:  newFeed(Status{Source: DemoSource}),
	}
}

// Status streams the import status.
func (d *Datasource) Status(ctx context.Context) <-chan Status {
	return d.status.Subscribe(ctx)
}

func (d *Datasource) CurrentStatus() Status {
	return d.status.Load()
}

// Current returns the history as of the last update.
func (d *Datasource) Current() []chart.Point {
	return d.history.Load()
}

// History streams the current history followed by every replacement. It is
// shaped as a skel stream provider.
func (d *Datasource) History(ctx context.Context) <-chan []chart.Point {
	return d.history.Subscribe(ctx)
}

// Set replaces the history. Callers must not modify pts afterwards.
func (d *Datasource) Set(pts []chart.Point) error {
	if len(pts) == 0 {
		return ErrEmptyHistory
	}
	d.history.Store(pts)
	return nil
}

// Import replaces the history with the CSV read from r. On failure the
// current history is kept and the error is also published as the status.
func (d *Datasource) Import(r io.Reader) error {
	source := "import"
	if f, ok := r.(interface{ Name() string }); ok {
		source = f.Name()
	}
	pts, err := ReadHistoryCSV(r)
	if err == nil {
		err = d.Set(pts)
	}
	if err != nil {
		err = fmt.Errorf("failed importing %s: %w", source, err)
		d.status.Store(Status{Source: d.status.Load().Source, Err: err})
		return err
	}
	log.Info().Str("source", source).Int("points", len(pts)).Msg("imported history")
	d.status.Store(Status{Source: source})
	return nil
}

// ImportPath imports the CSV file at path.
func (d *Datasource) ImportPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("failed opening history: %w", err)
		d.status.Store(Status{Source: d.status.Load().Source, Err: err})
		return err
	}
	defer f.Close()
	return d.Import(f)
}

// Follow re-imports path every time it changes, until ctx is done. A file
// caught mid-write fails to parse and leaves the previous history in place
// until the next change.
func (d *Datasource) Follow(ctx context.Context, path string) error {
	return watchFile(ctx, path, func() {
		if err := d.ImportPath(path); err != nil {
			log.Warn().Err(err).Msg("keeping previous history")
		}
	})
}

// Reset restores the mock history ending at now.
func (d *Datasource) Reset(now time.Time) {
	d.history.Store(d.mock.History(now))
	d.status.Store(Status{Source: DemoSource})
}
