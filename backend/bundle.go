package backend

import (
	"context"

	"git.sr.ht/~gioverse/skel/stream"
)

type WindowState struct {
	Bundle
	Controller *stream.Controller
}

// NewWindowState binds bundle to one window. invalidate is the window's
// Invalidate method.
func NewWindowState(ctx context.Context, bundle Bundle, invalidate func()) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, invalidate),
	}
}

// Bundle is the application-wide state shared by every window.
type Bundle struct {
	Mock    Mock
	History *Datasource
	Styles  *StyleSource
}

func NewBundle(history *Datasource, styles *StyleSource) Bundle {
	return Bundle{
		History: history,
		Styles:  styles,
	}
}
