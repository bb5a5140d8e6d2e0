package chart

// Selection is the highlighted point of a chart. The zero value is idle.
type Selection struct {
	Index  int
	Active bool
}

// Get returns the selected index and whether there is one.
func (s Selection) Get() (int, bool) {
	return s.Index, s.Active
}

type EventKind uint8

const (
	// Press is the first contact of a drag.
	Press EventKind = iota
	// Drag is pointer movement while the pointer is down.
	Drag
	// Release ends a drag. It never changes the selection.
	Release
	// Resync reports that the visible series now has Len points.
	Resync
)

// Event is an input to Transition. Press and Drag snap X through
// Projection; Resync uses Len, the number of visible points.
type Event struct {
	Kind       EventKind
	X          float64
	Projection Projection
	Len        int
}

// Transition is the selection state machine. It returns the next selection
// and whether it differs from sel.
func Transition(sel Selection, ev Event) (Selection, bool) {
	switch ev.Kind {
	case Press, Drag:
		idx, ok := ev.Projection.IndexAt(ev.X)
		if !ok {
			return sel, false
		}
		if sel.Active && sel.Index == idx {
			return sel, false
		}
		return Selection{Index: idx, Active: true}, true
	case Resync:
		if !sel.Active {
			return sel, false
		}
		if ev.Len <= 0 {
			return Selection{}, true
		}
		idx := clamp(sel.Index, 0, ev.Len-1)
		if idx == sel.Index {
			return sel, false
		}
		return Selection{Index: idx, Active: true}, true
	default:
		return sel, false
	}
}

// Tracker feeds pointer input through Transition for a series of a known
// length. OnChange, if set, is invoked after every change of selection; it is
// the hook hosts use for haptics or analytics.
type Tracker struct {
	OnChange func(Selection)

	sel      Selection
	n        int
	dragging bool
}

func (t *Tracker) Selection() Selection {
	return t.sel
}

// Len returns the number of points the tracker selects among.
func (t *Tracker) Len() int {
	return t.n
}

// Dragging reports whether a press has been seen without its release.
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Press starts a drag at x, snapped to the nearest point of proj. It reports
// whether the selection changed.
func (t *Tracker) Press(x float64, proj Projection) bool {
	t.dragging = true
	return t.apply(Event{Kind: Press, X: x, Projection: proj, Len: t.n})
}

// Drag moves an active drag to x. Movement without a preceding Press is
// ignored.
func (t *Tracker) Drag(x float64, proj Projection) bool {
	if !t.dragging {
		return false
	}
	return t.apply(Event{Kind: Drag, X: x, Projection: proj, Len: t.n})
}

// Release ends the drag. The selection stays where it was.
func (t *Tracker) Release() {
	t.dragging = false
	t.apply(Event{Kind: Release, Len: t.n})
}

// Resync must be called whenever the visible series changes length. An
// active selection is clamped into [0, n-1], or cleared when n is zero.
func (t *Tracker) Resync(n int) bool {
	t.n = max(n, 0)
	return t.apply(Event{Kind: Resync, Len: t.n})
}

// Clear drops the selection.
func (t *Tracker) Clear() bool {
	t.dragging = false
	if !t.sel.Active {
		return false
	}
	t.sel = Selection{}
	t.notify()
	return true
}

func (t *Tracker) apply(ev Event) bool {
	next, changed := Transition(t.sel, ev)
	if !changed {
		return false
	}
	t.sel = next
	t.notify()
	return true
}

func (t *Tracker) notify() {
	if t.OnChange != nil {
		t.OnChange(t.sel)
	}
}
