package mousearea

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/mousearea/pkg/core"
	"github.com/go-drift/mousearea/pkg/errors"
)

// ErrNilContent is reported when a builder returns no widget.
var ErrNilContent = stderrors.New("content builder returned nil")

// Resolver memoizes the subtree built for one MouseState.
//
// The cached widget and the state it was built from are only ever replaced
// together. A Resolver belongs to a single widget instance and is not safe
// for concurrent use.
type Resolver struct {
	builder ContentBuilder
	state   MouseState
	content core.Widget
	builds  int
}

// NewResolver returns an empty resolver for builder.
func NewResolver(builder ContentBuilder) *Resolver {
	return &Resolver{builder: builder}
}

// Update makes the cache reflect state. It rebuilds and returns true unless
// the cache already holds content built from an equal state.
func (r *Resolver) Update(state MouseState) bool {
	if r.content != nil && r.state == state {
		return false
	}
	content := r.build(state)
	r.state = state
	r.content = content
	return true
}

// takeOver moves prev's cache into r when both use equal builders and r has
// nothing cached yet. prev is left empty so the content keeps one owner.
func (r *Resolver) takeOver(prev *Resolver) bool {
	if prev == nil || prev == r || prev.content == nil || r.content != nil {
		return false
	}
	if !sameBuilder(r.builder, prev.builder) {
		return false
	}
	r.state, r.content = prev.state, prev.content
	prev.state, prev.content = MouseState{}, nil
	return true
}

// Resolve returns the cached subtree, building it from the zero MouseState
// if nothing has been cached yet. That first guess may not match the real
// pointer state; the next Update corrects it.
func (r *Resolver) Resolve() core.Widget {
	if r.content == nil {
		r.content = r.build(MouseState{})
		r.state = MouseState{}
	}
	return r.content
}

// State returns the state the cached content was built from, and whether
// anything is cached.
func (r *Resolver) State() (MouseState, bool) {
	return r.state, r.content != nil
}

// Builds returns how many times the builder has run.
func (r *Resolver) Builds() int {
	return r.builds
}

// build runs the builder. Failures are reported and then re-raised: a broken
// builder is a programming error and stays fatal.
func (r *Resolver) build(state MouseState) core.Widget {
	content := r.run(state)
	if content == nil {
		err := &errors.BuildError{
			Widget: fmt.Sprintf("%T", r.builder),
			Input:  state.String(),
			Err:    ErrNilContent,
		}
		errors.ReportBuildError(err)
		panic(err)
	}
	return content
}

func (r *Resolver) run(state MouseState) core.Widget {
	defer func() {
		if rec := recover(); rec != nil {
			errors.ReportBuildError(&errors.BuildError{
				Widget:     fmt.Sprintf("%T", r.builder),
				Input:      state.String(),
				Recovered:  rec,
				StackTrace: errors.CaptureStack(),
			})
			panic(rec)
		}
	}()
	r.builds++
	return r.builder.Build(state)
}
