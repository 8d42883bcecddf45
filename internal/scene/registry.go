// Package scene keeps placed profile curves behind stable handles so that
// frame code can look them up again instead of holding references.
package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Faultbox/nurbsview/internal/curve"
	"github.com/Faultbox/nurbsview/internal/picking"
	"github.com/Faultbox/nurbsview/pkg/math"
)

// ErrUnknownCurve is returned for handles that are not in the registry.
var ErrUnknownCurve = errors.New("unknown curve")

// Entry is a profile curve placed in the scene.
type Entry struct {
	Profile   curve.Profile
	Placement math.Transform
	Selected  bool
}

// World returns the entry's curve in world space.
func (e *Entry) World() curve.Curve {
	return e.Profile.Curve.Transformed(e.Placement.Matrix())
}

// Registry is an arena of placed curves keyed by handle. Iteration follows
// insertion order. It is owned by a single frame loop and is not safe for
// concurrent mutation.
type Registry struct {
	nextID  curve.ID
	order   []curve.ID
	entries map[curve.ID]*Entry
	loft    []curve.ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[curve.ID]*Entry),
	}
}

// Add places c in the scene and returns its handle.
func (r *Registry) Add(c curve.Curve, placement math.Transform) curve.ID {
	r.nextID++
	id := r.nextID
	r.entries[id] = &Entry{
		Profile:   curve.Profile{ID: id, Curve: c},
		Placement: placement,
	}
	r.order = append(r.order, id)
	return id
}

// Get looks up an entry by handle.
func (r *Registry) Get(id curve.ID) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Remove deletes an entry and drops it from the loft targets.
func (r *Registry) Remove(id curve.ID) bool {
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	r.order = slices.DeleteFunc(r.order, func(o curve.ID) bool { return o == id })
	r.loft = slices.DeleteFunc(r.loft, func(o curve.ID) bool { return o == id })
	return true
}

// Len returns the number of placed curves.
func (r *Registry) Len() int {
	return len(r.order)
}

// SetPlacement moves a curve.
func (r *Registry) SetPlacement(id curve.ID, t math.Transform) error {
	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCurve, id)
	}
	e.Placement = t
	return nil
}

// Candidates lists every curve except the excluded handles, in insertion order.
func (r *Registry) Candidates(exclude ...curve.ID) []picking.Candidate {
	out := make([]picking.Candidate, 0, len(r.order))
	for _, id := range r.order {
		if slices.Contains(exclude, id) {
			continue
		}
		e := r.entries[id]
		out = append(out, picking.Candidate{
			ID:        id,
			Curve:     e.Profile.Curve,
			Placement: e.Placement,
		})
	}
	return out
}

// Pick resolves the curve under ray, ignoring excluded handles.
func (r *Registry) Pick(res *picking.Resolver, ray picking.Ray, exclude ...curve.ID) (*Entry, picking.Match, bool) {
	m, ok := res.Resolve(ray, r.Candidates(exclude...))
	if !ok {
		return nil, picking.Match{}, false
	}
	return r.entries[m.Candidate.ID], m, true
}

// Select marks a single curve as selected, clearing any previous selection.
func (r *Registry) Select(id curve.ID) error {
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCurve, id)
	}
	for _, e := range r.entries {
		e.Selected = e.Profile.ID == id
	}
	return nil
}

// ClearSelection deselects every curve.
func (r *Registry) ClearSelection() {
	for _, e := range r.entries {
		e.Selected = false
	}
}

// Selected returns the handles of selected curves in insertion order.
func (r *Registry) Selected() []curve.ID {
	var ids []curve.ID
	for _, id := range r.order {
		if r.entries[id].Selected {
			ids = append(ids, id)
		}
	}
	return ids
}

// AddLoftTarget appends a curve to the loft sequence. Adding a curve twice is a no-op.
func (r *Registry) AddLoftTarget(id curve.ID) error {
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCurve, id)
	}
	if !slices.Contains(r.loft, id) {
		r.loft = append(r.loft, id)
	}
	return nil
}

// LoftTargets returns the loft sequence in the order curves were added.
func (r *Registry) LoftTargets() []curve.ID {
	return slices.Clone(r.loft)
}

// ClearLoftTargets empties the loft sequence.
func (r *Registry) ClearLoftTargets() {
	r.loft = r.loft[:0]
}

// WorldCurves returns the world-space curves for ids, skipping unknown handles.
func (r *Registry) WorldCurves(ids []curve.ID) []curve.Curve {
	out := make([]curve.Curve, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.entries[id]; ok {
			out = append(out, e.World())
		}
	}
	return out
}
