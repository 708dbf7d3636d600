package game

import "github.com/go-gl/mathgl/mgl64"

// Point is a screen coordinate, x then y.
type Point = mgl64.Vec2

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X() >= r.X && p.X() <= r.X+r.W && p.Y() >= r.Y && p.Y() <= r.Y+r.H
}

func midpoint(a, b Point) Point { return a.Add(b).Mul(0.5) }

func distance(a, b Point) float64 { return b.Sub(a).Len() }

// PointerSession maps active pointer ids to their last known position.
// Arrival order is kept so the pinch pair is stable while a third finger
// comes and goes.
type PointerSession struct {
	pos   map[int]Point
	order []int
}

// NewPointerSession returns an empty session.
func NewPointerSession() *PointerSession {
	return &PointerSession{pos: make(map[int]Point)}
}

// Set records the position of id, adding it if new.
func (ps *PointerSession) Set(id int, p Point) {
	if _, ok := ps.pos[id]; !ok {
		ps.order = append(ps.order, id)
	}
	ps.pos[id] = p
}

// Has reports whether id is active.
func (ps *PointerSession) Has(id int) bool {
	_, ok := ps.pos[id]
	return ok
}

// Remove drops id. Unknown ids are ignored.
func (ps *PointerSession) Remove(id int) {
	if _, ok := ps.pos[id]; !ok {
		return
	}
	delete(ps.pos, id)
	for i, v := range ps.order {
		if v == id {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			break
		}
	}
}

// Count is the number of active pointers.
func (ps *PointerSession) Count() int { return len(ps.order) }

// First returns the earliest active pointer.
func (ps *PointerSession) First() (Point, bool) {
	if len(ps.order) == 0 {
		return Point{}, false
	}
	return ps.pos[ps.order[0]], true
}

// Pair returns the centroid and separation of the first two pointers.
// ok is false with fewer than two active.
func (ps *PointerSession) Pair() (center Point, dist float64, ok bool) {
	if len(ps.order) < 2 {
		return Point{}, 0, false
	}
	a, b := ps.pos[ps.order[0]], ps.pos[ps.order[1]]
	return midpoint(a, b), distance(a, b), true
}

// Clear drops every pointer.
func (ps *PointerSession) Clear() {
	clear(ps.pos)
	ps.order = ps.order[:0]
}
