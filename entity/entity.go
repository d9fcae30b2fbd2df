package entity

import (
	"fmt"

	"github.com/lixenwraith/grid-shooter/core"
	"github.com/lixenwraith/grid-shooter/render"
)

// Kind tags the entity variant
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Creature reports whether the variant carries hit points
func (k Kind) Creature() bool {
	return k == KindPlayer || k == KindEnemy
}

// Canvas is the write path entities draw through
type Canvas interface {
	FillPixel(ch rune, color render.Color, row, col int)
}

// World is what an entity needs from the game that owns it: playfield bounds and the canvas
type World interface {
	MaxRow() int
	MaxCol() int
	Canvas() Canvas
}

// eraseColor is painted over vacated cells
const eraseColor = render.ColorBlack

// Entity is a game object; variant behaviour is selected by kind
type Entity struct {
	id    uint64
	kind  Kind
	world World

	shape    [][]rune
	colorMap [][]render.Color

	current  core.Point
	previous core.Point
	velocity core.Point

	// Velocity set by Move is cleared after the next frame
	oneShot bool

	expiring  bool
	hitPoints int
	frame     int
}

func newEntity(id uint64, kind Kind, world World, shape [][]rune) *Entity {
	return &Entity{
		id:    id,
		kind:  kind,
		world: world,
		shape: shape,
	}
}

// ID returns the unique identity assigned by the factory
func (e *Entity) ID() uint64 { return e.id }

// Kind returns the variant tag
func (e *Entity) Kind() Kind { return e.kind }

// Shape returns the glyph rows; callers must not modify it
func (e *Entity) Shape() [][]rune { return e.shape }

// Location returns the top-left cell of the shape
func (e *Entity) Location() core.Point { return e.current }

// PreviousLocation returns the location before the last move
func (e *Entity) PreviousLocation() core.Point { return e.previous }

// Velocity returns the per-frame displacement
func (e *Entity) Velocity() core.Point { return e.velocity }

// SetVelocity sets a persistent per-frame displacement
func (e *Entity) SetVelocity(v core.Point) {
	e.velocity = v
	e.oneShot = false
}

// HitPoints returns the remaining hit points, zero for projectiles
func (e *Entity) HitPoints() int { return e.hitPoints }

// Frame returns how many frames the entity has advanced
func (e *Entity) Frame() int { return e.frame }

// Height returns the number of shape rows
func (e *Entity) Height() int { return len(e.shape) }

// Width returns the widest shape row
func (e *Entity) Width() int {
	width := 0
	for _, row := range e.shape {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// SetLocation moves the entity, clamping so the whole shape stays inside the playfield
// The location before the call is kept for erasing
func (e *Entity) SetLocation(p core.Point) {
	e.previous = e.current
	e.current = e.clamp(p)
}

// place sets the initial location without leaving an erase trail at the origin
func (e *Entity) place(p core.Point) {
	e.current = e.clamp(p)
	e.previous = e.current
}

func (e *Entity) limits() (maxRow, maxCol int) {
	return e.world.MaxRow() - e.Height() + 1, e.world.MaxCol() - e.Width() + 1
}

func (e *Entity) clamp(p core.Point) core.Point {
	maxRow, maxCol := e.limits()
	return core.NewPoint(clampInt(p.Row, maxRow), clampInt(p.Col, maxCol))
}

func clampInt(v, hi int) int {
	if v >= hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}

// SetColor replaces the colour map with a single colour sized to the shape
func (e *Entity) SetColor(color render.Color) {
	e.colorMap = make([][]render.Color, len(e.shape))
	for row, glyphs := range e.shape {
		e.colorMap[row] = make([]render.Color, len(glyphs))
		for col := range glyphs {
			e.colorMap[row][col] = color
		}
	}
}

// ColorMap returns the per-glyph colours, regenerating a white map if it no longer matches the shape
func (e *Entity) ColorMap() [][]render.Color {
	if !e.colorMapMatches() {
		e.SetColor(render.ColorWhite)
	}
	return e.colorMap
}

func (e *Entity) colorMapMatches() bool {
	if len(e.colorMap) != len(e.shape) {
		return false
	}
	for row := range e.shape {
		if len(e.colorMap[row]) != len(e.shape[row]) {
			return false
		}
	}
	return true
}

// Draw erases the image at the previous location and paints the shape at the current one
func (e *Entity) Draw() {
	e.ErasePrevious()

	canvas := e.world.Canvas()
	colors := e.ColorMap()
	for row, glyphs := range e.shape {
		for col, ch := range glyphs {
			canvas.FillPixel(ch, colors[row][col], e.current.Row+row, e.current.Col+col)
		}
	}
}

// ErasePrevious blanks every shape cell at the previous location
func (e *Entity) ErasePrevious() {
	canvas := e.world.Canvas()
	for row, glyphs := range e.shape {
		for col := range glyphs {
			canvas.FillPixel(' ', eraseColor, e.previous.Row+row, e.previous.Col+col)
		}
	}
}

// NextFrame advances the location by the velocity and counts the frame
func (e *Entity) NextFrame() {
	e.SetLocation(e.current.ShiftBy(e.velocity))
	e.frame++
	if e.oneShot {
		e.velocity = core.Point{}
		e.oneShot = false
	}
}

// Move sets a displacement that applies to the next frame only
func (e *Entity) Move(displacement core.Point) {
	e.velocity = displacement
	e.oneShot = true
}

// IsOutOfBound reports whether the unclamped next location would push the shape outside the playfield
func (e *Entity) IsOutOfBound() bool {
	next := e.current.ShiftBy(e.velocity)
	maxRow, maxCol := e.limits()
	rowInBound := next.Row >= 0 && next.Row <= maxRow
	colInBound := next.Col >= 0 && next.Col <= maxCol
	return !(rowInBound && colInBound)
}

// IsColliding tests bounding-box overlap against other
// Spans are half-open; an edge of e landing on other's start counts as a hit
func (e *Entity) IsColliding(other *Entity) bool {
	cols := spanHits(e.current.Col, e.Width(), other.current.Col, other.Width())
	rows := spanHits(e.current.Row, e.Height(), other.current.Row, other.Height())
	return cols && rows
}

// spanHits reports whether either edge of span a lies in [bStart, bStart+bSpan),
// or b starts inside [aStart, aStart+aSpan)
func spanHits(aStart, aSpan, bStart, bSpan int) bool {
	bEnd := bStart + bSpan
	aEnd := aStart + aSpan
	nearEdge := aStart >= bStart && aStart < bEnd
	farEdge := aEnd >= bStart && aEnd < bEnd
	contains := bStart >= aStart && bStart < aEnd
	return nearEdge || farEdge || contains
}

// MarkExpiring flags the entity for removal on the next update
func (e *Entity) MarkExpiring() {
	e.expiring = true
}

// Damage removes hit points from a creature
func (e *Entity) Damage(points int) {
	if e.kind.Creature() {
		e.hitPoints -= points
	}
}

// IsExpiring reports whether the entity is due for removal
func (e *Entity) IsExpiring() bool {
	switch e.kind {
	case KindPlayer:
		return false
	case KindEnemy:
		return e.expiring || e.hitPoints <= 0
	case KindProjectile:
		return e.expiring || e.IsOutOfBound()
	default:
		return e.expiring
	}
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d@%s", e.kind, e.id, e.current)
}
