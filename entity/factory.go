package entity

import (
	"github.com/lixenwraith/grid-shooter/constants"
	"github.com/lixenwraith/grid-shooter/core"
)

// Factory builds entities and owns their identity counter
// IDs are unique per factory and increase monotonically from 1
type Factory struct {
	lastID uint64
}

// NewFactory creates a factory whose first entity gets ID 1
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) nextID() uint64 {
	f.lastID++
	return f.lastID
}

// LastID returns the most recently assigned ID, 0 before the first entity
func (f *Factory) LastID() uint64 {
	return f.lastID
}

// NewPlayer creates the player at the bottom centre of the playfield
func (f *Factory) NewPlayer(w World) *Entity {
	e := newEntity(f.nextID(), KindPlayer, w, playerShape())
	e.hitPoints = constants.PlayerHitPoints
	e.place(core.NewPoint(w.MaxRow(), w.MaxCol()/2))
	return e
}

// NewEnemy creates a stationary enemy at the given location
func (f *Factory) NewEnemy(w World, at core.Point) *Entity {
	e := newEntity(f.nextID(), KindEnemy, w, enemyShape())
	e.hitPoints = constants.EnemyHitPoints
	e.place(at)
	return e
}

// NewProjectile creates a projectile travelling with a constant velocity
func (f *Factory) NewProjectile(w World, at, velocity core.Point) *Entity {
	e := newEntity(f.nextID(), KindProjectile, w, projectileShape())
	e.place(at)
	e.velocity = velocity
	return e
}
