package engine

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/grid-shooter/constants"
	"github.com/lixenwraith/grid-shooter/core"
	"github.com/lixenwraith/grid-shooter/entity"
	"github.com/lixenwraith/grid-shooter/input"
	"github.com/lixenwraith/grid-shooter/render"
	"github.com/lixenwraith/grid-shooter/status"
)

// SoundPlayer plays the game's sound cues; implementations must not block the tick
type SoundPlayer interface {
	PlayFire()
	PlayHit()
	PlayWave()
}

type silentSound struct{}

func (silentSound) PlayFire() {}
func (silentSound) PlayHit()  {}
func (silentSound) PlayWave() {}

// Config holds the fixed construction parameters of a game
// Zero values select defaults
type Config struct {
	Rows            int
	Cols            int
	FramesPerSecond int

	Rand    *rand.Rand
	Sound   SoundPlayer
	Metrics *status.Registry
	Clock   Clock
}

// DefaultConfig returns a 24x48 playfield at 30 frames per second
func DefaultConfig() Config {
	return Config{
		Rows:            constants.DefaultRows,
		Cols:            constants.DefaultCols,
		FramesPerSecond: constants.DefaultFramesPerSecond,
	}
}

func (c Config) withDefaults() Config {
	if c.Rows == 0 {
		c.Rows = constants.DefaultRows
	}
	if c.Cols == 0 {
		c.Cols = constants.DefaultCols
	}
	if c.FramesPerSecond <= 0 {
		c.FramesPerSecond = constants.DefaultFramesPerSecond
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Sound == nil {
		c.Sound = silentSound{}
	}
	if c.Metrics == nil {
		c.Metrics = status.NewRegistry()
	}
	if c.Clock == nil {
		c.Clock = NewTimeProvider()
	}
	return c
}

// Game owns the grid, the entity roster and the tick loop
// All methods run on the loop goroutine
type Game struct {
	grid      *render.Grid
	factory   *entity.Factory
	player    *entity.Entity
	entities  []*entity.Entity
	rng       *rand.Rand
	sound     SoundPlayer
	scheduler *Scheduler

	maxRow, maxCol int

	killCount int
	wave      int
	running   bool

	// Cached metric pointers
	statTicks    *atomic.Int64
	statKills    *atomic.Int64
	statWaves    *atomic.Int64
	statEntities *atomic.Int64
	statCells    *atomic.Int64
	statShots    *atomic.Int64
	statRunning  *atomic.Bool
}

// NewGame builds the grid, the player and the first wave, then renders the opening frame
func NewGame(cfg Config, surface render.Surface) (*Game, error) {
	cfg = cfg.withDefaults()

	grid, err := render.NewGrid(cfg.Rows, cfg.Cols, surface)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	g := &Game{
		grid:      grid,
		factory:   entity.NewFactory(),
		rng:       cfg.Rand,
		sound:     cfg.Sound,
		scheduler: NewScheduler(cfg.Clock, constants.FrameInterval(cfg.FramesPerSecond)),
		maxRow:    cfg.Rows - 1,
		maxCol:    cfg.Cols - 1,

		statTicks:    cfg.Metrics.Ints.Get("engine.ticks"),
		statKills:    cfg.Metrics.Ints.Get("game.kills"),
		statWaves:    cfg.Metrics.Ints.Get("game.waves"),
		statEntities: cfg.Metrics.Ints.Get("game.entities"),
		statCells:    cfg.Metrics.Ints.Get("render.cells"),
		statShots:    cfg.Metrics.Ints.Get("game.shots"),
		statRunning:  cfg.Metrics.Bools.Get("game.running"),
	}

	g.player = g.factory.NewPlayer(g)
	g.entities = append(g.entities, g.player)
	g.spawnEnemies()
	g.grid.InitializeWindow()
	g.Update()

	log.Printf("game: %dx%d playfield at %d fps", cfg.Rows, cfg.Cols, cfg.FramesPerSecond)
	return g, nil
}

// MaxRow returns the last playfield row
func (g *Game) MaxRow() int { return g.maxRow }

// MaxCol returns the last playfield column
func (g *Game) MaxCol() int { return g.maxCol }

// Canvas returns the grid entities draw into
func (g *Game) Canvas() entity.Canvas { return g.grid }

// Grid returns the game grid
func (g *Game) Grid() *render.Grid { return g.grid }

// Player returns the player entity
func (g *Game) Player() *entity.Entity { return g.player }

// Entities returns the roster in draw order; callers must not modify it
func (g *Game) Entities() []*entity.Entity { return g.entities }

// KillCount returns the number of enemies destroyed
func (g *Game) KillCount() int { return g.killCount }

// Wave returns the number of waves spawned so far
func (g *Game) Wave() int { return g.wave }

// Running reports whether Run is active and has not received the stop command
func (g *Game) Running() bool { return g.running }

// Update advances the game by one tick: hits, removals, respawn, movement, drawing and render
func (g *Game) Update() {
	g.resolveHits()
	g.removeExpired()

	if !g.hasEnemies() {
		g.spawnEnemies()
	}

	for _, e := range g.entities {
		e.NextFrame()
		e.Draw()
	}

	shots := g.count(entity.KindProjectile)
	g.grid.SetStatus(fmt.Sprintf(constants.StatusFormat, g.killCount, g.wave, shots))
	cells := g.grid.Render()

	g.statTicks.Add(1)
	g.statCells.Add(int64(cells))
	g.statEntities.Store(int64(len(g.entities)))
}

// resolveHits expires every enemy overlapped by a live projectile, together with the first such projectile
func (g *Game) resolveHits() {
	var projectiles []*entity.Entity
	for _, e := range g.entities {
		if e.Kind() == entity.KindProjectile {
			projectiles = append(projectiles, e)
		}
	}
	if len(projectiles) == 0 {
		return
	}

	for _, e := range g.entities {
		if e.Kind() != entity.KindEnemy {
			continue
		}
		for _, p := range projectiles {
			if !p.IsColliding(e) || p.IsExpiring() {
				continue
			}
			p.MarkExpiring()
			e.MarkExpiring()
			g.killCount++
			g.statKills.Add(1)
			g.sound.PlayHit()
			break
		}
	}
}

// removeExpired drops expiring entities after one last move so their final image is erased
func (g *Game) removeExpired() {
	kept := g.entities[:0]
	for _, e := range g.entities {
		if !e.IsExpiring() {
			kept = append(kept, e)
			continue
		}
		e.NextFrame()
		e.ErasePrevious()
	}
	clear(g.entities[len(kept):])
	g.entities = kept
}

func (g *Game) hasEnemies() bool {
	return slices.ContainsFunc(g.entities, func(e *entity.Entity) bool {
		return e.Kind() == entity.KindEnemy
	})
}

func (g *Game) count(kind entity.Kind) int {
	n := 0
	for _, e := range g.entities {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// spawnEnemies adds a wave spaced evenly along the top of the playfield, each in a random non-black colour
func (g *Game) spawnEnemies() {
	for i := 0; i < constants.WaveSize; i++ {
		at := core.NewPoint(constants.WaveRow, constants.WaveFirstCol+i*constants.WaveSpacing)
		enemy := g.factory.NewEnemy(g, at)
		enemy.SetColor(render.RandomNonBlack(g.rng))
		g.entities = append(g.entities, enemy)
	}
	g.wave++
	g.statWaves.Add(1)
	g.sound.PlayWave()
	log.Printf("game: wave %d spawned, kills %d", g.wave, g.killCount)
}

// KeyAction applies one command; it returns false for the stop command
func (g *Game) KeyAction(cmd input.Command) bool {
	switch cmd {
	case input.CommandQuit:
		g.running = false
		return false
	case input.CommandFire:
		g.Fire()
	case input.CommandClear:
		g.grid.Clear()
	default:
		if d, ok := cmd.Displacement(); ok {
			g.player.Move(d)
		}
	}
	return true
}

// Fire launches a burst in front of the player; the burst grows by one every few kills
// Projectiles go to the front of the roster so later entities are drawn over them
func (g *Game) Fire() {
	n := g.killCount/constants.BurstKillStep + 1
	spread := g.killCount / constants.BurstSpreadStep
	for i := 0; i < n; i++ {
		at := g.player.Location().Shift(-1, 1+i-spread)
		bullet := g.factory.NewProjectile(g, at, core.NewPoint(-1, 0))
		bullet.SetColor(render.ColorRed)
		g.entities = slices.Insert(g.entities, 0, bullet)
	}
	g.statShots.Add(int64(n))
	g.sound.PlayFire()
}

// Run drives the tick loop: one pending command, one update, then wait out the interval
// It returns nil after the stop command and ctx.Err() on cancellation
func (g *Game) Run(ctx context.Context, src input.Source) error {
	g.running = true
	g.statRunning.Store(true)
	defer func() {
		g.running = false
		g.statRunning.Store(false)
	}()

	log.Printf("game: loop started, tick %v", g.scheduler.Interval())
	err := g.scheduler.Run(ctx, func() bool {
		if cmd, ok := src.Next(); ok && !g.KeyAction(cmd) {
			return false
		}
		g.Update()
		return true
	})
	log.Printf("game: loop stopped after %d ticks (%d resyncs), kills %d", g.scheduler.Ticks(), g.scheduler.Resyncs(), g.killCount)
	return err
}
