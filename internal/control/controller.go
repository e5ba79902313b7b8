// Package control drives a simulation engine from a single goroutine and
// hands immutable snapshots to everyone else. Run/pause state, pacing and
// auto-pause live here, never inside the engine.
package control

import (
	"sync"
	"time"

	"sparselife/internal/config"
	"sparselife/internal/core"
	"sparselife/internal/life"
)

// State describes what the controller is currently doing with its engine.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// defaultHeadlessGenerations caps a headless run when neither the caller nor
// the configuration supplies a limit.
const defaultHeadlessGenerations = 1000

// Stats summarizes the engine after the most recent step.
type Stats struct {
	Generation uint64
	Population int
	Stable     bool
	Changed    bool
}

// Snapshot is an immutable copy of engine state, safe to hand across
// goroutines. Cells is freshly allocated on every call.
type Snapshot struct {
	Stats Stats
	Cells []core.Position
}

// Controller serializes all access to one engine. Steps happen on whichever
// goroutine calls in, but never concurrently, and always run to completion; a
// run loop can only be interrupted between steps.
type Controller struct {
	mu     sync.Mutex
	engine *life.Engine
	state  State
	stats  Stats
	pacer  *core.StepPacer
	onStep func(Stats)

	maxGenerations uint64
	autoPause      bool
}

// New builds a controller around an already-seeded or empty engine.
func New(engine *life.Engine, cfg config.Simulation) *Controller {
	return &Controller{
		engine:         engine,
		pacer:          core.NewStepPacer(time.Duration(cfg.StepDelayMs) * time.Millisecond),
		maxGenerations: cfg.MaxGenerations,
		autoPause:      cfg.AutoPauseOnStable,
	}
}

// SetStepFunc installs a hook invoked after every completed step. The hook
// runs under the controller lock and must not call back into the controller.
func (c *Controller) SetStepFunc(fn func(Stats)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStep = fn
}

// Start switches to Running. A stopped or paused controller resumes where it
// left off; seeding is untouched.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Running
}

// Pause suspends auto-running without touching engine state.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		c.state = Paused
	}
}

// Stop halts the controller. Engine state is kept; use Reset to discard it.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Stopped
}

// State returns the current run state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetCellAlive seeds a cell through the controller's lock.
func (c *Controller) SetCellAlive(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SetCellAlive(x, y)
}

// SetCellDead removes a cell through the controller's lock.
func (c *Controller) SetCellDead(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SetCellDead(x, y)
}

// Step advances exactly one generation regardless of run state.
func (c *Controller) Step() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stepLocked()
}

// Tick advances one generation if the controller is running and the pacer
// allows it. It reports whether a step was taken, so a caller can poll it
// from a plain loop without its own timing logic.
func (c *Controller) Tick() (Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return c.stats, false
	}
	if !c.pacer.ShouldStep() {
		return c.stats, false
	}
	return c.stepLocked(), true
}

// RunHeadless steps without pacing until the pattern stops changing, the
// stability window triggers an auto-pause, or limit generations have run.
// A zero limit falls back to the configured maximum, then to a fixed cap so
// the call always terminates.
func (c *Controller) RunHeadless(limit uint64) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit == 0 {
		limit = c.maxGenerations
	}
	if limit == 0 {
		limit = defaultHeadlessGenerations
	}

	c.state = Running
	for i := uint64(0); i < limit; i++ {
		c.stepLocked()
		if c.state != Running {
			return c.stats
		}
	}
	c.state = Stopped
	return c.stats
}

// Reset stops the controller and clears the engine back to generation zero.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Reset()
	c.state = Stopped
	c.stats = Stats{}
}

// Snapshot returns a copy of the current stats and live cells. Readers on
// other goroutines use this instead of reaching into the engine.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Stats: c.stats, Cells: c.engine.LiveCells()}
}

func (c *Controller) stepLocked() Stats {
	changed := c.engine.Step()
	c.stats = Stats{
		Generation: c.engine.Generation(),
		Population: c.engine.LivingCellCount(),
		Stable:     c.engine.IsStable(),
		Changed:    changed,
	}

	if c.state == Running {
		if c.autoPause && (!changed || c.stats.Stable) {
			c.state = Paused
		}
		if c.maxGenerations > 0 && c.stats.Generation >= c.maxGenerations {
			c.state = Stopped
		}
	}

	if c.onStep != nil {
		c.onStep(c.stats)
	}
	return c.stats
}
