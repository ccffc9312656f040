package core

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Scoring and termination parameters.
const (
	MatchScore   = 10    // Points per bubble removed by a match
	DropScore    = 20    // Points per bubble dropped as floating
	DangerMargin = 100.0 // Distance from the bottom edge that ends the game
)

// Default playfield parameters, in world units.
const (
	DefaultRadius   = 20.0
	DefaultCols     = 15
	DefaultHeight   = 640.0
	DefaultSeedRows = 5
	DefaultSpeed    = 16.0
)

// Phase is the lifecycle state of a game.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "gameover"
)

// Config holds the tunable simulation parameters.
type Config struct {
	Radius   float64 // Bubble radius; the playfield width is Cols*2*Radius
	Cols     int     // Columns in even rows
	Height   float64 // Playfield height
	SeedRows int     // Rows pre-filled by Reset
	Speed    float64 // Projectile speed per tick
}

// DefaultConfig returns the standard playfield.
func DefaultConfig() Config {
	return Config{
		Radius:   DefaultRadius,
		Cols:     DefaultCols,
		Height:   DefaultHeight,
		SeedRows: DefaultSeedRows,
		Speed:    DefaultSpeed,
	}
}

// Explosion is a cosmetic event at the centroid of a popped cluster.
// The simulation does not keep it; presentation layers may animate it.
type Explosion struct {
	X    float64
	Y    float64
	Size int
}

// StepResult reports what a single tick did.
type StepResult struct {
	Tick       int
	Landed     *Bubble    // Bubble placed this tick, if any
	Degraded   bool       // Placement fell back to an occupied cell
	Matched    []Bubble   // Removed by the match engine
	Dropped    []Bubble   // Removed as floating clusters
	ScoreDelta int        // Points awarded this tick
	Explosion  *Explosion // Set when a match popped
}

// Sim is the complete simulation state. A single driver owns it: ticks
// are synchronous and run to completion, so no locking is needed
// anywhere in this package.
type Sim struct {
	cfg    Config
	layout Layout
	field  *Field
	proj   Projectile
	colors ColorSource

	current Color // Color loaded in the cannon
	next    Color // Preview for the following shot

	score int
	phase Phase
	tick  int
	shots int
}

// New creates a simulation in the start phase with an empty field.
// Reset begins the actual game.
func New(cfg Config, colors ColorSource) *Sim {
	l := Layout{Radius: cfg.Radius, Cols: cfg.Cols}
	return &Sim{
		cfg:    cfg,
		layout: l,
		field:  NewField(l),
		colors: colors,
		phase:  PhaseStart,
	}
}

// Reset atomically starts a new game: the seeded rows are rebuilt on
// the offset-row rule, the projectile and score are cleared, fresh
// cannon colors are drawn, and play begins. Nothing observes a partial
// state because the whole transition happens between ticks.
func (s *Sim) Reset() {
	s.field.Clear()
	for row := 0; row < s.cfg.SeedRows; row++ {
		for col := 0; col <= s.layout.MaxCol(row); col++ {
			s.field.AddAt(row, col, s.colors.Next())
		}
	}
	s.proj = Projectile{}
	s.current = s.colors.Next()
	s.next = s.colors.Next()
	s.score = 0
	s.tick = 0
	s.shots = 0
	s.phase = PhasePlaying
}

// LaunchPoint is the fixed cannon position at the bottom center of the
// playfield.
func (s *Sim) LaunchPoint() (x, y float64) {
	return s.layout.Width() / 2, s.cfg.Height - s.cfg.Radius
}

// Fire launches the loaded shot from the cannon toward the target
// point at the configured speed. It reports whether the shot was
// accepted: firing outside the playing phase or while a shot is in
// flight is a silent no-op.
func (s *Sim) Fire(targetX, targetY float64) bool {
	if s.phase != PhasePlaying || s.proj.Active {
		return false
	}

	ox, oy := s.LaunchPoint()
	dist := math.Hypot(targetX-ox, targetY-oy)
	s.proj = Projectile{
		X:      ox,
		Y:      oy,
		VX:     (targetX - ox) / dist * s.cfg.Speed,
		VY:     (targetY - oy) / dist * s.cfg.Speed,
		Color:  s.current,
		Active: true,
	}
	s.shots++
	return true
}

// Step advances the simulation by one tick. Outside the playing phase
// it does nothing. A shot in flight is integrated and reflected, then
// tested against the ceiling first and the placed bubbles second; a
// collision resolves into a placement followed by the match,
// connectivity, scoring, and termination stages. A shot that leaves the
// playfield vertically is retired with no placement.
func (s *Sim) Step() StepResult {
	if s.phase != PhasePlaying {
		return StepResult{Tick: s.tick}
	}

	s.tick++
	res := StepResult{Tick: s.tick}

	if !s.proj.Active {
		return res
	}

	s.proj.advance(s.layout)

	if s.proj.hitsCeiling(s.layout) || s.proj.hitsBubble(s.field) {
		s.land(&res)
		s.endShot()
		return res
	}

	if s.proj.outOfBounds(s.layout, s.cfg.Height) {
		s.endShot()
	}
	return res
}

// land places the collided shot and runs the removal pipeline: match
// detection, then a from-scratch connectivity pass over the remainder,
// then scoring. The danger line check runs after every placement,
// matched or not.
func (s *Sim) land(res *StepResult) {
	placed := ResolvePlacement(s.field, s.proj)
	b := placed.Bubble
	res.Landed = &b
	res.Degraded = placed.Degraded

	set := FindMatches(s.field, placed.Bubble)
	if len(set) >= MatchThreshold {
		matched := s.field.RemoveAll(set)
		dropped := s.field.RemoveAll(idSet(FindFloating(s.field)))

		delta := len(matched)*MatchScore + len(dropped)*DropScore
		s.score += delta

		res.Matched = matched
		res.Dropped = dropped
		res.ScoreDelta = delta
		res.Explosion = explosionAt(matched)
	}

	dangerY := s.cfg.Height - DangerMargin
	for _, b := range s.field.All() {
		if b.Y > dangerY {
			s.phase = PhaseGameOver
			break
		}
	}
}

// endShot retires the projectile and rotates the cannon: the loaded
// color becomes the previous preview and a fresh preview is drawn, so
// the player always sees the upcoming color.
func (s *Sim) endShot() {
	s.proj.Active = false
	s.current = s.next
	s.next = s.colors.Next()
}

// idSet collects bubble IDs into a removal set.
func idSet(bubbles []Bubble) map[BubbleID]bool {
	ids := make(map[BubbleID]bool, len(bubbles))
	for _, b := range bubbles {
		ids[b.ID] = true
	}
	return ids
}

// explosionAt builds the cosmetic centroid event for a popped cluster.
func explosionAt(matched []Bubble) *Explosion {
	if len(matched) == 0 {
		return nil
	}
	var cx, cy float64
	for _, b := range matched {
		cx += b.X
		cy += b.Y
	}
	n := float64(len(matched))
	return &Explosion{X: cx / n, Y: cy / n, Size: len(matched)}
}

// Bubbles returns the placed bubbles in field order. Read-only view.
func (s *Sim) Bubbles() []Bubble {
	return s.field.All()
}

// Field exposes the underlying field for scenario setup in tests and
// for presentation-side queries.
func (s *Sim) Field() *Field {
	return s.field
}

// Projectile returns the in-flight shot, if any.
func (s *Sim) Projectile() (Projectile, bool) {
	return s.proj, s.proj.Active
}

// Score returns the accumulated score.
func (s *Sim) Score() int {
	return s.score
}

// Phase returns the current lifecycle phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// CurrentColor returns the color loaded in the cannon.
func (s *Sim) CurrentColor() Color {
	return s.current
}

// NextColor returns the preview color for the following shot.
func (s *Sim) NextColor() Color {
	return s.next
}

// Shots returns how many shots have been fired this game.
func (s *Sim) Shots() int {
	return s.shots
}

// Ticks returns the tick counter.
func (s *Sim) Ticks() int {
	return s.tick
}

// Layout returns the grid layout.
func (s *Sim) Layout() Layout {
	return s.layout
}

// Height returns the playfield height.
func (s *Sim) Height() float64 {
	return s.cfg.Height
}

// Snapshot returns a hash of the observable state. Two runs with the
// same seed and input sequence produce identical snapshots tick for
// tick.
func (s *Sim) Snapshot() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "P:%s;S:%d;T:%d;N:%d;C:%d:%d", s.phase, s.score, s.tick, s.shots, s.current, s.next)

	if s.proj.Active {
		fmt.Fprintf(h, ";J:%.6f:%.6f:%.6f:%.6f:%d", s.proj.X, s.proj.Y, s.proj.VX, s.proj.VY, s.proj.Color)
	}

	for _, b := range s.field.All() {
		fmt.Fprintf(h, ";B:%s:%.6f:%.6f:%d", b.ID, b.X, b.Y, b.Color)
	}

	return h.Sum64()
}
