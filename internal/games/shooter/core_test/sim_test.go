package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter/core"
)

// fixedColors cycles a fixed sequence so every seed row and cannon draw
// is predictable.
type fixedColors struct {
	seq []core.Color
	i   int
}

func (f *fixedColors) Next() core.Color {
	c := f.seq[f.i%len(f.seq)]
	f.i++
	return c
}

// testConfig is a small playfield: width 160, launch point (80, 290),
// danger line at y = 200.
func testConfig(seedRows int) core.Config {
	return core.Config{Radius: 10, Cols: 8, Height: 300, SeedRows: seedRows, Speed: 8}
}

func stepUntilLanded(t *testing.T, s *core.Sim, maxTicks int) core.StepResult {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if res := s.Step(); res.Landed != nil {
			return res
		}
	}
	t.Fatal("shot did not land")
	return core.StepResult{}
}

func TestNewStartsIdle(t *testing.T) {
	s := core.New(testConfig(2), core.NewColorSource(1))

	if s.Phase() != core.PhaseStart {
		t.Errorf("Phase() = %q, expected %q", s.Phase(), core.PhaseStart)
	}
	if len(s.Bubbles()) != 0 {
		t.Errorf("expected empty field before Reset, got %d bubbles", len(s.Bubbles()))
	}
	if s.Fire(80, 0) {
		t.Error("Fire should be rejected before Reset")
	}
	s.Step()
	if s.Ticks() != 0 {
		t.Errorf("Ticks() = %d before Reset, expected 0", s.Ticks())
	}
}

func TestResetSeedsField(t *testing.T) {
	s := core.New(testConfig(2), core.NewColorSource(1))
	s.Reset()

	if s.Phase() != core.PhasePlaying {
		t.Errorf("Phase() = %q, expected %q", s.Phase(), core.PhasePlaying)
	}
	// Two seed rows: 8 bubbles on the even row, 7 on the offset row.
	if len(s.Bubbles()) != 15 {
		t.Errorf("seeded %d bubbles, expected 15", len(s.Bubbles()))
	}
	for _, b := range s.Bubbles() {
		a := s.Layout().AddressOf(b.X, b.Y)
		if a.Row < 0 || a.Row >= 2 {
			t.Errorf("seeded bubble at row %d, expected rows 0..1", a.Row)
		}
		if a.Col < 0 || a.Col > s.Layout().MaxCol(a.Row) {
			t.Errorf("seeded bubble at %v, column out of range", a)
		}
		if b.Color >= core.ColorCount {
			t.Errorf("seeded bubble has invalid color %d", b.Color)
		}
	}
	if s.Score() != 0 || s.Shots() != 0 || s.Ticks() != 0 {
		t.Errorf("fresh game has score %d, shots %d, ticks %d, expected zeros",
			s.Score(), s.Shots(), s.Ticks())
	}
}

func TestFireGuards(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: core.AllColors()})
	s.Reset()

	if !s.Fire(80, 0) {
		t.Fatal("first Fire should be accepted")
	}
	if _, active := s.Projectile(); !active {
		t.Error("expected a projectile in flight after Fire")
	}
	// A second shot while one is in flight is silently dropped.
	if s.Fire(80, 0) {
		t.Error("Fire should be rejected while a shot is in flight")
	}
	if s.Shots() != 1 {
		t.Errorf("Shots() = %d, expected 1", s.Shots())
	}
}

func TestFireNormalizesVelocity(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: core.AllColors()})
	s.Reset()
	s.Fire(0, 200)

	p, active := s.Projectile()
	if !active {
		t.Fatal("expected an active projectile")
	}
	if speed := math.Hypot(p.VX, p.VY); math.Abs(speed-8) > 1e-9 {
		t.Errorf("projectile speed = %v, expected 8", speed)
	}
	if p.VX >= 0 || p.VY >= 0 {
		t.Errorf("velocity (%v,%v) does not point up-left", p.VX, p.VY)
	}
}

func TestShotLandsAtCeiling(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
	}})
	s.Reset()

	if !s.Fire(80, 0) {
		t.Fatal("Fire rejected")
	}
	res := stepUntilLanded(t, s, 100)

	if got := s.Layout().AddressOf(res.Landed.X, res.Landed.Y); got != (core.Address{Row: 0, Col: 4}) {
		t.Errorf("landed at %v, expected (0,4)", got)
	}
	if res.Landed.Color != core.ColorRed {
		t.Errorf("landed color = %v, expected red", res.Landed.Color)
	}
	if res.Matched != nil || res.ScoreDelta != 0 {
		t.Errorf("lone landing matched %d and scored %d, expected nothing",
			len(res.Matched), res.ScoreDelta)
	}
	if _, active := s.Projectile(); active {
		t.Error("projectile still active after landing")
	}
	// The preview rotates into the cannon once the shot resolves.
	if s.CurrentColor() != core.ColorGreen || s.NextColor() != core.ColorBlue {
		t.Errorf("cannon colors = %v/%v, expected green/blue",
			s.CurrentColor(), s.NextColor())
	}
}

func TestMatchPopsAndScores(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
	}})
	s.Reset()

	// Two reds on the offset row; the red shot lands below them and
	// completes a cluster of three.
	s.Field().AddAt(1, 2, core.ColorRed)
	s.Field().AddAt(1, 3, core.ColorRed)

	if !s.Fire(80, 0) {
		t.Fatal("Fire rejected")
	}
	res := stepUntilLanded(t, s, 100)

	if len(res.Matched) != 3 {
		t.Fatalf("matched %d bubbles, expected 3", len(res.Matched))
	}
	if len(res.Dropped) != 0 {
		t.Errorf("dropped %d bubbles, expected 0", len(res.Dropped))
	}
	if res.ScoreDelta != 30 {
		t.Errorf("ScoreDelta = %d, expected 30", res.ScoreDelta)
	}
	if s.Score() != 30 {
		t.Errorf("Score() = %d, expected 30", s.Score())
	}
	if len(s.Bubbles()) != 0 {
		t.Errorf("%d bubbles left on the field, expected 0", len(s.Bubbles()))
	}
	if res.Explosion == nil || res.Explosion.Size != 3 {
		t.Errorf("Explosion = %+v, expected size 3", res.Explosion)
	}
}

func TestMatchSparesOtherColors(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
	}})
	s.Reset()

	// Three reds bent around a corner, plus an anchored shelf of other
	// colors. The red shot completes a cluster of four; the shelf stays.
	s.Field().AddAt(0, 2, core.ColorRed)
	s.Field().AddAt(1, 2, core.ColorRed)
	s.Field().AddAt(1, 3, core.ColorRed)
	s.Field().AddAt(0, 5, core.ColorGreen)
	s.Field().AddAt(0, 6, core.ColorBlue)
	s.Field().AddAt(0, 7, core.ColorGreen)
	s.Field().AddAt(1, 5, core.ColorBlue)
	s.Field().AddAt(1, 6, core.ColorGreen)

	if !s.Fire(80, 0) {
		t.Fatal("Fire rejected")
	}
	res := stepUntilLanded(t, s, 100)

	if len(res.Matched) != 4 {
		t.Fatalf("matched %d bubbles, expected 4", len(res.Matched))
	}
	for _, b := range res.Matched {
		if b.Color != core.ColorRed {
			t.Errorf("matched color = %v, expected red", b.Color)
		}
	}
	if len(res.Dropped) != 0 {
		t.Errorf("dropped %d bubbles, expected 0", len(res.Dropped))
	}
	if res.ScoreDelta != 40 {
		t.Errorf("ScoreDelta = %d, expected 40", res.ScoreDelta)
	}
	if s.Score() != 40 {
		t.Errorf("Score() = %d, expected 40", s.Score())
	}
	// 8 seeded + 1 landed - 4 popped.
	if len(s.Bubbles()) != 5 {
		t.Errorf("%d bubbles left on the field, expected 5", len(s.Bubbles()))
	}
	for _, b := range s.Bubbles() {
		if b.Color == core.ColorRed {
			t.Error("a red bubble survived the pop")
		}
	}
}

func TestSparseLandingKeepsField(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
	}})
	s.Reset()

	// Eight reds two diameters apart: same color everywhere, but no
	// pair chains. The red shot lands next to one of them and forms a
	// connected set of two, below the removal threshold.
	for _, row := range []int{0, 2} {
		for _, col := range []int{0, 2, 4, 6} {
			s.Field().AddAt(row, col, core.ColorRed)
		}
	}

	if !s.Fire(80, 0) {
		t.Fatal("Fire rejected")
	}
	res := stepUntilLanded(t, s, 100)

	if res.Matched != nil {
		t.Errorf("matched %d bubbles, expected no removal", len(res.Matched))
	}
	if len(s.Bubbles()) != 9 {
		t.Errorf("%d bubbles on the field, expected all 9 to remain", len(s.Bubbles()))
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
}

func TestMatchDropsFloatingCluster(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: []core.Color{
		core.ColorBlue, core.ColorRed, core.ColorGreen,
	}})
	s.Reset()

	// Two greens hang off the blue pair. Popping the blues strands
	// them: 3 popped for 30, 2 dropped for 40.
	s.Field().AddAt(0, 0, core.ColorRed)
	s.Field().AddAt(1, 3, core.ColorBlue)
	s.Field().AddAt(1, 4, core.ColorBlue)
	s.Field().AddAt(2, 5, core.ColorGreen)
	s.Field().AddAt(3, 5, core.ColorGreen)

	if !s.Fire(80, 0) {
		t.Fatal("Fire rejected")
	}
	res := stepUntilLanded(t, s, 100)

	if len(res.Matched) != 3 {
		t.Fatalf("matched %d bubbles, expected 3", len(res.Matched))
	}
	if len(res.Dropped) != 2 {
		t.Fatalf("dropped %d bubbles, expected 2", len(res.Dropped))
	}
	for _, b := range res.Dropped {
		if b.Color != core.ColorGreen {
			t.Errorf("dropped color = %v, expected green", b.Color)
		}
	}
	if res.ScoreDelta != 70 {
		t.Errorf("ScoreDelta = %d, expected 70", res.ScoreDelta)
	}
	if s.Score() != 70 {
		t.Errorf("Score() = %d, expected 70", s.Score())
	}
	// Only the ceiling anchor survives.
	if len(s.Bubbles()) != 1 || s.Bubbles()[0].Color != core.ColorRed {
		t.Errorf("expected only the red anchor to remain, got %d bubbles", len(s.Bubbles()))
	}
}

func TestWallReflection(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: core.AllColors()})
	s.Reset()

	// Aimed at the left wall the shot bounces there, crosses to the
	// right wall, bounces again, and lands on the ceiling.
	if !s.Fire(0, 200) {
		t.Fatal("Fire rejected")
	}

	p, _ := s.Projectile()
	prevVX := p.VX
	flips := 0
	var landed *core.Bubble
	for i := 0; i < 200 && landed == nil; i++ {
		res := s.Step()
		landed = res.Landed
		if p, active := s.Projectile(); active {
			if (p.VX < 0) != (prevVX < 0) {
				flips++
			}
			prevVX = p.VX
		}
	}

	if flips != 2 {
		t.Errorf("shot reflected %d times, expected 2", flips)
	}
	if landed == nil {
		t.Error("shot never landed")
	}
}

func TestShotDespawnsBelowField(t *testing.T) {
	s := core.New(testConfig(0), &fixedColors{seq: []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
	}})
	s.Reset()

	// Aimed straight down the shot exits the field and vanishes
	// without placing a bubble.
	if !s.Fire(80, 400) {
		t.Fatal("Fire rejected")
	}
	for i := 0; i < 5; i++ {
		if res := s.Step(); res.Landed != nil {
			t.Fatal("falling shot should not land")
		}
	}

	if _, active := s.Projectile(); active {
		t.Error("projectile still active after leaving the field")
	}
	if len(s.Bubbles()) != 0 {
		t.Errorf("%d bubbles placed by a despawned shot", len(s.Bubbles()))
	}
	// A despawn still resolves the shot, so the cannon rotates.
	if s.CurrentColor() != core.ColorGreen || s.NextColor() != core.ColorBlue {
		t.Errorf("cannon colors = %v/%v, expected green/blue",
			s.CurrentColor(), s.NextColor())
	}
}

func TestGameOverFreezesState(t *testing.T) {
	s := core.New(testConfig(2), &fixedColors{seq: []core.Color{
		core.ColorRed, core.ColorGreen, core.ColorBlue,
	}})
	s.Reset()

	// A bubble below the danger line ends the game on the next
	// landing, whether or not that landing pops anything.
	s.Field().AddAt(11, 1, core.ColorRed)

	if !s.Fire(80, 0) {
		t.Fatal("Fire rejected")
	}
	stepUntilLanded(t, s, 100)

	if s.Phase() != core.PhaseGameOver {
		t.Fatalf("Phase() = %q, expected %q", s.Phase(), core.PhaseGameOver)
	}

	ticks := s.Ticks()
	score := s.Score()
	for i := 0; i < 3; i++ {
		s.Step()
	}
	if s.Ticks() != ticks {
		t.Errorf("Ticks() advanced to %d after game over, expected %d", s.Ticks(), ticks)
	}
	if s.Score() != score {
		t.Errorf("Score() changed to %d after game over, expected %d", s.Score(), score)
	}
	if s.Fire(80, 0) {
		t.Error("Fire should be rejected after game over")
	}

	// Reset starts a fresh game.
	s.Reset()
	if s.Phase() != core.PhasePlaying {
		t.Errorf("Phase() = %q after Reset, expected %q", s.Phase(), core.PhasePlaying)
	}
	if len(s.Bubbles()) != 15 {
		t.Errorf("Reset seeded %d bubbles, expected 15", len(s.Bubbles()))
	}
	if s.Score() != 0 || s.Ticks() != 0 || s.Shots() != 0 {
		t.Errorf("Reset left score %d, ticks %d, shots %d", s.Score(), s.Ticks(), s.Shots())
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() *core.Sim {
		s := core.New(testConfig(2), core.NewColorSource(7))
		s.Reset()
		return s
	}
	a := run()
	b := run()

	targets := [][2]float64{{20, 40}, {140, 60}, {80, 0}}
	for tick := 0; tick < 300; tick++ {
		if tick%40 == 0 {
			tgt := targets[(tick/40)%len(targets)]
			a.Fire(tgt[0], tgt[1])
			b.Fire(tgt[0], tgt[1])
		}
		a.Step()
		b.Step()
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("snapshots diverged at tick %d", tick)
		}
	}

	if a.Score() != b.Score() {
		t.Errorf("scores diverged: %d vs %d", a.Score(), b.Score())
	}
	if a.Phase() != b.Phase() {
		t.Errorf("phases diverged: %q vs %q", a.Phase(), b.Phase())
	}
}

func TestStepAdvancesTickWhileIdle(t *testing.T) {
	s := core.New(testConfig(1), core.NewColorSource(3))
	s.Reset()

	before := len(s.Bubbles())
	for i := 0; i < 10; i++ {
		s.Step()
	}

	if s.Ticks() != 10 {
		t.Errorf("Ticks() = %d, expected 10", s.Ticks())
	}
	if len(s.Bubbles()) != before {
		t.Error("idle ticks changed the field")
	}
}
