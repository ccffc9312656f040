// Package shooter implements a Bubble Shooter arcade game.
// The player aims a cannon at a ceiling-anchored field of colored
// bubbles. Landed shots that complete a group of three or more pop,
// and any cluster cut off from the ceiling falls with them.
package shooter

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	platformcore "github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Visual characters for rendering
const (
	BubbleChar     = '●'
	ProjectileChar = '◆'
	CannonChar     = '▲'
	AimChar        = '·'
	WallChar       = '│'
	DangerChar     = '┄'
	FlashChar      = '*'
)

// fieldTop is the screen row of the ceiling, below the HUD.
const fieldTop = 2

// aimReach is how far ahead of the cannon the aim target is projected,
// in world units. Any positive distance works since the simulation
// normalizes the firing vector.
const aimReach = 120.0

// fineAimStep is the rotation applied by the fine aim keys, in degrees.
// The coarse step comes from the config.
const fineAimStep = 1.0

// flashTicks is how long a pop flash stays on screen.
const flashTicks = 10

var sqrt3 = math.Sqrt(3)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the bubble simulation to the platform game interface.
// It owns presentation state only: the aim angle, pause flag, and the
// pop flash. All field and projectile state lives in the simulation.
type Game struct {
	// Launch variant applied on top of the loaded config
	variant config.VariantPreset

	sim *core.Sim
	cfg config.ShooterConfig
	rng *rand.Rand

	aim    float64 // Cannon angle in degrees; 0 points right, 90 straight up
	paused bool
	popped int // Total bubbles removed, for the scoreboard

	// Pop flash (drawn for a few ticks after a match)
	flash     core.Explosion
	flashLeft int

	runtime  platformcore.RuntimeConfig
	tooSmall bool
}

// New creates a new Bubble Shooter game instance (classic variant).
func New() *Game {
	return &Game{variant: config.VariantClassic}
}

// NewDense creates a new Bubble Shooter game instance in the dense
// variant: more seeded rows and a faster projectile.
func NewDense() *Game {
	return &Game{variant: config.VariantDense}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == config.VariantDense {
		return "shooter_dense"
	}
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantDense {
		return "Bubble Shooter (Dense)"
	}
	return "Bubble Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	// Load game config
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	config.ApplyVariant(&cfg, g.variant)
	g.cfg = cfg

	g.sim = core.New(core.Config{
		Radius:   cfg.Field.Radius,
		Cols:     cfg.Field.Cols,
		Height:   cfg.Field.Height,
		SeedRows: cfg.Field.SeedRows,
		Speed:    cfg.Projectile.Speed,
	}, core.NewColorSource(g.rng.Int63()))
	g.sim.Reset()

	g.aim = 90
	g.paused = false
	g.popped = 0
	g.flashLeft = 0

	g.tooSmall = runtime.ScreenW < g.minScreenW() || runtime.ScreenH < g.minScreenH()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.sim == nil {
		return platformcore.StepResult{}
	}

	// Restart with a fresh board after game over
	if in.Has(platformcore.ActionRestart) && g.sim.Phase() == core.PhaseGameOver {
		g.Reset(platformcore.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.sim.Phase() != core.PhasePlaying {
		return platformcore.StepResult{State: g.State()}
	}

	// Rotate the cannon. Up/Down nudge by a single degree for lining
	// up bank shots.
	if in.Has(platformcore.ActionLeft) {
		g.aim = platformcore.ClampF(g.aim+g.cfg.Aim.StepAngle, g.cfg.Aim.MinAngle, g.cfg.Aim.MaxAngle)
	}
	if in.Has(platformcore.ActionRight) {
		g.aim = platformcore.ClampF(g.aim-g.cfg.Aim.StepAngle, g.cfg.Aim.MinAngle, g.cfg.Aim.MaxAngle)
	}
	if in.Has(platformcore.ActionUp) {
		g.aim = platformcore.ClampF(g.aim+fineAimStep, g.cfg.Aim.MinAngle, g.cfg.Aim.MaxAngle)
	}
	if in.Has(platformcore.ActionDown) {
		g.aim = platformcore.ClampF(g.aim-fineAimStep, g.cfg.Aim.MinAngle, g.cfg.Aim.MaxAngle)
	}

	// Launch the loaded bubble. The simulation ignores the request
	// while a shot is still in flight.
	if in.Has(platformcore.ActionFire) {
		tx, ty := g.aimTarget()
		g.sim.Fire(tx, ty)
	}

	res := g.sim.Step()
	g.popped += len(res.Matched) + len(res.Dropped)
	if res.Explosion != nil {
		g.flash = *res.Explosion
		g.flashLeft = flashTicks
	} else if g.flashLeft > 0 {
		g.flashLeft--
	}

	return platformcore.StepResult{State: g.State()}
}

// aimTarget projects the aim angle into a world point ahead of the cannon.
func (g *Game) aimTarget() (float64, float64) {
	lx, ly := g.sim.LaunchPoint()
	rad := g.aim * math.Pi / 180
	return lx + math.Cos(rad)*aimReach, ly - math.Sin(rad)*aimReach
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.sim == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.drawCenteredMessage(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - g.fieldCols()) / 2
	if offX < 1 {
		offX = 1
	}

	g.renderField(dst, offX)
	g.renderCannon(dst, offX)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.sim.Phase() == core.PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score()))
	}
}

// renderHUD draws the status bar and the bottom controls hint.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d | Shots: %d | Popped: %d", g.Title(), g.sim.Score(), g.sim.Shots(), g.popped)
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	// Separator doubles as the ceiling
	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}

	controls := " ←/→: Aim | ↑/↓: Fine aim | Space: Fire | P: Pause | R: Restart | Q: Quit"
	dst.DrawTextWithColor(0, dst.Height()-1, controls, platformcore.ColorGray)
}

// renderField draws the walls, danger line, bubbles and projectile.
func (g *Game) renderField(dst *platformcore.Screen, offX int) {
	bottom := fieldTop + g.launchRow()

	for y := fieldTop; y <= bottom; y++ {
		dst.SetWithColor(offX-1, y, WallChar, platformcore.ColorGray)
		dst.SetWithColor(offX+g.fieldCols(), y, WallChar, platformcore.ColorGray)
	}

	// Bubbles resting past this line end the game
	_, dangerRow := g.screenPos(offX, 0, g.sim.Height()-core.DangerMargin)
	for x := 0; x < g.fieldCols(); x++ {
		dst.SetWithColor(offX+x, dangerRow, DangerChar, platformcore.ColorRed)
	}

	for _, b := range g.sim.Bubbles() {
		sx, sy := g.screenPos(offX, b.X, b.Y)
		dst.SetWithColor(sx, sy, BubbleChar, bubbleColor(b.Color))
	}

	if p, ok := g.sim.Projectile(); ok {
		sx, sy := g.screenPos(offX, p.X, p.Y)
		dst.SetWithColor(sx, sy, ProjectileChar, bubbleColor(p.Color))
	}

	if g.flashLeft > 0 {
		sx, sy := g.screenPos(offX, g.flash.X, g.flash.Y)
		dst.SetWithColor(sx, sy, FlashChar, platformcore.ColorBrightYellow)
		if g.flashLeft > flashTicks/2 {
			dst.SetWithColor(sx-1, sy, FlashChar, platformcore.ColorYellow)
			dst.SetWithColor(sx+1, sy, FlashChar, platformcore.ColorYellow)
		}
	}
}

// renderCannon draws the cannon, the aim ray and the next bubble preview.
func (g *Game) renderCannon(dst *platformcore.Screen, offX int) {
	lx, ly := g.sim.LaunchPoint()
	cx, cy := g.screenPos(offX, lx, ly)

	rad := g.aim * math.Pi / 180
	r := g.cfg.Field.Radius
	for i := 1; i <= 3; i++ {
		d := r * float64(2*i)
		ax, ay := g.screenPos(offX, lx+math.Cos(rad)*d, ly-math.Sin(rad)*d)
		dst.SetWithColor(ax, ay, AimChar, platformcore.ColorGray)
	}

	// The cannon shows the loaded bubble's color
	dst.SetWithColor(cx, cy, CannonChar, bubbleColor(g.sim.CurrentColor()))

	dst.DrawTextWithColor(cx+3, cy, "next:", platformcore.ColorGray)
	dst.SetWithColor(cx+9, cy, BubbleChar, bubbleColor(g.sim.NextColor()))
}

// screenPos maps a world position to a screen cell. One bubble radius
// maps to one cell horizontally and one row pitch to one row, so the
// staggered grid renders with a half-bubble offset on odd rows.
func (g *Game) screenPos(offX int, x, y float64) (int, int) {
	r := g.cfg.Field.Radius
	sx := offX + int(math.Round((x-r)/r))
	sy := fieldTop + int(math.Round((y-r)/(r*sqrt3)))
	return sx, sy
}

// fieldCols returns the field width in screen cells.
func (g *Game) fieldCols() int {
	return g.cfg.Field.Cols * 2
}

// launchRow returns the cannon's screen row relative to the field top.
func (g *Game) launchRow() int {
	r := g.cfg.Field.Radius
	return int(math.Round((g.cfg.Field.Height - 2*r) / (r * sqrt3)))
}

// minScreenW returns the narrowest screen the field fits on.
func (g *Game) minScreenW() int {
	return g.fieldCols() + 2
}

// minScreenH returns the shortest screen the field fits on.
func (g *Game) minScreenH() int {
	return fieldTop + g.launchRow() + 2
}

// bubbleColor maps simulation colors to terminal colors.
func bubbleColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorPurple:
		return platformcore.ColorMagenta
	case core.ColorOrange:
		return platformcore.ColorOrange
	default:
		return platformcore.ColorWhite
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := platformcore.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.sim.Score(),
		Shots:    g.sim.Shots(),
		Popped:   g.popped,
		GameOver: g.sim.Phase() == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register both launch variants with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
	registry.Register("shooter_dense", func() registry.Game {
		return NewDense()
	})
}
