package game

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/stealth2d/assets"
	"github.com/meghashyamc/stealth2d/audio"
	"github.com/meghashyamc/stealth2d/config"
	"github.com/meghashyamc/stealth2d/level"
	"github.com/meghashyamc/stealth2d/logger"
	"github.com/meghashyamc/stealth2d/sim"
	"github.com/meghashyamc/stealth2d/store"
	"github.com/meghashyamc/stealth2d/world"
)

type GameState int

const (
	GameStatePlaying GameState = iota
	GameStatePaused
)

type Game struct {
	cfg    *config.Config
	sim    *sim.Simulation
	levels *level.Loader
	store  *store.FlagStore
	sounds *audio.SoundManager
	tick   time.Duration
	state  GameState
	logger logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.New(cfg.GetLogLevel())

	tps := cfg.GetTPS()
	if tps <= 0 {
		return nil, fmt.Errorf("invalid ticks per second: %d", tps)
	}

	g := &Game{
		cfg:    cfg,
		levels: level.NewLoader(cfg.GetLevelsDir(), cfg.GetFallbackLevel(), log),
		store:  store.Open(cfg.GetAppName(), log),
		sounds: audio.NewSoundManager(cfg.GetAudioMaxVoices(), log),
		tick:   time.Second / time.Duration(tps),
		state:  GameStatePlaying,
		logger: log,
	}

	if cfg.GetAudioEnabled() {
		if err := g.sounds.Initialize(); err != nil {
			// The game is playable without sound
			log.Warn("failed to initialize audio", "err", err)
		}
	}

	flags := world.NewFlags()
	if err := g.store.Load(flags); err != nil {
		log.Error("failed to load progress, starting fresh", "err", err)
		flags.Reset()
	}
	g.newSimulation(flags)

	g.logger.Info("game initialized", "tps", tps, "startLevel", cfg.GetStartLevel(), "unlocked", flags.Len(), "persistent", g.store.Persistent())
	return g, nil
}

func (g *Game) newSimulation(flags *world.Flags) {
	ids := sim.LevelIDs{
		Start:    g.cfg.GetStartLevel(),
		GameOver: g.cfg.GetGameOverLevel(),
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	g.sim = sim.NewSimulation(g.levels, sim.NewSession(flags), ids, g.sounds, g.store, rng, g.logger)
	g.sim.Start()
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()
	defer g.sounds.Cleanup()

	// Running the game calls Update() on every 'tick'
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.cfg.GetTPS())
	// The reticle is drawn by the game
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (g *Game) Update() error {

	switch g.state {
	case GameStatePlaying:
		return g.updatePlaying()
	case GameStatePaused:
		return g.updatePaused()
	}
	return nil
}

func (g *Game) updatePlaying() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Debug("game paused")
		g.state = GameStatePaused
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return nil
	}

	err := g.sim.Step(g.tick, readInput())
	if errors.Is(err, sim.ErrQuit) {
		g.logger.Info("player left the game")
		return ebiten.Termination
	}
	return err
}

func (g *Game) updatePaused() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.resume()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.newGame()
		g.resume()
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}
	return nil
}

func (g *Game) resume() {
	g.logger.Debug("game resumed")
	g.state = GameStatePlaying
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

// newGame throws away all progress and starts over from the start level.
func (g *Game) newGame() {
	if err := g.store.Clear(); err != nil {
		g.logger.Error("failed to clear progress", "err", err)
	}
	g.newSimulation(world.NewFlags())
	g.logger.Info("new game started")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.sim.Draw(screenRenderer{screen: screen})
	g.drawHUD(screen)

	if g.state == GameStatePaused {
		g.drawPaused(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	shotgun := g.sim.Player().Shotgun()
	ammoText := fmt.Sprintf("%d / %d", shotgun.Magazine(), shotgun.Reserve())

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.cfg.GetWindowWidth())-120, float64(g.cfg.GetWindowHeight())-50)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, ammoText, assets.HUDFont, op)
}

func (g *Game) drawPaused(screen *ebiten.Image) {
	width, height := float64(g.cfg.GetWindowWidth()), float64(g.cfg.GetWindowHeight())

	pausedOp := &text.DrawOptions{}
	pausedOp.GeoM.Scale(2.0, 2.0)
	pausedOp.GeoM.Translate(width/2-80, height/2-100)
	pausedOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, "PAUSED", assets.HUDFont, pausedOp)

	lines := []string{
		"Press Escape to resume",
		"Press N for a new game",
		"Press Q to quit",
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(width/2-110, height/2-20+float64(i)*30)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.HUDFont, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
