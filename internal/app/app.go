package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kdriscoll/driftline/internal/backend"
	"github.com/kdriscoll/driftline/internal/command"
	"github.com/kdriscoll/driftline/internal/config"
	"github.com/kdriscoll/driftline/internal/screen"
	"github.com/kdriscoll/driftline/internal/script"
	"github.com/kdriscoll/driftline/internal/ui"
)

// App drives the panel stack from the Ebitengine game loop: one Update
// per tick (poll input, route events, redeliver injected commands, step
// panels), one Draw per frame.
type App struct {
	cfg config.Config
	log *Logger

	view    *screen.Viewport
	poller  *backend.Poller
	stack   *ui.UI
	keys    *command.Keymap
	watcher *command.Watcher
	scripts *script.Host
}

// New builds the application from its configuration: keymap plus
// overlay and hot reload, optional Lua init script, viewport, input
// poller, and the initial panels.
func New(cfg config.Config, log *Logger) (*App, error) {
	if log == nil {
		log = NullLogger
	}

	keys := command.NewKeymap()
	if cfg.Keymap != "" {
		if err := keys.LoadFile(cfg.Keymap); err != nil {
			return nil, fmt.Errorf("loading keymap: %w", err)
		}
	}

	a := &App{
		cfg:    cfg,
		log:    log,
		view:   screen.NewViewport(cfg.Window.Width, cfg.Window.Height),
		poller: backend.NewPoller(cfg.Window.Width, cfg.Window.Height),
		keys:   keys,
	}
	if cfg.Zoom > 0 {
		a.view.SetZoom(cfg.Zoom)
	}
	a.stack = ui.New(a.view, keys, nil)

	if cfg.Keymap != "" {
		w, err := command.NewWatcher(keys, cfg.Keymap)
		if err != nil {
			log.Warn("keymap hot reload unavailable: %v", err)
		} else {
			w.OnReload = func() { log.Info("keymap reloaded from %s", cfg.Keymap) }
			w.OnError = func(err error) { log.Warn("keymap reload: %v", err) }
			a.watcher = w
		}
	}

	if cfg.Script != "" {
		a.scripts = script.NewHost()
		if err := a.scripts.LoadFile(cfg.Script); err != nil {
			a.scripts.Close()
			return nil, err
		}
		a.scripts.Apply(keys)
		log.Debug("script host %s loaded %s", a.scripts.ID(), cfg.Script)
	}

	scene := NewScenePanel(a.view, a.log.WithComponent("scene"))
	a.stack.Push(scene)
	a.stack.Push(NewMenuPanel(a.view, scene))

	return a, nil
}

// Stack exposes the panel stack, mainly for tests.
func (a *App) Stack() *ui.UI {
	return a.stack
}

// Update implements ebiten.Game. It runs one frame of event routing and
// panel stepping, and reports termination once the stack is done or
// empty.
func (a *App) Update() error {
	now := time.Now()

	for _, ev := range a.poller.Poll(now) {
		a.stack.Handle(ev)
	}

	// Redeliver a one-shot injected command, if a gesture fallback or a
	// script queued one since the last tick.
	if cmd, ok := a.stack.Injector().Take(); ok {
		a.stack.Handle(command.NewEvent(cmd))
		if a.scripts != nil {
			if err := a.scripts.Notify(cmd); err != nil {
				a.log.Warn("script: %v", err)
			}
		}
	}

	a.stack.StepAll()

	if a.stack.IsDone() || a.stack.IsEmpty() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(dst *ebiten.Image) {
	a.stack.DrawAll(dst)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.view.Resize(outsideWidth, outsideHeight)
	a.poller.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Shutdown releases background resources. Safe to call more than once.
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	if a.scripts != nil {
		a.scripts.Close()
		a.scripts = nil
	}
}
