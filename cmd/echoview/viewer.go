package main

import (
	"errors"
	"sync"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/l-echo/echo/pkg/echomath"
	"github.com/l-echo/echo/pkg/models"
	"github.com/l-echo/echo/pkg/render"
)

// errQuit stops the event loop on a quit key.
var errQuit = errors.New("quit")

const (
	impulse = 2.0 // degrees per frame added per key press
	minDist = 2
	maxDist = 50
)

// viewer holds everything a frame needs. The event loop and the frame loop
// share it under mu.
type viewer struct {
	mu sync.Mutex

	model  *render.Model
	spin   *Spin
	camera *render.Camera
	fb     *render.Framebuffer
	wire   *render.Wireframe

	bg, fg    render.Color
	axes      bool
	dist      float32
	startDist float32
	start     echomath.Vector3
}

type viewerOptions struct {
	fps       int
	bg, fg    render.Color
	fov, dist float32
	axes      bool
	angle     echomath.Vector3
}

func newViewer(mesh *models.Mesh, fb *render.Framebuffer, opts viewerOptions) *viewer {
	camera := render.NewCamera()
	camera.SetFOV(opts.fov)

	v := &viewer{
		model:     render.NewModel(mesh),
		spin:      NewSpin(opts.fps),
		camera:    camera,
		fb:        fb,
		wire:      render.NewWireframe(camera, fb),
		bg:        opts.bg,
		fg:        opts.fg,
		axes:      opts.axes,
		dist:      opts.dist,
		startDist: opts.dist,
		start:     opts.angle,
	}
	v.spin.Set(opts.angle)
	return v
}

// step advances the animation one frame and redraws the framebuffer.
func (v *viewer) step() {
	v.spin.Update()
	v.render()
}

func (v *viewer) render() int {
	v.camera.Orbit(echomath.Zero3(), echomath.Zero3(), v.dist)
	v.fb.Clear(v.bg)
	if v.axes {
		v.wire.DrawAxes(1.5)
	}
	return v.wire.DrawModel(v.model, v.spin.Angle(), v.fg)
}

func (v *viewer) zoom(delta float32) {
	v.dist = min(max(v.dist+delta, minDist), maxDist)
}

// handle applies one terminal event. It returns errQuit when the viewer
// should exit.
func (v *viewer) handle(term *uv.Terminal, ev uv.Event) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		term.Erase()
		if err := term.Resize(ev.Width, ev.Height); err != nil {
			return err
		}
		v.fb.Resize(ev.Width, ev.Height*2)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			return errQuit
		case ev.MatchString("w", "up"):
			v.spin.ApplyImpulse(-impulse, 0)
		case ev.MatchString("s", "down"):
			v.spin.ApplyImpulse(impulse, 0)
		case ev.MatchString("a", "left"):
			v.spin.ApplyImpulse(0, -impulse)
		case ev.MatchString("d", "right"):
			v.spin.ApplyImpulse(0, impulse)
		case ev.MatchString("r"):
			v.spin.Set(v.start)
			v.dist = v.startDist
		case ev.MatchString("x"):
			v.axes = !v.axes
		case ev.MatchString("=", "shift+="), ev.Text == "+":
			v.zoom(-0.5)
		case ev.MatchString("-", "_"):
			v.zoom(0.5)
		case ev.MatchString("?"), ev.MatchString("shift+/"):
			v.spin.Angle().Dump()
		}

	case uv.MouseWheelEvent:
		switch ev.Button {
		case uv.MouseWheelUp:
			v.zoom(-0.5)
		case uv.MouseWheelDown:
			v.zoom(0.5)
		}
	}
	return nil
}
