package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/l-echo/echo/pkg/echomath"
	"github.com/l-echo/echo/pkg/models"
	"github.com/l-echo/echo/pkg/render"
)

func newTestViewer() *viewer {
	return newViewer(models.Cube(2), render.NewFramebuffer(64, 64), viewerOptions{
		fps:   30,
		bg:    render.ColorBlack,
		fg:    render.ColorWhite,
		fov:   60,
		dist:  5,
		angle: echomath.V3(20, 30, 0),
	})
}

func key(s string) uv.KeyPressEvent {
	r := []rune(s)[0]
	return uv.KeyPressEvent{Code: r, Text: s}
}

func TestViewerRender(t *testing.T) {
	v := newTestViewer()

	if got := v.render(); got != 18 {
		t.Errorf("render drew %d edges, want 18", got)
	}
	if v.fb.Count(render.ColorWhite) == 0 {
		t.Error("no wireframe pixels")
	}

	v.axes = true
	v.render()
	if v.fb.Count(render.ColorRed) == 0 {
		t.Error("axes enabled but x axis missing")
	}
}

func TestViewerKeys(t *testing.T) {
	v := newTestViewer()

	for _, k := range []string{"w", "d", "d"} {
		if err := v.handle(nil, key(k)); err != nil {
			t.Fatalf("handle(%q): %v", k, err)
		}
	}
	if v.spin.Pitch.Velocity != -impulse || v.spin.Yaw.Velocity != 2*impulse {
		t.Errorf("velocity = (%v, %v), want (%v, %v)",
			v.spin.Pitch.Velocity, v.spin.Yaw.Velocity, -impulse, 2*impulse)
	}

	v.step()
	if v.spin.Angle().Equals(echomath.V3(20, 30, 0)) {
		t.Error("step did not move the spin")
	}

	v.handle(nil, key("x"))
	if !v.axes {
		t.Error("x did not toggle axes")
	}

	v.handle(nil, key("r"))
	if !v.spin.Angle().Equals(echomath.V3(20, 30, 0)) || v.spin.Yaw.Velocity != 0 {
		t.Errorf("after reset: angle %v yaw velocity %v", v.spin.Angle(), v.spin.Yaw.Velocity)
	}
}

func TestViewerZoomClamps(t *testing.T) {
	v := newTestViewer()

	for range 50 {
		v.handle(nil, key("+"))
		v.handle(nil, key("="))
	}
	if v.dist != minDist {
		t.Errorf("dist = %v, want %v", v.dist, minDist)
	}

	for range 200 {
		v.handle(nil, uv.MouseWheelEvent{Button: uv.MouseWheelDown})
	}
	if v.dist != maxDist {
		t.Errorf("dist = %v, want %v", v.dist, maxDist)
	}
}

func TestViewerDumpAngle(t *testing.T) {
	var buf bytes.Buffer
	prev := echomath.SetOutput(&buf)
	t.Cleanup(func() { echomath.SetOutput(prev) })

	v := newTestViewer()
	v.handle(nil, key("?"))

	if want := echomath.V3(20, 30, 0).String(); strings.TrimSpace(buf.String()) != want {
		t.Errorf("dump = %q, want %q", buf.String(), want)
	}
}

func TestViewerQuit(t *testing.T) {
	v := newTestViewer()
	err := v.handle(nil, uv.KeyPressEvent{Code: uv.KeyEscape})
	if !errors.Is(err, errQuit) {
		t.Errorf("escape returned %v, want errQuit", err)
	}
}
