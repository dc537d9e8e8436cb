// echoview - terminal wireframe viewer for echo meshes.
// Draws a GLB/GLTF model, or a cube when none is given, as a spinning
// wireframe using degree-based rotations.
//
// Controls:
//
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	R           - Reset rotation
//	X           - Toggle axes
//	?           - Dump the current angle pair
//	+/- Scroll  - Zoom
//	Esc         - Quit
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/l-echo/echo/pkg/echomath"
	"github.com/l-echo/echo/pkg/models"
	"github.com/l-echo/echo/pkg/render"
	"golang.org/x/sync/errgroup"
)

var (
	targetFPS = flag.Int("fps", 30, "Target FPS")
	bgColor   = flag.String("bg", "30,30,40", "Background color (R,G,B or #rrggbb)")
	fgColor   = flag.String("color", "#00ff80", "Wireframe color (R,G,B or #rrggbb)")
	fov       = flag.Float64("fov", 60, "Field of view in degrees")
	dist      = flag.Float64("dist", 5, "Camera distance from the model")
	axes      = flag.Bool("axes", false, "Draw coordinate axes")
	angle     = flag.String("angle", "20,30", "Initial pitch,yaw in degrees")
	dumpPath  = flag.String("dump", "", "Render one frame to this PNG file and exit")
	dumpSize  = flag.String("size", "160x96", "Frame size in pixels for -dump")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "echoview - Terminal wireframe viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: echoview [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle axes\n")
		fmt.Fprintf(os.Stderr, "  ?           - Dump angle pair\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.Cube(2), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		mesh, err := models.NewGLTFLoader().Load(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		return mesh, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

func parseOptions() (viewerOptions, error) {
	opts := viewerOptions{
		fps:  *targetFPS,
		fov:  float32(*fov),
		dist: float32(*dist),
		axes: *axes,
	}
	if opts.fps <= 0 {
		return opts, fmt.Errorf("fps must be positive, got %d", opts.fps)
	}

	var err error
	if opts.bg, err = render.ParseColor(*bgColor); err != nil {
		return opts, fmt.Errorf("bg: %w", err)
	}
	if opts.fg, err = render.ParseColor(*fgColor); err != nil {
		return opts, fmt.Errorf("color: %w", err)
	}

	var pitch, yaw float32
	if _, err := fmt.Sscanf(*angle, "%g,%g", &pitch, &yaw); err != nil {
		return opts, fmt.Errorf("angle %q: %w", *angle, err)
	}
	opts.angle = echomath.V3(pitch, yaw, 0)
	return opts, nil
}

func run(modelPath string) error {
	echomath.InitMath()

	opts, err := parseOptions()
	if err != nil {
		return err
	}

	mesh, err := loadMesh(modelPath)
	if err != nil {
		return err
	}

	if *dumpPath != "" {
		return dumpFrame(mesh, opts, *dumpPath)
	}

	name := "cube"
	if modelPath != "" {
		name = filepath.Base(modelPath)
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", name, mesh.VertexCount(), mesh.TriangleCount())

	return view(mesh, opts)
}

// dumpFrame renders a single frame to a PNG without touching the terminal.
func dumpFrame(mesh *models.Mesh, opts viewerOptions, path string) error {
	var w, h int
	if _, err := fmt.Sscanf(*dumpSize, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("size %q: want WIDTHxHEIGHT", *dumpSize)
	}

	v := newViewer(mesh, render.NewFramebuffer(w, h), opts)
	drawn := v.render()
	if err := v.fb.SavePNG(path); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	fmt.Printf("Wrote %s (%d of %d edges drawn)\n", path, drawn, len(v.model.Edges))
	return nil
}

func view(mesh *models.Mesh, opts viewerOptions) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	// Angle dumps go to a buffer while the alt screen is up and are
	// flushed once the terminal is restored.
	var dumps bytes.Buffer
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		_ = term.Shutdown(context.Background())
		_, _ = os.Stderr.Write(dumps.Bytes())
	}()

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	prev := echomath.SetOutput(&dumps)
	defer echomath.SetOutput(prev)

	v := newViewer(mesh, render.ForTerminal(width, height), opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-term.Events():
				if !ok {
					return errQuit
				}
				if err := v.handle(term, ev); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			v.mu.Lock()
			v.step()
			term.Draw(v.fb)
			err := term.Display()
			v.mu.Unlock()
			if err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	})

	err = g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
