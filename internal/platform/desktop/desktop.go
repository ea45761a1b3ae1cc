//go:build !android

// Package desktop presents the runner in a native window: glfw for the
// window and keyboard, OpenGL to scale the RGBA frame up.
package desktop

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/tilerunner/internal/assets"
	"github.com/vovakirdan/tilerunner/internal/core"
	"github.com/vovakirdan/tilerunner/internal/game"
	"github.com/vovakirdan/tilerunner/internal/render"
)

// DefaultScale is the window size multiplier over the frame size.
const DefaultScale = 6

// Options configure the desktop driver.
type Options struct {
	Title    string
	Scale    int
	TickRate int
	Logger   *log.Logger
}

// keyBindings maps glfw keys to actions.
var keyBindings = map[glfw.Key]core.Action{
	glfw.KeySpace:  core.ActionConfirm,
	glfw.KeyUp:     core.ActionConfirm,
	glfw.KeyW:      core.ActionConfirm,
	glfw.KeyEnter:  core.ActionConfirm,
	glfw.KeyEscape: core.ActionQuit,
	glfw.KeyQ:      core.ActionQuit,
}

func initWindow(width, height int, title string) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	return window, nil
}

// keysDown samples the current key levels.
func keysDown(window *glfw.Window) map[core.Action]bool {
	down := make(map[core.Action]bool, 2)
	for k, a := range keyBindings {
		if window.GetKey(k) == glfw.Press {
			down[a] = true
		}
	}
	if window.ShouldClose() {
		down[core.ActionQuit] = true
	}
	return down
}

// Run plays g in a window until the player quits or presentation fails.
// It must be called from the main goroutine.
func Run(g *game.Game, set *assets.Set, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	title := opts.Title
	if title == "" {
		title = "Tile Runner"
	}

	cfg := g.Config()
	w, h := cfg.Screen.Width, cfg.Screen.Height

	window, err := initWindow(w*scale, h*scale, title)
	if err != nil {
		g.Flush()
		return fmt.Errorf("desktop: %w", err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		g.Flush()
		return fmt.Errorf("desktop: gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	blit, err := newBlitter(w, h)
	if err != nil {
		g.Flush()
		return err
	}
	defer blit.destroy()

	raster := render.NewRasterizer(set, w, h)
	pacer := core.NewPacer(opts.TickRate)
	edges := core.NewEdges()
	logger.Debug("window open", "width", w*scale, "height", h*scale, "budget", pacer.Budget())

	for {
		glfw.PollEvents()
		res := g.Tick(edges.Frame(keysDown(window)), time.Now())
		if res.Quit {
			return nil
		}

		fbW, fbH := window.GetFramebufferSize()
		if err := blit.draw(raster.Draw(res.Plan), fbW, fbH); err != nil {
			g.Flush()
			return err
		}
		window.SwapBuffers()
		pacer.Wait()
	}
}
