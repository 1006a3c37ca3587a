package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Initialize audio system.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartWind()
		}()
	}
	defer ShutdownAudio()

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	// Renderer.
	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// Cart model loads in the background; the ride runs camera-only until
	// the result arrives, or forever if it never does.
	cartCh := LoadCartMesh()

	ride := NewRide()
	cam := NewCamera()
	steer := NewSteering()
	steer.Attach(window)

	loop := NewFrameLoop(ride)
	defer loop.Stop()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		// Poll the one-shot model load result.
		if cartCh != nil {
			select {
			case res := <-cartCh:
				if res.Err != nil {
					fmt.Fprintf(os.Stderr, "cart model unavailable (camera-only ride): %v\n", res.Err)
				} else {
					rend.SetCartMesh(res.Mesh)
				}
				cartCh = nil
			default:
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if !loop.Tick(steer.Value()) {
			break
		}
		SetWindLevel(ride.Velocity)

		cam.SetViewport(fbW, fbH)
		cam.SetPose(ride.Camera)
		viewProj := cam.ViewProj()

		rend.BeginFrame(fbW, fbH)
		rend.DrawTrack(viewProj)
		if rend.HasCart() {
			p := ride.Cart.Pos
			model := mgl32.Translate3D(p.X(), p.Y(), p.Z()).
				Mul4(ride.Cart.Rot.Mat4()).
				Mul4(mgl32.Scale3D(CartScale, CartScale, CartScale))
			rend.DrawCart(viewProj, model)
		}

		window.SwapBuffers()
	}
}
