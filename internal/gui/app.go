// Package gui is the windowed trackball demo: the left mouse button
// orbits a wireframe cube, driven by the orbit engine and accumulated on
// a camera rig.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/trackball/internal/camera"
	"github.com/san-kum/trackball/internal/geom"
	"github.com/san-kum/trackball/internal/orbit"
	"github.com/san-kum/trackball/internal/viz"
)

var (
	colBg     = rl.NewColor(10, 10, 10, 255)
	colWire   = rl.NewColor(180, 180, 180, 255)
	colAxisX  = rl.NewColor(220, 90, 90, 255)
	colAxisY  = rl.NewColor(90, 220, 90, 255)
	colAxisZ  = rl.NewColor(90, 120, 220, 255)
	colText   = rl.NewColor(140, 140, 140, 255)
	colActive = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Width  int32
	Height int32

	rig   *camera.Rig
	state orbit.State[float64]
	last  geom.Quat[float64]
	cam   rl.Camera3D
}

func NewApp(width, height int32) *App {
	return &App{
		Width:  width,
		Height: height,
		rig:    camera.NewRig(),
		last:   geom.QuatIdent[float64](),
		cam: rl.NewCamera3D(
			rl.NewVector3(0, 0, 6),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
}

// Run opens the window and blocks until it is closed.
func Run(width, height int32) {
	rl.InitWindow(width, height, "trackball")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := NewApp(width, height)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyR) {
		a.rig.Reset()
		a.state.Reset()
		a.last = geom.QuatIdent[float64]()
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		q := a.state.Compute(
			float64(pos.X), float64(pos.Y),
			float64(a.Width), float64(a.Height),
		)
		a.rig.Apply(q)
		a.last = q
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		a.state.Reset()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.cam)
	rl.DrawGrid(10, 1.0)
	a.drawWire(viz.Cube(1), colWire)
	a.drawAxes(1.6)
	rl.EndMode3D()

	mode := colText
	if a.state.Active() {
		mode = colActive
	}
	rl.DrawText("drag: orbit   r: reset", 10, 10, 20, colText)
	rl.DrawText(
		fmt.Sprintf("rot (%+.3f %+.3f %+.3f %+.3f)  angle %.3f",
			a.last.X, a.last.Y, a.last.Z, a.last.W, a.rig.Angle()),
		10, a.Height-30, 20, mode,
	)

	rl.EndDrawing()
}

func (a *App) drawWire(w viz.Wireframe, col rl.Color) {
	for _, e := range w.Edges {
		rl.DrawLine3D(
			a.vertex(w.Vertices[e[0]]),
			a.vertex(w.Vertices[e[1]]),
			col,
		)
	}
}

func (a *App) drawAxes(length float64) {
	origin := a.vertex(mgl64.Vec3{})
	rl.DrawLine3D(origin, a.vertex(mgl64.Vec3{length, 0, 0}), colAxisX)
	rl.DrawLine3D(origin, a.vertex(mgl64.Vec3{0, length, 0}), colAxisY)
	rl.DrawLine3D(origin, a.vertex(mgl64.Vec3{0, 0, length}), colAxisZ)
}

func (a *App) vertex(v mgl64.Vec3) rl.Vector3 {
	p := a.rig.Rotate(v)
	return rl.NewVector3(float32(p.X()), float32(p.Y()), float32(p.Z()))
}
