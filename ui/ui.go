package ui

import (
	"image"
	"image/color"
	"os"
	"sync"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

const boardMarginDp = unit.Dp(20)
const controlsHeightDp = unit.Dp(140)

var theme = material.NewTheme()

var difficulties = []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard}

// UI renders both boards, the status line and the session controls, and
// turns pointer presses on a board surface into engine commands.
type UI struct {
	engine *engine.Engine
	window *app.Window

	mu            sync.Mutex
	status        string
	animationStep AnimationStep

	difficulty     engine.Difficulty
	difficultyBtns []widget.Clickable
	startBtn       widget.Clickable
	restartBtn     widget.Clickable

	playerTag   bool
	computerTag bool
}

// New builds the UI and installs its hooks on e. Delay is left to the caller.
func New(e *engine.Engine, d engine.Difficulty) *UI {
	ui := &UI{
		engine:         e,
		window:         new(app.Window),
		status:         "Choose a difficulty and press Start",
		animationStep:  Idle,
		difficulty:     d,
		difficultyBtns: make([]widget.Clickable, len(difficulties)),
	}

	e.HandleStatus = func(msg string) {
		ui.setStatus(msg)
		ui.window.Invalidate()
	}

	e.HandlePhaseChanged = func(phase engine.Phase) {
		ui.setAnimStep(stepForPhase(phase))
		ui.window.Invalidate()
	}

	e.HandleBoardChanged = func(owner engine.Owner) {
		log.Debug("board changed", "owner", owner)
		ui.window.Invalidate()
	}

	return ui
}

func (ui *UI) setStatus(msg string) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	ui.status = msg
}

func (ui *UI) setAnimStep(step AnimationStep) {
	log.Debug("setting animation step", "step", showAnimationStep(step))
	ui.mu.Lock()
	defer ui.mu.Unlock()
	ui.animationStep = step
}

func (ui *UI) current() (string, AnimationStep) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.status, ui.animationStep
}

func (ui *UI) draw(window *app.Window) error {
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			ui.handleControls(gtx)
			ui.handleBoardEvents(e.Source, gtx.Metric)

			session, started := ui.engine.Snapshot()
			status, step := ui.current()

			drawRect(gtx, 0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y, backgroundFor(step))

			layout.UniformInset(boardMarginDp).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return ui.layoutControls(gtx, started)
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						label := material.Label(theme, unit.Sp(24), status)
						label.Color = whiteColor
						return label.Layout(gtx)
					}),
					layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return ui.layoutBoard(gtx, &session.PlayerBoard, engine.OwnerView, &ui.playerTag)
							}),
							layout.Rigid(layout.Spacer{Width: boardMarginDp}.Layout),
							layout.Rigid(func(gtx layout.Context) layout.Dimensions {
								return ui.layoutBoard(gtx, &session.ComputerBoard, engine.OpponentView, &ui.computerTag)
							}),
						)
					}),
				)
			})

			e.Frame(gtx.Ops)
		}
	}
}

func (ui *UI) handleControls(gtx layout.Context) {
	for i := range ui.difficultyBtns {
		if ui.difficultyBtns[i].Clicked(gtx) {
			ui.difficulty = difficulties[i]
			log.Info("difficulty selected", "difficulty", ui.difficulty)
		}
	}

	if ui.startBtn.Clicked(gtx) {
		if err := ui.engine.Start(ui.difficulty); err != nil {
			log.Error("start failed", "err", err)
			ui.setStatus(err.Error())
		}
	}

	if ui.restartBtn.Clicked(gtx) {
		if err := ui.engine.Restart(ui.difficulty); err != nil {
			log.Error("restart failed", "err", err)
			ui.setStatus(err.Error())
		}
	}
}

// handleBoardEvents drains presses registered on the two board surfaces in
// the previous frame. Presses on the player board place ships, presses on
// the computer board fire.
func (ui *UI) handleBoardEvents(source input.Source, metric unit.Metric) {
	for _, c := range pressedCells(source, &ui.playerTag, metric) {
		result := ui.engine.PlaceShip(c)
		log.Debug("place", "cell", c, "result", result)
	}

	for _, c := range pressedCells(source, &ui.computerTag, metric) {
		outcome := ui.engine.Fire(c)
		log.Debug("fire", "cell", c, "outcome", outcome)
	}
}

func pressedCells(source input.Source, tag *bool, metric unit.Metric) []engine.Coord {
	var cells []engine.Coord

	for {
		ev, ok := source.Event(pointer.Filter{
			Target: tag,
			Kinds:  pointer.Press,
		})

		if !ok {
			break
		}

		if x, ok := ev.(pointer.Event); ok && x.Kind == pointer.Press {
			if c, ok := CellAt(pxToDp(x.Position, metric)); ok {
				cells = append(cells, c)
			}
		}
	}

	return cells
}

func (ui *UI) layoutControls(gtx layout.Context, started bool) layout.Dimensions {
	children := make([]layout.FlexChild, 0, len(difficulties)*2+4)

	for i, d := range difficulties {
		btn := material.Button(theme, &ui.difficultyBtns[i], d.String())
		btn.Background = buttonColor
		if d == ui.difficulty {
			btn.Background = selectedColor
		}
		children = append(children,
			layout.Rigid(btn.Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		)
	}

	children = append(children,
		layout.Rigid(layout.Spacer{Width: boardMarginDp}.Layout),
		layout.Rigid(material.Button(theme, &ui.startBtn, "Start").Layout),
	)

	if started {
		children = append(children,
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Button(theme, &ui.restartBtn, "Restart").Layout),
		)
	}

	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

// layoutBoard draws one 10x10 surface and registers tag for pointer input
// over it.
func (ui *UI) layoutBoard(gtx layout.Context, b *engine.Board, p engine.Perspective, tag *bool) layout.Dimensions {
	cellSize := gtx.Dp(CellSizeDp)
	size := cellSize * engine.BoardSize

	area := clip.Rect(image.Rect(0, 0, size, size)).Push(gtx.Ops)
	event.Op(gtx.Ops, tag)
	area.Pop()

	for y := 0; y < engine.BoardSize; y++ {
		for x := 0; x < engine.BoardSize; x++ {
			drawCell(gtx, x, y, cellSize, getColor(b.View(engine.Coord{X: x, Y: y}, p)))
		}
	}

	return layout.Dimensions{Size: image.Point{X: size, Y: size}}
}

func drawCell(gtx layout.Context, cellX, cellY, cellSize int, fill color.NRGBA) {
	if cellX < 0 || cellY < 0 {
		panic("Invalid negative cell position")
	}

	r := image.Rect(cellX*cellSize, cellY*cellSize, (cellX+1)*cellSize, (cellY+1)*cellSize)

	if fill.A > 0 {
		paint.FillShape(gtx.Ops, fill, clip.Rect(r).Op())
	}

	paint.FillShape(gtx.Ops, gridColor, clip.Stroke{
		Path:  clip.RRect{Rect: r}.Path(gtx.Ops),
		Width: 1,
	}.Op())
}

func drawRect(gtx layout.Context, x, y, width, height int, color color.NRGBA) {
	if width < 0 || height < 0 {
		panic("Invalid negative width or height")
	}

	if width == 0 || height == 0 {
		return
	}

	stack := op.Offset(image.Point{X: x, Y: y}).Push(gtx.Ops)
	defer stack.Pop()

	paint.Fill(gtx.Ops, color)
}

// Run opens the window and blocks in the platform event loop. The process
// exits when the window is closed.
func (ui *UI) Run() {
	go func() {
		ui.window.Option(
			app.Title("Ship Game"),
			app.Size(
				2*SurfaceSizeDp+3*boardMarginDp,
				SurfaceSizeDp+controlsHeightDp+2*boardMarginDp,
			),
		)

		if err := ui.draw(ui.window); err != nil {
			log.Fatal("window closed with error", "err", err)
		}
		os.Exit(0)
	}()
	app.Main()
}
