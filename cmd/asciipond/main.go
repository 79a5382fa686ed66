package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"asciipond/constants"
	"asciipond/render"
	"asciipond/sim"
)

type App struct {
	screen  tcell.Screen
	painter *render.Painter
	pond    *sim.Simulation

	paused     bool
	showStatus bool
}

func NewApp(seed int64, rain bool) (*App, error) {
	if err := render.ValidateRamp(render.Ramp); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	a := &App{
		screen:  screen,
		painter: render.NewPainter(screen),
		pond: sim.New(sim.Config{
			Cols: cols,
			Rows: rows,
			Seed: seed,
			Rain: rain,
		}),
	}
	return a, nil
}

func (a *App) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !a.paused {
				a.pond.Step()
			}
			a.draw()
		}
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.paused = !a.paused
			case 'd':
				a.showStatus = !a.showStatus
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x := (float64(col) + 0.5) * constants.CellWidth
		y := (float64(row) + 0.5) * constants.CellHeight
		a.pond.SetPointer(x, y)
		if ev.Buttons()&tcell.Button1 != 0 {
			a.pond.Splash(x, y)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			a.pond.PointerLeave()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := ev.Size()
		a.pond.Resize(cols, rows)
	}

	return true
}

func (a *App) draw() {
	a.painter.Paint(a.pond.Frame(), a.pond.Drops())

	if a.showStatus {
		ripples, wakes, drops := a.pond.Counts()
		status := fmt.Sprintf(" t=%6.1fs  ripples=%d  wakes=%d  drops=%d ",
			a.pond.Now(), ripples, wakes, drops)
		if a.paused {
			status += "[paused] "
		}
		a.painter.Text(0, 0, status, render.RainStreak)
	}

	a.painter.Flush()
}

func (a *App) cleanup() {
	a.screen.Fini()
}

func main() {
	seed := flag.Int64("seed", 0, "simulation seed, 0 picks one from the clock")
	rain := flag.Bool("rain", true, "enable ambient rainfall")
	color := flag.String("color", "auto", "color depth: auto, truecolor or 256")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// tcell reads these during screen setup.
	switch *color {
	case "auto":
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	default:
		fmt.Fprintf(os.Stderr, "Unknown -color value %q\n", *color)
		os.Exit(2)
	}

	app, err := NewApp(*seed, *rain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if a frame panics.
	defer func() {
		r := recover()
		app.cleanup()
		if r != nil {
			panic(r)
		}
	}()

	app.run()
}
