package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grid-shooter/core"
	"github.com/lixenwraith/grid-shooter/render"
)

// keyBufferSize bounds keys waiting for the game loop; the pump blocks when full
const keyBufferSize = 64

// Screen adapts a tcell screen to the grid's Surface and the game's key poller
// Drawing methods must be called from a single goroutine; key polling is safe from any
type Screen struct {
	screen tcell.Screen

	cursor     core.Point
	foreground render.Color

	keys chan *tcell.EventKey
	quit chan struct{}

	startOnce sync.Once
	finiOnce  sync.Once
}

// New creates and initializes a screen on the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewFromScreen(s)
}

// NewFromScreen initializes and wraps an existing tcell screen, e.g. a simulation screen
func NewFromScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	return &Screen{
		screen:     s,
		foreground: render.ColorWhite,
		keys:       make(chan *tcell.EventKey, keyBufferSize),
		quit:       make(chan struct{}),
	}, nil
}

// Start launches the event pump; keys become available to PollKey and WaitKey
func (s *Screen) Start() {
	s.startOnce.Do(func() {
		core.Go(s.pump)
	})
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case s.keys <- ev:
			case <-s.quit:
				return
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Fini restores the terminal; safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// PollKey returns a pending key without blocking
func (s *Screen) PollKey() (*tcell.EventKey, bool) {
	select {
	case ev := <-s.keys:
		return ev, true
	default:
		return nil, false
	}
}

// WaitKey blocks until a key arrives or ctx is done
func (s *Screen) WaitKey(ctx context.Context) (*tcell.EventKey, error) {
	select {
	case ev := <-s.keys:
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// PrintLine writes text at the start of a row in the default colour and flushes
func (s *Screen) PrintLine(row int, text string) {
	style := s.style(render.ColorWhite)
	col := 0
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
	s.screen.Show()
}

// Size returns the terminal size in cells
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

func (s *Screen) SetCursor(row, col int) {
	s.cursor = core.NewPoint(row, col)
}

func (s *Screen) WriteChar(ch rune, color render.Color) {
	s.foreground = color
	s.screen.SetContent(s.cursor.Col, s.cursor.Row, ch, nil, s.style(color))
	s.cursor.ShiftInPlace(0, 1)
}

func (s *Screen) Foreground() render.Color { return s.foreground }

func (s *Screen) SetForeground(color render.Color) { s.foreground = color }

func (s *Screen) ClearScreen() { s.screen.Clear() }

func (s *Screen) HideCursor() { s.screen.HideCursor() }

func (s *Screen) Show() { s.screen.Show() }

func (s *Screen) style(color render.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(color)).Background(tcell.ColorBlack)
}
