package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grid-shooter/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoller struct {
	events []*tcell.EventKey
}

func (p *fakePoller) PollKey() (*tcell.EventKey, bool) {
	if len(p.events) == 0 {
		return nil, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, true
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), CommandQuit},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), CommandMoveLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), CommandMoveRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CommandMoveUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), CommandMoveDown},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), CommandFire},
		{"c", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), CommandClear},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), CommandMoveLeft},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), CommandMoveDown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := kt.Lookup(tc.ev)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.False(t, ok)
	_, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)
	_, ok = kt.Lookup(nil)
	assert.False(t, ok)
}

func TestKeyboardSourceSkipsUnbound(t *testing.T) {
	poller := &fakePoller{events: []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	}}
	src := NewKeyboardSource(poller, nil)

	cmd, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, CommandFire, cmd)

	cmd, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, CommandQuit, cmd)

	_, ok = src.Next()
	assert.False(t, ok)
}

func TestCommandDisplacement(t *testing.T) {
	d, ok := CommandMoveLeft.Displacement()
	require.True(t, ok)
	assert.Equal(t, core.NewPoint(0, -1), d)

	d, _ = CommandMoveDown.Displacement()
	assert.Equal(t, core.NewPoint(1, 0), d)

	_, ok = CommandFire.Displacement()
	assert.False(t, ok)
}

func TestScriptSource(t *testing.T) {
	src := NewScriptSource(CommandFire, CommandQuit)
	assert.Equal(t, 2, src.Remaining())

	cmd, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, CommandFire, cmd)
	cmd, _ = src.Next()
	assert.Equal(t, CommandQuit, cmd)

	_, ok = src.Next()
	assert.False(t, ok)
	assert.Equal(t, "quit", CommandQuit.String())
	assert.Equal(t, "unknown", Command(99).String())
}
