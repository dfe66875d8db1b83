package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vista/command"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/geom"
)

func TestButtonKeyPressFiresCommand(t *testing.T) {
	b := NewButton(geom.NewRect(0, 0, 11, 3), "~O~K", command.OK, false)
	b.SetFocus(true)

	ev := event.Kb(event.KbEnter)
	b.HandleEvent(&ev)
	require.Equal(t, event.Command, ev.What)
	assert.Equal(t, command.OK, ev.Cmd)

	ev = event.Kb(event.KbSpace)
	b.HandleEvent(&ev)
	assert.Equal(t, event.Command, ev.What)
}

func TestButtonUnfocusedIgnoresKeys(t *testing.T) {
	b := NewButton(geom.NewRect(0, 0, 11, 3), "~O~K", command.OK, false)

	ev := event.Kb(event.KbEnter)
	b.HandleEvent(&ev)

	assert.Equal(t, event.Keyboard, ev.What, "unfocused button leaves the key alone")
}

func TestButtonClickExcludesShadow(t *testing.T) {
	b := NewButton(geom.NewRect(0, 0, 11, 3), "~O~K", command.OK, false)

	// The last column and last row are shadow, not face
	ev := event.MouseEv(event.MouseDown, geom.Pt(10, 0), event.MbLeft)
	b.HandleEvent(&ev)
	assert.Equal(t, event.MouseDown, ev.What, "shadow column is not clickable")

	ev = event.MouseEv(event.MouseDown, geom.Pt(4, 2), event.MbLeft)
	b.HandleEvent(&ev)
	assert.Equal(t, event.MouseDown, ev.What, "shadow row is not clickable")

	ev = event.MouseEv(event.MouseDown, geom.Pt(4, 1), event.MbLeft)
	b.HandleEvent(&ev)
	assert.Equal(t, event.Command, ev.What)
}

func TestButtonTracksCommandSet(t *testing.T) {
	set := command.NewSet()
	b := NewButton(geom.NewRect(0, 0, 11, 3), "~S~ave", command.Save, false)
	b.UseSet(set)
	require.True(t, b.CanFocus())

	set.Disable(command.Save)
	bc := event.Bcast(command.CommandSetChanged)
	b.HandleEvent(&bc)
	assert.False(t, b.CanFocus(), "disabled command makes the button unfocusable")

	ev := event.MouseEv(event.MouseDown, geom.Pt(4, 1), event.MbLeft)
	b.HandleEvent(&ev)
	assert.Equal(t, event.MouseDown, ev.What, "disabled button does not fire")

	set.Enable(command.Save)
	bc = event.Bcast(command.CommandSetChanged)
	b.HandleEvent(&bc)
	assert.True(t, b.CanFocus())
}

func TestButtonDisabledStateFlag(t *testing.T) {
	set := command.NewSet()
	set.Disable(command.Save)
	b := NewButton(geom.NewRect(0, 0, 11, 3), "~S~ave", command.Save, false)
	b.UseSet(set)

	assert.NotZero(t, b.State()&SfDisabled, "disabled command sets the state flag")

	set.Enable(command.Save)
	bc := event.Bcast(command.CommandSetChanged)
	b.HandleEvent(&bc)
	assert.Zero(t, b.State()&SfDisabled)
}

func TestButtonSingleBroadcastCoversDisableEnablePair(t *testing.T) {
	set := command.NewSet()
	b := NewButton(geom.NewRect(0, 0, 11, 3), "~S~ave", command.Save, false)
	b.UseSet(set)

	// Several mutations coalesce into one dirty flag; one broadcast
	// after the last mutation leaves the observer consistent
	set.Disable(command.Save)
	set.Enable(command.Save)
	set.Disable(command.Save)
	require.True(t, set.Changed())

	bc := event.Bcast(command.CommandSetChanged)
	b.HandleEvent(&bc)
	set.ClearChanged()

	assert.False(t, b.CanFocus())
	assert.False(t, set.Changed())
}
