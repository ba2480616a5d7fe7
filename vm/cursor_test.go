package vm

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/simplex"
	"github.com/stretchr/testify/assert"
)

func TestDirectionTurns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	assert.Equal(t, Up, Right.TurnLeft())
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Equal(t, Down, Right.TurnRight())
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Center, Center.TurnLeft())
	for _, d := range []Direction{Left, Right, Up, Down} {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
	}
}

func TestSlateNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m := New(nil)
	m.SetX(3)
	m.SetCell(simplex.FromInt(5))
	m.NextSlate()
	assert.Equal(t, 1, m.SlateIndex())
	assert.True(t, m.Cell().IsZero(), "new slate starts zeroed")
	w, _ := m.Slate().Size()
	assert.Equal(t, 4, w, "new slate is padded to the cursor")
	m.PreviousSlate()
	m.PreviousSlate()
	assert.Equal(t, -1, m.SlateIndex())
	m.NextSlate()
	assert.Equal(t, "5", m.Cell().String())
	assert.Equal(t, 3, m.Slates().Len())
}

func TestTrimFollowsMotion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m := New(nil)
	m.SetCellAt(0, 1, simplex.One)
	_, h := m.Slate().Size()
	assert.Equal(t, 2, h)
	m.SetMotion(0, Down)
	m.Trim()
	_, h = m.Slate().Size()
	assert.Equal(t, 1, h)
	m.SetMotion(0, Center)
	m.Trim()
	_, h = m.Slate().Size()
	assert.Equal(t, 1, h, "center motion does not trim")
}

func TestResetOrigin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "simplex.vm")
	defer teardown()
	//
	m := New(nil)
	m.SetCellAt(-2, -1, simplex.FromInt(9))
	m.SetX(1)
	m.ResetOrigin()
	x, y := m.Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, "9", m.Cell().String())
}
