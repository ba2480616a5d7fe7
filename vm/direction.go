package vm

import "fmt"

// Direction is a unit vector on a slate, or the null vector Center.
// Y grows downwards.
type Direction struct {
	DX, DY int
}

// The five directions a motion may take.
var (
	Center = Direction{0, 0}
	Left   = Direction{-1, 0}
	Right  = Direction{1, 0}
	Up     = Direction{0, -1}
	Down   = Direction{0, 1}
)

func (d Direction) String() string {
	switch d {
	case Center:
		return "center"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// TurnLeft rotates d by 90° counter-clockwise (as seen on screen).
func (d Direction) TurnLeft() Direction {
	return Direction{d.DY, -d.DX}
}

// TurnRight rotates d by 90° clockwise (as seen on screen).
func (d Direction) TurnRight() Direction {
	return Direction{-d.DY, d.DX}
}
