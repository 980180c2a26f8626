package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Axis selects a velocity component of the player ship.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Player is the ship controlled by the user.
// Pos is the bottom-left corner; Vel is in units per tick.
type Player struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  core.Vec2
	Score int
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y)
}

// Enemy is a descending hostile ship.
type Enemy struct {
	Pos  core.Vec2
	Size core.Vec2
}

// Rect returns the enemy's collision rectangle.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y)
}

// Bullet is a shot fired by the player. Its velocity never changes.
type Bullet struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size core.Vec2
}

// Rect returns the bullet's collision rectangle.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y)
}
