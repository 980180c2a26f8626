package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// movePlayer applies the player's velocity and clamps the ship into bounds,
// independently per axis.
func movePlayer(p *Player, bounds core.Rect) {
	p.Pos = p.Pos.Add(p.Vel)
	r := p.Rect().ClampInto(bounds)
	p.Pos = core.Vec2{X: r.X, Y: r.Y}
}

// advanceEnemies lowers every enemy by fall and drops the ones whose top
// edge reached the bottom of the playfield. Order of survivors is preserved.
// Returns the surviving enemies and how many were culled.
func advanceEnemies(enemies []Enemy, fall float64) ([]Enemy, int) {
	valid := enemies[:0]
	for _, e := range enemies {
		e.Pos.Y -= fall
		if e.Rect().Top() <= 0 {
			continue
		}
		valid = append(valid, e)
	}
	return valid, len(enemies) - len(valid)
}

// advanceBullets moves every bullet by its velocity and drops the ones that
// left through the top of the playfield.
func advanceBullets(bullets []Bullet, height float64) ([]Bullet, int) {
	valid := bullets[:0]
	for _, b := range bullets {
		b.Pos = b.Pos.Add(b.Vel)
		if b.Pos.Y > height {
			continue
		}
		valid = append(valid, b)
	}
	return valid, len(bullets) - len(valid)
}
