package shooter

// playerHit reports whether any enemy overlaps the player.
func playerHit(p Player, enemies []Enemy) bool {
	pr := p.Rect()
	for _, e := range enemies {
		if pr.Intersects(e.Rect()) {
			return true
		}
	}
	return false
}

// resolveBulletHits pairs every bullet with the first still-present enemy it
// overlaps. Both members of a pair are removed and each pair scores one kill.
// A consumed bullet or enemy takes no part in further tests. Removal is
// applied after the pass so iteration never skips or revisits an element.
func resolveBulletHits(bullets []Bullet, enemies []Enemy) ([]Bullet, []Enemy, int) {
	if len(bullets) == 0 || len(enemies) == 0 {
		return bullets, enemies, 0
	}

	deadEnemy := make([]bool, len(enemies))
	deadBullet := make([]bool, len(bullets))
	kills := 0

	for bi, b := range bullets {
		br := b.Rect()
		for ei, e := range enemies {
			if deadEnemy[ei] {
				continue
			}
			if br.Intersects(e.Rect()) {
				deadBullet[bi] = true
				deadEnemy[ei] = true
				kills++
				break
			}
		}
	}

	if kills == 0 {
		return bullets, enemies, 0
	}

	liveBullets := bullets[:0]
	for i, b := range bullets {
		if !deadBullet[i] {
			liveBullets = append(liveBullets, b)
		}
	}
	liveEnemies := enemies[:0]
	for i, e := range enemies {
		if !deadEnemy[i] {
			liveEnemies = append(liveEnemies, e)
		}
	}
	return liveBullets, liveEnemies, kills
}
