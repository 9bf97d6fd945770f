package sim

import "time"

// Input is the control snapshot consumed by one step
type Input struct {
	Up, Down, Left, Right bool
	// Aim is the facing angle in radians
	Aim      float64
	Shooting bool
}

// Step advances the world by one tick at wall-clock time now and returns what happened.
// Under lifecycle rules it does nothing outside the playing state.
func (w *World) Step(now time.Time, in Input) []Event {
	if w.rules.Lifecycle && w.state != StatePlaying {
		return nil
	}
	w.pending = nil

	w.advancePlayer(in)
	w.fireBullet(in, now)
	w.advanceBullets()
	w.advanceEnemies()
	w.spawnTick(now)

	return w.pending
}

func (w *World) emit(kind EventKind, pos Vec) {
	w.pending = append(w.pending, Event{Kind: kind, Pos: pos})
}

// advancePlayer applies one displacement per held direction. Diagonals are not
// normalized.
func (w *World) advancePlayer(in Input) {
	p := &w.player
	p.Angle = in.Aim

	if in.Up {
		p.Pos.Y -= p.Speed
	}
	if in.Down {
		p.Pos.Y += p.Speed
	}
	if in.Left {
		p.Pos.X -= p.Speed
	}
	if in.Right {
		p.Pos.X += p.Speed
	}

	if w.rules.ClampToArena {
		p.Pos = w.arena.ClampCenter(p.Pos, p.Size/2)
	}
}

func (w *World) fireBullet(in Input, now time.Time) {
	if !in.Shooting || now.Sub(w.lastFired) <= w.cfg.BulletCooldown {
		return
	}
	p := &w.player
	p.Bullets = append(p.Bullets, Bullet{
		Pos:   p.Pos,
		Size:  w.cfg.BulletSize,
		Angle: p.Angle,
	})
	w.lastFired = now
	w.emit(EventBulletFired, p.Pos)
}

// advanceBullets drops bullets outside the arena, then moves the survivors
func (w *World) advanceBullets() {
	bullets := w.player.Bullets
	live := bullets[:0]
	for _, b := range bullets {
		if !w.arena.Contains(b.Pos) {
			continue
		}
		b.Pos = b.Pos.Add(Heading(b.Angle).Scale(w.cfg.BulletSpeed))
		live = append(live, b)
	}
	clear(bullets[len(live):])
	w.player.Bullets = live
}

// advanceEnemies moves, hit-tests and melee-tests each enemy in slice order against
// the already moved player. Removals are marked first and compacted at the end.
func (w *World) advanceEnemies() {
	if len(w.enemies) == 0 {
		return
	}

	bullets := w.player.Bullets
	spent := make([]bool, len(bullets))
	dead := make([]bool, len(w.enemies))
	target := w.player.Pos

	for i := range w.enemies {
		e := &w.enemies[i]
		e.home(target)

		if w.resolveHits(e, bullets, spent) {
			dead[i] = true
			continue
		}

		if w.resolveMelee(e, target) {
			dead[i] = true
		}
	}

	w.enemies = compact(w.enemies, dead)
	w.player.Bullets = compact(bullets, spent)
}

// resolveHits lets every unspent bullet inside e take one health point.
// The first enemy to claim a bullet keeps it. Reports whether e died.
func (w *World) resolveHits(e *Enemy, bullets []Bullet, spent []bool) bool {
	box := e.Bounds()
	for j := range bullets {
		if spent[j] || !box.ContainsStrict(bullets[j].Pos) {
			continue
		}
		spent[j] = true
		e.Health--
		w.emit(EventEnemyHit, bullets[j].Pos)

		if e.Health <= 0 {
			if w.rules.Lifecycle {
				w.score += w.cfg.KillScore
			}
			w.emit(EventEnemyKilled, box.Center())
			return true
		}
	}
	return false
}

// resolveMelee removes an enemy that reached the player and charges one health point.
// Reports whether e was consumed.
func (w *World) resolveMelee(e *Enemy, target Vec) bool {
	if !w.rules.Lifecycle || w.state != StatePlaying {
		return false
	}
	center := e.Bounds().Center()
	if center.Sub(target).Len() >= w.cfg.MeleeRange {
		return false
	}

	w.player.Health--
	w.emit(EventPlayerDamaged, center)
	if w.player.Health <= 0 && w.transition(StateGameOver) {
		w.emit(EventGameOver, target)
	}
	return true
}

func (w *World) spawnTick(now time.Time) {
	if w.rules.Lifecycle && w.state != StatePlaying {
		return
	}
	if now.Sub(w.lastSpawn) <= w.cfg.SpawnInterval {
		return
	}

	size := w.cfg.EnemySize
	e := Enemy{
		Pos:    Vec{X: w.rng.Float64() * (w.arena.Width - size), Y: -size},
		Size:   size,
		Speed:  w.cfg.EnemySpeed,
		Health: w.cfg.EnemyHealth,
	}
	w.enemies = append(w.enemies, e)
	w.lastSpawn = now
	w.emit(EventEnemySpawned, e.Pos)
}

// compact keeps the unmarked elements in order, reusing the backing array
func compact[T any](items []T, marked []bool) []T {
	live := items[:0]
	for i, it := range items {
		if !marked[i] {
			live = append(live, it)
		}
	}
	clear(items[len(live):])
	return live
}
