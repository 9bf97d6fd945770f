package sim

// Player is the controllable square; Pos is its center
type Player struct {
	Pos     Vec
	Size    float64
	Angle   float64
	Speed   float64
	Health  int
	Bullets []Bullet
}

// Bounds returns the player square
func (p *Player) Bounds() Rect {
	half := p.Size / 2
	return Rect{X: p.Pos.X - half, Y: p.Pos.Y - half, W: p.Size, H: p.Size}
}

// Bullet travels along a fixed angle; Pos is its top-left corner
type Bullet struct {
	Pos   Vec
	Size  float64
	Angle float64
}

// Enemy homes in on the player; Pos is its top-left corner
type Enemy struct {
	Pos    Vec
	Size   float64
	Speed  float64
	Health int
}

// Bounds returns the enemy square
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size, H: e.Size}
}

// home moves the enemy one step toward target.
// A zero distance leaves the enemy in place.
func (e *Enemy) home(target Vec) {
	d := target.Sub(e.Pos)
	dist := d.Len()
	if dist == 0 {
		return
	}
	e.Pos = e.Pos.Add(d.Scale(e.Speed / dist))
}
