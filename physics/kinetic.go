package physics

// Integrate advances position by velocity over dt seconds
func Integrate(b *Body, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// ClampBoundsX keeps the body inside [minX, maxX] horizontally
// Returns the touched side; velocity toward that side is zeroed
func ClampBoundsX(b *Body, minX, maxX float64) (left, right bool) {
	half := b.W / 2
	if b.Pos.X-half < minX {
		b.Pos.X = minX + half
		if b.Vel.X < 0 {
			b.Vel.X = 0
		}
		return true, false
	}
	if b.Pos.X+half > maxX {
		b.Pos.X = maxX - half
		if b.Vel.X > 0 {
			b.Vel.X = 0
		}
		return false, true
	}
	return false, false
}
