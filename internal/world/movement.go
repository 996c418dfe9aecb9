package world

// TryMove validates a move from the given position.
// Each axis of the delta is gated on the orthogonal neighbour of from, not
// on the partially moved position, so a diagonal step is checked against the
// two side tiles. The combined destination must itself be passable and differ
// from from. On failure the original position is returned with moved=false.
func TryMove(g *Grid, from, delta Point) (to Point, moved bool) {
	var step Point

	if delta.Y < 0 && g.IsPassable(from.X, from.Y-1) {
		step.Y--
	}
	if delta.Y > 0 && g.IsPassable(from.X, from.Y+1) {
		step.Y++
	}
	if delta.X < 0 && g.IsPassable(from.X-1, from.Y) {
		step.X--
	}
	if delta.X > 0 && g.IsPassable(from.X+1, from.Y) {
		step.X++
	}

	next := from.Add(step)
	if next == from || !g.IsPassable(next.X, next.Y) {
		return from, false
	}
	return next, true
}
