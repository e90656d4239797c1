package engine

import "github.com/tiltdodge/dodge/internal/core"

// firstContact returns the index of the oldest active obstacle overlapping
// the avatar's cell, or -1 when nothing touches. Obstacles are stored in
// ascending spawn order, so scanning front to back resolves the tie-break:
// when several obstacles overlap in the same tick, the earliest spawn takes
// the hit.
func (f *obstacleField) firstContact(avatarLane, avatarRow int) int {
	avatarBox := core.NewRect(avatarLane, avatarRow, 1, 1)
	for i, o := range f.active {
		if core.NewRect(o.lane, o.row(), 1, 1).Intersects(avatarBox) {
			return i
		}
	}
	return -1
}

// removeAt destroys the obstacle at index i, preserving spawn order.
func (f *obstacleField) removeAt(i int) {
	f.active = append(f.active[:i], f.active[i+1:]...)
}
