package game

// Score estimates the score for each side: the total size of maximal empty
// regions bordered exclusively by that side's stones, plus twice the side's
// capture count. This is a deliberate simplification of territory scoring:
// dead stones are not resolved and no komi is applied.
func (b *Board) Score() (blackScore, whiteScore int) {
	visited := make([]bool, len(b.grid))
	for i := range b.grid {
		if visited[i] || !b.grid[i].Empty() {
			continue
		}
		size, borders := b.fillRegion(b.grid[i].pos, visited)
		switch {
		case borders[Black] && !borders[White]:
			blackScore += size
		case borders[White] && !borders[Black]:
			whiteScore += size
		}
	}
	blackScore += 2 * b.black.Captures()
	whiteScore += 2 * b.white.Captures()
	return blackScore, whiteScore
}

// fillRegion flood-fills the maximal empty region containing p, marking its
// cells visited, and reports the region's size along with the set of stone
// colors that touch it.
func (b *Board) fillRegion(p Position, visited []bool) (int, map[Color]bool) {
	borders := make(map[Color]bool)
	visited[b.index(p)] = true
	queue := []Position{p}
	size := 1
	for i := 0; i < len(queue); i++ {
		for _, n := range b.neighbors(queue[i]) {
			ni := b.index(n)
			if visited[ni] {
				continue
			}
			if b.grid[ni].Empty() {
				visited[ni] = true
				size++
				queue = append(queue, n)
			} else {
				borders[b.grid[ni].color] = true
			}
		}
	}
	return size, borders
}
