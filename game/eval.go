package game

// Evaluate scores a board from white's perspective: positive values favor
// white, negative favor black.
type Evaluate func(*Board) float64

// EvaluateCaptures scores a position by capture differential alone. It is
// the default evaluation for depth-limited search.
func EvaluateCaptures(b *Board) float64 {
	return float64(b.white.Captures() - b.black.Captures())
}

// EvaluateScore scores a position by the difference of the two sides'
// estimated scores (territory plus capture bonus).
func EvaluateScore(b *Board) float64 {
	blackScore, whiteScore := b.Score()
	return float64(whiteScore - blackScore)
}
