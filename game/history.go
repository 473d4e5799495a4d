package game

type recordKind int

const (
	placeRecord recordKind = iota
	passRecord
)

// capturedStone remembers a removed stone so undo can put it back.
type capturedStone struct {
	pos   Position
	color Color
}

// record holds everything needed to fully revert one applied action.
type record struct {
	kind     recordKind
	pos      Position
	color    Color
	captures []capturedStone

	prevKo         Position
	prevHasKo      bool
	prevPasses     int
	prevTerminated bool
	prevCaptures   int // mover's capture count before the action
}
