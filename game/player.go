package game

// Player represents one side of a game: a name, a fixed stone color, and a
// running count of stones it has captured. Players are created in linked
// pairs so either side can reach its opponent.
type Player struct {
	name     string
	color    Color
	captures int
	opponent *Player
}

// NewPlayers creates a black/white player pair with opponent links set.
func NewPlayers(blackName, whiteName string) (black, white *Player) {
	black = &Player{name: blackName, color: Black}
	white = &Player{name: whiteName, color: White}
	black.opponent = white
	white.opponent = black
	return black, white
}

func (p *Player) Name() string { return p.name }

func (p *Player) Color() Color { return p.color }

// Captures returns the number of opposing stones this player has captured.
func (p *Player) Captures() int { return p.captures }

func (p *Player) Opponent() *Player { return p.opponent }

func (p *Player) String() string {
	return p.name
}

func (p *Player) addCaptures(n int) { p.captures += n }

func (p *Player) setCaptures(n int) { p.captures = n }
