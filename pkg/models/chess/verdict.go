package chess

type Verdict int8

const (
	Undecided Verdict = iota
	Player1Win
	Player2Win
	Draw
)

func (v Verdict) String() string {
	switch v {
	case Player1Win:
		return "Player1 Win!"
	case Player2Win:
		return "Player2 Win!"
	case Draw:
		return "Draw!"
	}
	return "Undecided"
}

// Winner returns the winning player, or false for a draw or an open game.
func (v Verdict) Winner() (Turn, bool) {
	switch v {
	case Player1Win:
		return Player1, true
	case Player2Win:
		return Player2, true
	}
	return NoPlayer, false
}

// Judge compares final scores. It does not know whether the game is over.
func Judge(player1Score, player2Score int) Verdict {
	if player1Score > player2Score {
		return Player1Win
	} else if player1Score < player2Score {
		return Player2Win
	}
	return Draw
}
