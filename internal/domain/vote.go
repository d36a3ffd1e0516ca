package domain

// VoteDirection is a user's vote on a story. The zero value means no vote
// has been cast yet.
type VoteDirection string

const (
	VoteNone VoteDirection = ""
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func ValidVoteDirection(direction VoteDirection) bool {
	return direction == VoteUp || direction == VoteDown
}

// VoteDelta returns the points adjustment when a user who previously voted
// `previous` on a story now votes `next`.
//
// Repeating the same direction is a no-op. Switching direction undoes the
// earlier vote before applying the new one, so the net adjustment is ±2.
func VoteDelta(previous, next VoteDirection) int {
	if previous == next {
		return 0
	}

	delta := 1
	if next == VoteDown {
		delta = -1
	}

	switch previous {
	case VoteUp:
		delta--
	case VoteDown:
		delta++
	}

	return delta
}
