package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/foryou-news/foryou-feed/internal/datasources"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

var _ datasources.VoteRecorder = (*VoteLedger)(nil)

// VoteLedger latches each user's vote direction per story. Repeating the
// same direction is a no-op; switching direction undoes the previous vote
// before applying the new one.
type VoteLedger struct {
	mu    sync.Mutex
	votes map[string]domain.VoteDirection
}

func NewVoteLedger() *VoteLedger {
	return &VoteLedger{
		votes: make(map[string]domain.VoteDirection),
	}
}

func voteKey(userID string, storyID int) string {
	return fmt.Sprintf("%s:%d", userID, storyID)
}

func (l *VoteLedger) RecordVote(
	_ context.Context,
	userID string,
	storyID int,
	direction domain.VoteDirection,
) (int, error) {
	if !domain.ValidVoteDirection(direction) {
		return 0, fmt.Errorf("invalid vote direction [%s]", direction)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := voteKey(userID, storyID)
	delta := domain.VoteDelta(l.votes[key], direction)
	l.votes[key] = direction

	return delta, nil
}
