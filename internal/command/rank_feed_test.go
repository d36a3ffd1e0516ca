package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foryou-news/foryou-feed/internal/datasources/mocks"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

func TestRankFeed_Execute(t *testing.T) {
	candidates := []domain.Story{
		{ID: 1, Points: 5},
		{ID: 2, Points: 10},
		{ID: 3, Points: 2},
	}

	cases := []struct {
		name             string
		configured       bool
		result           domain.RankingResult
		rankErr          error
		skipRank         bool
		wantIDs          []int
		wantPersonalized bool
	}{
		{
			name:             "unconfigured_falls_back_to_points_order",
			configured:       false,
			skipRank:         true,
			wantIDs:          []int{2, 1, 3},
			wantPersonalized: false,
		},
		{
			name:       "success_applies_response_order",
			configured: true,
			result: domain.RankingResult{
				IDs:    []string{"2", "1"},
				Scores: []float64{0.9, 0.5},
			},
			wantIDs:          []int{2, 1, 3},
			wantPersonalized: true,
		},
		{
			name:             "remote_error_falls_back_to_points_order",
			configured:       true,
			rankErr:          errors.New("connection refused"),
			wantIDs:          []int{2, 1, 3},
			wantPersonalized: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranker := mocks.NewMockRankingService(t)
			ranker.EXPECT().Configured().Return(tc.configured)
			if !tc.skipRank {
				ranker.EXPECT().
					RankStories(mock.Anything, "user1", len(candidates)).
					Return(tc.result, tc.rankErr)
			}

			cmd := &RankFeed{Ranker: ranker}
			ctx := domain.ContextWithLogger(context.Background(), testLogger())

			ranked, personalized := cmd.Execute(ctx, "user1", candidates)

			require.Len(t, ranked, len(candidates))
			gotIDs := make([]int, len(ranked))
			for i, story := range ranked {
				gotIDs[i] = story.ID
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
			assert.Equal(t, tc.wantPersonalized, personalized)

			if !personalized {
				for _, story := range ranked {
					assert.Nil(t, story.RankScore)
				}
			}
		})
	}
}

func TestRankFeed_Execute_AnnotatesScores(t *testing.T) {
	candidates := []domain.Story{{ID: 1}, {ID: 2}, {ID: 3}}

	ranker := mocks.NewMockRankingService(t)
	ranker.EXPECT().Configured().Return(true)
	ranker.EXPECT().
		RankStories(mock.Anything, "user1", 3).
		Return(domain.RankingResult{
			IDs:    []string{"2", "1"},
			Scores: []float64{0.9, 0.5},
		}, nil)

	cmd := &RankFeed{Ranker: ranker}
	ctx := domain.ContextWithLogger(context.Background(), testLogger())

	ranked, personalized := cmd.Execute(ctx, "user1", candidates)

	require.True(t, personalized)
	require.Len(t, ranked, 3)
	require.NotNil(t, ranked[0].RankScore)
	assert.Equal(t, 0.9, *ranked[0].RankScore)
	require.NotNil(t, ranked[1].RankScore)
	assert.Equal(t, 0.5, *ranked[1].RankScore)
	require.NotNil(t, ranked[2].RankScore)
	assert.Equal(t, domain.DefaultUnrankedScore, *ranked[2].RankScore)
}

func TestRankFeed_Execute_EmptyCandidates(t *testing.T) {
	ranker := mocks.NewMockRankingService(t)

	cmd := &RankFeed{Ranker: ranker}
	ctx := domain.ContextWithLogger(context.Background(), testLogger())

	ranked, personalized := cmd.Execute(ctx, "user1", nil)

	assert.Empty(t, ranked)
	assert.False(t, personalized)
}
