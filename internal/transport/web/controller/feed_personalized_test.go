package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foryou-news/foryou-feed/internal/command"
	"github.com/foryou-news/foryou-feed/internal/datasources/mocks"
	"github.com/foryou-news/foryou-feed/internal/domain"
)

func TestFeedPersonalized_ServeHTTP(t *testing.T) {
	body := `{"stories": [
		{"id": 1, "title": "First", "points": 10},
		{"id": 2, "title": "Second", "points": 99}
	]}`

	cases := []struct {
		name             string
		setupContext     func(r *http.Request) *http.Request
		body             string
		configured       bool
		rankResult       domain.RankingResult
		rankErr          error
		skipRanker       bool
		wantStatus       int
		wantIDs          []int
		wantPersonalized bool
	}{
		{
			name:         "remote_ranking_applied",
			setupContext: testContextWithUserID("user1"),
			body:         body,
			configured:   true,
			rankResult: domain.RankingResult{
				IDs:    []string{"1", "2"},
				Scores: []float64{0.9, 0.4},
			},
			wantStatus:       http.StatusOK,
			wantIDs:          []int{1, 2},
			wantPersonalized: true,
		},
		{
			name:             "fallback_on_remote_error",
			setupContext:     testContextWithUserID("user1"),
			body:             body,
			configured:       true,
			rankErr:          errors.New("remote unavailable"),
			wantStatus:       http.StatusOK,
			wantIDs:          []int{2, 1},
			wantPersonalized: false,
		},
		{
			name:             "fallback_when_unconfigured",
			setupContext:     testContextWithUserID("user1"),
			body:             body,
			configured:       false,
			wantStatus:       http.StatusOK,
			wantIDs:          []int{2, 1},
			wantPersonalized: false,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			body:         body,
			skipRanker:   true,
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "malformed_body",
			setupContext: testContextWithUserID("user1"),
			body:         `{"stories": `,
			skipRanker:   true,
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranker := mocks.NewMockRankingService(t)
			if !tc.skipRanker {
				ranker.EXPECT().Configured().Return(tc.configured)
				if tc.configured {
					ranker.EXPECT().
						RankStories(mock.Anything, "user1", 2).
						Return(tc.rankResult, tc.rankErr)
				}
			}

			c := FeedPersonalized{
				Command: &command.RankFeed{Ranker: ranker},
			}

			r := httptest.NewRequest(http.MethodPost, "/v1/feed/personalized", strings.NewReader(tc.body))
			r = tc.setupContext(r)
			w := httptest.NewRecorder()

			c.ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp FeedPersonalizedResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

			gotIDs := make([]int, 0, len(resp.Stories))
			for _, s := range resp.Stories {
				gotIDs = append(gotIDs, s.ID)
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
			assert.Equal(t, tc.wantPersonalized, resp.Personalized)
		})
	}
}
