package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foryou-news/foryou-feed/internal/datasources/memory"
)

func TestStoryVote_ServeHTTP(t *testing.T) {
	cases := []struct {
		name         string
		setupContext func(r *http.Request) *http.Request
		vars         map[string]string
		wantStatus   int
		wantDelta    int
	}{
		{
			name:         "first_upvote",
			setupContext: testContextWithUserID("user1"),
			vars:         map[string]string{"story_id": "42", "direction": "up"},
			wantStatus:   http.StatusOK,
			wantDelta:    1,
		},
		{
			name:         "first_downvote",
			setupContext: testContextWithUserID("user1"),
			vars:         map[string]string{"story_id": "42", "direction": "down"},
			wantStatus:   http.StatusOK,
			wantDelta:    -1,
		},
		{
			name:         "unauthenticated",
			setupContext: testContext(),
			vars:         map[string]string{"story_id": "42", "direction": "up"},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "bad_story_id",
			setupContext: testContextWithUserID("user1"),
			vars:         map[string]string{"story_id": "abc", "direction": "up"},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "bad_direction",
			setupContext: testContextWithUserID("user1"),
			vars:         map[string]string{"story_id": "42", "direction": "sideways"},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := StoryVote{Votes: memory.NewVoteLedger()}

			r := httptest.NewRequest(http.MethodPost, "/v1/stories/42/vote/up", nil)
			r = mux.SetURLVars(tc.setupContext(r), tc.vars)
			w := httptest.NewRecorder()

			c.ServeHTTP(w, r)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var resp StoryVoteResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, 42, resp.StoryID)
			assert.Equal(t, tc.wantDelta, resp.PointsDelta)
		})
	}
}

func TestStoryVote_SwitchAndRepeat(t *testing.T) {
	ledger := memory.NewVoteLedger()
	c := StoryVote{Votes: ledger}

	vote := func(direction string) StoryVoteResponse {
		r := httptest.NewRequest(http.MethodPost, "/v1/stories/7/vote/"+direction, nil)
		r = mux.SetURLVars(testContextWithUserID("user1")(r), map[string]string{
			"story_id":  "7",
			"direction": direction,
		})
		w := httptest.NewRecorder()
		c.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var resp StoryVoteResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		return resp
	}

	assert.Equal(t, 1, vote("up").PointsDelta)
	assert.Equal(t, 0, vote("up").PointsDelta)
	assert.Equal(t, -2, vote("down").PointsDelta)
	assert.Equal(t, 0, vote("down").PointsDelta)
	assert.Equal(t, 2, vote("up").PointsDelta)
}
