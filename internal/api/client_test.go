package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(zap.NewNop(), srv.URL)
}

func TestClient_Questions(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assessment/questions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "text": "Q1", "category": "Leadership"},
			{"id": 2, "text": "Q2", "category": "Teamwork"}
		]`))
	})

	questions, err := c.Questions(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, "Teamwork", questions[1].Category)
}

func TestClient_Questions_TestModePath(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})

	_, err := c.Questions(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "/assessment/questions/test", gotPath)
}

func TestClient_SubmitAssessment(t *testing.T) {
	var gotUserID string
	var gotBody map[string]map[string]int
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/assessment/submit", r.URL.Path)
		gotUserID = r.Header.Get("X-User-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"user_id": "u1",
			"submitted_at": "2026-01-01T00:00:00Z",
			"category_scores": [{"category": "Leadership", "score": 4.5, "question_count": 8}],
			"ai_summary": "summary",
			"top_strengths": ["Leadership"],
			"growth_recommendation": "rec"
		}`))
	})

	result, err := c.SubmitAssessment(context.Background(), map[int]int{1: 5, 2: 4}, false)
	require.NoError(t, err)
	assert.NotEmpty(t, gotUserID)
	assert.Equal(t, map[string]int{"1": 5, "2": 4}, gotBody["answers"])
	assert.Equal(t, "summary", result.AISummary)
	assert.Equal(t, []string{"Leadership"}, result.TopStrengths)
	assert.Equal(t, "rec", result.GrowthRecommendation)
}

func TestClient_SubmitAssessment_FreshIDPerSubmission(t *testing.T) {
	ids := make(map[string]bool)
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		ids[r.Header.Get("X-User-ID")] = true
		w.Write([]byte(`{"ai_summary": "s", "top_strengths": [], "growth_recommendation": "g"}`))
	})

	for i := 0; i < 3; i++ {
		_, err := c.SubmitAssessment(context.Background(), map[int]int{1: 3}, true)
		require.NoError(t, err)
	}
	assert.Len(t, ids, 3, "each submission must carry a brand-new user id")
}

func TestClient_SubmitAssessment_BadStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.SubmitAssessment(context.Background(), map[int]int{1: 3}, false)
	assert.Error(t, err)
}

func TestClient_SubmitAssessment_MalformedBody(t *testing.T) {
	// Missing required AI fields fails schema validation and must be
	// reported as an error so the caller can degrade to local results.
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user_id": "u1"}`))
	})

	_, err := c.SubmitAssessment(context.Background(), map[int]int{1: 3}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed assessment result")
}

func TestClient_Me_Normalizes(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees/me", r.URL.Path)
		w.Write([]byte(`{
			"id": 7,
			"name": "Dana Levi",
			"title": "Backend Engineer",
			"metrics": {"data_quality": 250},
			"hard_skills": [{"skill": "Java", "level": 4}],
			"soft_skills": ["Communication"],
			"liked_positions": [{"position_id": 3, "position_name": "Team Lead", "score": "87"}]
		}`))
	})

	e, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7", e.ID, "numeric id coerced to string")
	assert.Equal(t, "Dana Levi", e.Name)
	assert.Equal(t, 100.0, e.DataQuality, "percentage clamped to [0,100]")
	require.Len(t, e.HardSkills, 1)
	assert.Equal(t, Skill{Name: "Java", Level: 4}, e.HardSkills[0])
	require.Len(t, e.LikedPositions, 1)
	assert.Equal(t, "3", e.LikedPositions[0].PositionID)
	assert.Equal(t, 87.0, e.LikedPositions[0].Score)
}

func TestClient_Positions(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "p1", "title": "Dev Team Lead", "category": "Technology", "match_percentage": 92, "is_open": true},
			{"title": "Budget Manager", "match_percentage": "81.5"}
		]`))
	})

	positions, err := c.Positions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "p1", positions[0].ID)
	assert.Equal(t, 92.0, positions[0].MatchPercent)
	assert.True(t, positions[0].IsOpen)
	assert.Equal(t, "2", positions[1].ID, "missing id falls back to index")
	assert.Equal(t, 81.5, positions[1].MatchPercent, "string score coerced")
}

func TestClient_TopMatches(t *testing.T) {
	var gotQuery string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/smart/positions/top", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[
			{"position_id": 1, "name": "Dev Team Lead", "score": 0.92},
			{"position_id": 2, "name": "Budget Manager", "score": 81}
		]`))
	})

	matches, err := c.TopMatches(context.Background(), "7", 3)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "candidate_id=7")
	assert.Contains(t, gotQuery, "limit=3")
	require.Len(t, matches, 2)
	assert.Equal(t, 92.0, matches[0].Score, "similarity in [0,1] converted to percent")
	assert.Equal(t, 81.0, matches[1].Score, "plain percentage untouched")
}

func TestClient_UpdateLikedPositions(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := c.UpdateLikedPositions(context.Background(), "7", []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, "/employees/7/positions", gotPath)
	assert.Equal(t, []any{"p1", "p2"}, gotBody["liked_positions"])
}

func TestClient_StarPosition(t *testing.T) {
	var gotBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	})

	err := c.StarPosition(context.Background(), "7", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", gotBody["star_position"])
}
