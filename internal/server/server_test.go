package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Morris-Command-Center/agentic-skill-tree/internal/domain"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/repository"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/service"
	"github.com/Morris-Command-Center/agentic-skill-tree/internal/testutil"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.NewTestDB(t)

	cat := testutil.NewTestCatalog(t,
		[]domain.SkillBranch{
			testutil.NewTestBranch("agentic",
				testutil.NewTestSkill("test-writing"),
				testutil.NewTestSkill("shell-fu"),
			),
		},
		[]domain.Challenge{
			testutil.NewTestChallenge("ch-60", 60, []string{"test-writing"}),
			testutil.NewTestChallenge("ch-120", 120, []string{"shell-fu"}),
		},
		testutil.NewTestAchievement("first-steps"),
	)

	progress := repository.NewSQLiteProgressRepo(db)
	completions := repository.NewSQLiteCompletionRepo(db)
	achievements := repository.NewSQLiteAchievementRepo(db)

	srv := New(cat,
		service.NewProgressionService(cat, progress, completions, achievements),
		service.NewStatsService(cat, progress, completions),
		nil,
	)
	return srv.App()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get(fiber.HeaderContentType) != fiber.MIMETextPlainCharsetUTF8 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestGetSkills(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/skills", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	branches := body["branches"].([]any)
	require.Len(t, branches, 1)
	branch := branches[0].(map[string]any)
	assert.Equal(t, "agentic", branch["id"])
	assert.Len(t, branch["skills"], 2)
}

func TestGetChallenges(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/challenges", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["challenges"], 2)
}

func TestGetChallengesForSkill(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/challenges/test-writing", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	challenges := body["challenges"].([]any)
	require.Len(t, challenges, 1)
	assert.Equal(t, "ch-60", challenges[0].(map[string]any)["id"])
}

func TestGetChallengesForSkill_UnknownSkill(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/challenges/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body["detail"], "nope")
}

func TestPostComplete(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{
		"challenge_id": "ch-60",
		"self_rating":  4,
		"notes":        "smooth",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(60), body["xp_earned"])
	assert.Equal(t, float64(1), body["completion_id"])
}

func TestPostComplete_UnknownChallenge(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{
		"challenge_id": "nope",
		"self_rating":  3,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body["detail"], "nope")
}

func TestPostComplete_InvalidRating(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{
		"challenge_id": "ch-60",
		"self_rating":  9,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["detail"], "self_rating")
}

func TestPostComplete_MalformedBody(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/complete", bytes.NewReader([]byte("{not json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProgress_ReflectsCompletions(t *testing.T) {
	app := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{
		"challenge_id": "ch-120",
		"self_rating":  5,
	})

	resp, body := doJSON(t, app, http.MethodGet, "/api/progress", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(120), body["total_xp"])
	assert.Equal(t, float64(1), body["challenges_completed"])

	skills := body["skills"].(map[string]any)
	shellFu := skills["shell-fu"].(map[string]any)
	assert.Equal(t, float64(120), shellFu["current_xp"])
	assert.Equal(t, "available", shellFu["level"])
}

func TestGetSkillProgress_DefaultForUntouchedSkill(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/progress/test-writing", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["current_xp"])
	assert.Equal(t, "locked", body["level"])
	assert.Equal(t, "red", body["confidence"])
}

func TestGetSkillProgress_UnknownSkill(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/progress/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostConfidence(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/confidence", map[string]any{
		"skill_id":   "test-writing",
		"confidence": "green",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	_, progress := doJSON(t, app, http.MethodGet, "/api/progress/test-writing", nil)
	assert.Equal(t, "green", progress["confidence"])
}

func TestPostConfidence_InvalidValue(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/confidence", map[string]any{
		"skill_id":   "test-writing",
		"confidence": "purple",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCompletions_FilterByChallenge(t *testing.T) {
	app := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{"challenge_id": "ch-60", "self_rating": 3})
	_, _ = doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{"challenge_id": "ch-120", "self_rating": 3})

	resp, body := doJSON(t, app, http.MethodGet, "/api/completions?challenge_id=ch-60", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	completions := body["completions"].([]any)
	require.Len(t, completions, 1)
	assert.Equal(t, "ch-60", completions[0].(map[string]any)["challenge_id"])
}

func TestGetCompletions_EmptyIsListNotNull(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/completions", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	completions, ok := body["completions"].([]any)
	require.True(t, ok, "completions must be a JSON array")
	assert.Empty(t, completions)
}

func TestGetStats(t *testing.T) {
	app := setupApp(t)

	_, _ = doJSON(t, app, http.MethodPost, "/api/complete", map[string]any{"challenge_id": "ch-60", "self_rating": 3})

	resp, body := doJSON(t, app, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(60), body["total_xp"])

	branches := body["branches"].(map[string]any)
	agentic := branches["agentic"].(map[string]any)
	assert.Equal(t, float64(2), agentic["total_skills"])
	assert.Equal(t, float64(60), agentic["total_xp"])
}

func TestGetLearn_UnknownSkill(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/learn/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body["detail"], "nope")
}

func TestAchievements_UnlockFlow(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/achievements", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := body["achievements"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, false, list[0].(map[string]any)["unlocked"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/achievements/first-steps/unlock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	_, body = doJSON(t, app, http.MethodGet, "/api/achievements", nil)
	list = body["achievements"].([]any)
	first := list[0].(map[string]any)
	assert.Equal(t, true, first["unlocked"])
	assert.NotEmpty(t, first["unlocked_at"])
}

func TestUnlockAchievement_UnknownID(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/achievements/nope/unlock", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
