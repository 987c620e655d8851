package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austintylerallen/civicstack/internal/models"
)

func createRecruitment(t *testing.T, env *testEnv) models.RecruitmentRequest {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/recruitment", env.tokenFor(t, env.admin), map[string]string{
		"title":         "Code Enforcement Officer",
		"department":    "Community Development",
		"justification": "Backlog of open cases.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var out models.RecruitmentRequest
	decode(t, rec, &out)
	return out
}

func TestRecruitmentCreateRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/recruitment", env.tokenFor(t, env.staff), map[string]string{
		"title":         "x",
		"department":    "y",
		"justification": "z",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, count[models.RecruitmentRequest](t, env.db))

	created := createRecruitment(t, env)
	assert.Equal(t, models.RecruitmentRequested, created.Status)
	assert.Equal(t, env.admin.ID, created.CreatedByID)
}

func TestRecruitmentStatusEnumEnforced(t *testing.T) {
	env := newTestEnv(t)
	created := createRecruitment(t, env)
	path := fmt.Sprintf("/recruitment/%d/status", created.ID)
	adminToken := env.tokenFor(t, env.admin)

	rec := env.do(t, http.MethodPatch, path, env.tokenFor(t, env.staff),
		map[string]string{"status": "In Hiring"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPatch, path, adminToken, map[string]string{"status": "In Hiring"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPatch, path, adminToken, map[string]string{"status": "Open"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got models.RecruitmentRequest
	require.NoError(t, env.db.First(&got, created.ID).Error)
	assert.Equal(t, models.RecruitmentInHiring, got.Status)
}

func TestRecruitmentNotesAndDelete(t *testing.T) {
	env := newTestEnv(t)
	created := createRecruitment(t, env)

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/recruitment/%d/notes", created.ID),
		env.tokenFor(t, env.admin), map[string]string{"notes": "panel scheduled"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.RecruitmentRequest
	require.NoError(t, env.db.First(&got, created.ID).Error)
	assert.Equal(t, "panel scheduled", got.Notes)

	path := fmt.Sprintf("/recruitment/%d", created.ID)
	rec = env.do(t, http.MethodDelete, path, env.tokenFor(t, env.staff), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodDelete, path, env.tokenFor(t, env.admin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, count[models.RecruitmentRequest](t, env.db))
}

func TestRecruitmentStaffSeesOnlyOwn(t *testing.T) {
	env := newTestEnv(t)
	createRecruitment(t, env)

	mine := models.RecruitmentRequest{
		Title:         "Records Clerk",
		Department:    "Assessor",
		Justification: "Retirement backfill.",
		Status:        models.RecruitmentRequested,
		CreatedByID:   env.staff.ID,
	}
	require.NoError(t, env.db.Create(&mine).Error)

	var recs []models.RecruitmentRequest
	rec := env.do(t, http.MethodGet, "/recruitment", env.tokenFor(t, env.staff), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, mine.ID, recs[0].ID)

	rec = env.do(t, http.MethodGet, "/recruitment", env.tokenFor(t, env.admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &recs)
	assert.Len(t, recs, 2)
}
