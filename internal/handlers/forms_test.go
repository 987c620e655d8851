package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austintylerallen/civicstack/internal/models"
)

func submitLeaveRequest(t *testing.T, env *testEnv, token string) models.FormRequest {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/form-requests", token, map[string]any{
		"type":       "Leave Request",
		"department": "Human Resources",
		"fields": map[string]string{
			"startDate": "2026-09-01",
			"endDate":   "2026-09-05",
			"reason":    "vacation",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var form models.FormRequest
	decode(t, rec, &form)
	return form
}

func TestSubmitFormSeedsApprovalLog(t *testing.T) {
	env := newTestEnv(t)
	form := submitLeaveRequest(t, env, env.tokenFor(t, env.staff))

	assert.Equal(t, models.FormPending, form.Status)
	require.Len(t, form.ApprovalLog, 1)
	assert.Equal(t, "Submitted", form.ApprovalLog[0].Status)
}

func TestFormStatusAppendsExactlyOneLogEntry(t *testing.T) {
	env := newTestEnv(t)
	form := submitLeaveRequest(t, env, env.tokenFor(t, env.staff))
	adminToken := env.tokenFor(t, env.admin)

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/form-requests/%d/status", form.ID), adminToken,
		map[string]string{"status": "Approved"})
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.ApprovalEntry
	require.NoError(t, env.db.Where("form_request_id = ?", form.ID).Order("id asc").Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Equal(t, "Approved", entries[1].Status)

	var got models.FormRequest
	require.NoError(t, env.db.First(&got, form.ID).Error)
	assert.Equal(t, models.FormApproved, got.Status)
}

func TestFormStatusRollsBackWhenLogAppendFails(t *testing.T) {
	env := newTestEnv(t)
	form := submitLeaveRequest(t, env, env.tokenFor(t, env.staff))

	// break the log table so the append fails after the status write
	require.NoError(t, env.db.Migrator().DropTable(&models.ApprovalEntry{}))

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/form-requests/%d/status", form.ID),
		env.tokenFor(t, env.admin), map[string]string{"status": "Approved"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// the status change rolled back with the failed append
	var got models.FormRequest
	require.NoError(t, env.db.First(&got, form.ID).Error)
	assert.Equal(t, models.FormPending, got.Status)
}

func TestFormStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	form := submitLeaveRequest(t, env, env.tokenFor(t, env.staff))

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/form-requests/%d/status", form.ID),
		env.tokenFor(t, env.admin), map[string]string{"status": "Maybe"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, int64(1), count[models.ApprovalEntry](t, env.db))
}

func TestFormStatusRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	staffToken := env.tokenFor(t, env.staff)
	form := submitLeaveRequest(t, env, staffToken)

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/form-requests/%d/status", form.ID), staffToken,
		map[string]string{"status": "Approved"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitFormValidatesTypeAndFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, env.staff)

	rec := env.do(t, http.MethodPost, "/form-requests", token, map[string]any{
		"type":       "Unknown Form",
		"department": "Human Resources",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Leave Request without its required fields
	rec = env.do(t, http.MethodPost, "/form-requests", token, map[string]any{
		"type":       "Leave Request",
		"department": "Human Resources",
		"fields":     map[string]string{"startDate": "2026-09-01"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, count[models.FormRequest](t, env.db))
}

func TestStaffSeesOnlyOwnForms(t *testing.T) {
	env := newTestEnv(t)
	other := seedUser(t, env.db, "other@civicstack.gov", "Olive Other", models.RoleStaff)

	submitLeaveRequest(t, env, env.tokenFor(t, env.staff))
	submitLeaveRequest(t, env, env.tokenFor(t, other))

	var forms []models.FormRequest
	rec := env.do(t, http.MethodGet, "/form-requests", env.tokenFor(t, env.staff), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &forms)
	require.Len(t, forms, 1)
	assert.Equal(t, env.staff.ID, forms[0].SubmittedByID)

	rec = env.do(t, http.MethodGet, "/form-requests", env.tokenFor(t, env.admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &forms)
	assert.Len(t, forms, 2)
}

func TestFormPDF(t *testing.T) {
	env := newTestEnv(t)
	form := submitLeaveRequest(t, env, env.tokenFor(t, env.staff))

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/form-requests/%d/pdf", form.ID),
		env.tokenFor(t, env.staff), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, len(rec.Body.Bytes()) > 0)
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestAcknowledgeForm(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, env.staff)
	form := submitLeaveRequest(t, env, token)

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/form-requests/%d/acknowledge", form.ID), token,
		map[string]bool{"acknowledged": true})
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.FormRequest
	require.NoError(t, env.db.First(&got, form.ID).Error)
	assert.True(t, got.Acknowledged)
}
