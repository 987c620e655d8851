package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/austintylerallen/civicstack/internal/models"
)

func createWorkOrder(t *testing.T, env *testEnv, token string) models.WorkOrder {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/work-orders", token, map[string]string{
		"title":      "Replace signage",
		"department": "Road Department",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order models.WorkOrder
	decode(t, rec, &order)
	return order
}

func TestCreateWorkOrderDefaults(t *testing.T) {
	env := newTestEnv(t)
	order := createWorkOrder(t, env, env.tokenFor(t, env.staff))

	assert.Equal(t, models.WorkOrderNew, order.Status)
	assert.Equal(t, models.PriorityMedium, order.Priority)
	assert.Equal(t, env.staff.ID, order.RequestedByID)
}

func TestWorkOrderStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, env.staff)
	order := createWorkOrder(t, env, token)

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/work-orders/%d/status", order.ID), token,
		map[string]string{"status": "Completed"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.WorkOrder
	require.NoError(t, env.db.First(&got, order.ID).Error)
	assert.Equal(t, models.WorkOrderCompleted, got.Status)

	rec = env.do(t, http.MethodPatch, fmt.Sprintf("/work-orders/%d/status", order.ID), token,
		map[string]string{"status": "Done"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteWorkOrderAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	order := createWorkOrder(t, env, env.tokenFor(t, env.staff))
	path := fmt.Sprintf("/work-orders/%d", order.ID)

	rec := env.do(t, http.MethodDelete, path, env.tokenFor(t, env.staff), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, int64(1), count[models.WorkOrder](t, env.db))

	rec = env.do(t, http.MethodDelete, path, env.tokenFor(t, env.admin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, count[models.WorkOrder](t, env.db))
}
