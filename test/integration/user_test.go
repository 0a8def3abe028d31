package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"workzo_backend/internal/models"
	"workzo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	var me models.User
	require.NoError(t, json.Unmarshal([]byte(body), &me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, user.Email, me.Email)
	assert.NotContains(t, body, "passwordHash", "credentials never leave the API")
	assert.NotContains(t, body, user.PasswordHash)
}

func TestUpdateProfilePartial(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPut, "/api/users/me", token, map[string]interface{}{
		"location": "Shymkent",
		"skills":   []string{"plumbing", "painting"},
		"age":      28,
	})
	require.Equal(t, http.StatusOK, res.Code, body)

	var updated models.User
	require.NoError(t, tx.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, "Shymkent", updated.Location)
	assert.Equal(t, []string{"plumbing", "painting"}, []string(updated.Skills))
	require.NotNil(t, updated.Age)
	assert.Equal(t, 28, *updated.Age)
	// Fields not sent stay untouched.
	assert.Equal(t, user.Name, updated.Name)

	// Reputation is not client-writable: unknown fields are ignored.
	res, body = ts.SendRequest(t, tx, http.MethodPut, "/api/users/me", token, map[string]interface{}{
		"rating": 5.0,
	})
	require.Equal(t, http.StatusOK, res.Code, body)
	require.NoError(t, tx.First(&updated, "id = ?", user.ID).Error)
	assert.Zero(t, updated.Rating)
}

func TestUpdateProfileInvalidAge(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPut, "/api/users/me", token, map[string]interface{}{
		"age": 7,
	})
	assert.Equal(t, http.StatusBadRequest, res.Code, body)
	assert.Contains(t, body, "VALIDATION_FAILED")
}

func TestGetWorkerProfile(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts, tx)
	_, worker := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/users/worker/"+worker.ID, employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	var profile models.User
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, worker.ID, profile.ID)

	// Employers are not browsable through the worker endpoint.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/users/worker/"+employer.ID, employerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.Code, body)
}
