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

func TestNotificationFeed(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts, tx)
	job := helpers.CreateJob(t, tx, employer.ID, 2)

	// Two applications, two feed entries for the employer.
	for i := 0; i < 2; i++ {
		workerToken, _ := helpers.CreateAndLoginWorker(t, ts, tx)
		res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/applications/"+job.ID, workerToken, nil)
		require.Equal(t, http.StatusCreated, res.Code, body)
	}

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/notifications", employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	var feed []models.Notification
	require.NoError(t, json.Unmarshal([]byte(body), &feed))
	require.Len(t, feed, 2)
	for _, n := range feed {
		assert.Equal(t, employer.ID, n.UserID)
		assert.Equal(t, models.NotificationTypeNewApplication, n.Type)
		assert.False(t, n.Read)
	}

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/notifications/unread-count", employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	var unread struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &unread))
	assert.EqualValues(t, 2, unread.Count)

	res, body = ts.SendRequest(t, tx, http.MethodPatch, "/api/notifications/mark-read", employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Contains(t, body, `"success":true`)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/notifications/unread-count", employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	require.NoError(t, json.Unmarshal([]byte(body), &unread))
	assert.Zero(t, unread.Count)
}

func TestNotificationsAreScopedToUser(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts, tx)
	job := helpers.CreateJob(t, tx, employer.ID, 1)
	workerToken, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/applications/"+job.ID, workerToken, nil)
	require.Equal(t, http.StatusCreated, res.Code)

	// The applying worker has no entry; only the employer was notified.
	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/notifications", workerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	var feed []models.Notification
	require.NoError(t, json.Unmarshal([]byte(body), &feed))
	assert.Empty(t, feed)
}

func TestNotificationsRequireAuth(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}
