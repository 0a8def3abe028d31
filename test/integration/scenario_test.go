package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"workzo_backend/internal/auth"
	"workzo_backend/internal/models"
	"workzo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// registerVerifyLogin drives a fresh account through the whole onboarding
// surface: register, follow the verification link, log in.
func registerVerifyLogin(t *testing.T, ts *helpers.TestServer, tx *gorm.DB, name, role string) (string, string) {
	t.Helper()

	email := uniqueEmail("lifecycle")
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, res.Code, body)

	var user models.User
	require.NoError(t, tx.Where("email = ?", email).First(&user).Error)

	verifyToken, err := auth.GenerateVerificationToken(user.ID)
	require.NoError(t, err)
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/auth/verify-email/"+verifyToken, "", nil)
	require.Equal(t, http.StatusFound, res.Code)
	require.Contains(t, res.Header().Get("Location"), "status=success")

	res, body = ts.SendRequest(t, tx, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.Code, body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	return loginResponse.Token, user.ID
}

func TestFullJobLifecycle(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	employerToken, _ := registerVerifyLogin(t, ts, tx, "Lifecycle Employer", "EMPLOYER")
	workerToken, workerID := registerVerifyLogin(t, ts, tx, "Lifecycle Worker", "WORKER")

	// Employer posts a single-seat job.
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/jobs", employerToken, map[string]interface{}{
		"title":       "Move a piano",
		"description": "Third floor, no elevator",
		"category":    "moving",
		"location":    "Almaty",
		"budget":      20000.0,
		"memberLimit": 1,
	})
	require.Equal(t, http.StatusCreated, res.Code, body)
	var job models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	// Worker finds it in the open listing and applies.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/jobs", workerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	require.Contains(t, body, job.ID)

	res, body = ts.SendRequest(t, tx, http.MethodPost, "/api/applications/"+job.ID, workerToken, nil)
	require.Equal(t, http.StatusCreated, res.Code, body)
	var application models.Application
	require.NoError(t, json.Unmarshal([]byte(body), &application))

	// Employer reviews applicants and accepts.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/applications/job/"+job.ID, employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	require.Contains(t, body, application.ID)

	res, body = ts.SendRequest(t, tx, http.MethodPatch, "/api/applications/accept/"+application.ID, employerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	// The single seat is filled, so the job leaves the open listing.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/jobs", workerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.NotContains(t, body, job.ID)

	// Both sides see the work in progress.
	var status models.JobStatus
	require.NoError(t, tx.Where("job_id = ? AND worker_id = ?", job.ID, workerID).First(&status).Error)
	require.Equal(t, models.WorkInProgress, status.Status)

	// Employer completes with a rating.
	res, body = ts.SendRequest(t, tx, http.MethodPatch, "/api/job-status/"+status.ID+"/complete", employerToken, map[string]interface{}{
		"rating": 5,
		"review": "Piano arrived intact",
	})
	require.Equal(t, http.StatusOK, res.Code, body)

	// Reputation and history updated end to end.
	var worker models.User
	require.NoError(t, tx.First(&worker, "id = ?", workerID).Error)
	assert.Equal(t, 5.0, worker.Rating)
	assert.Equal(t, 1, worker.ReviewCount)
	assert.Equal(t, 1, worker.CompletedJobs)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/reviews/"+workerID, "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Contains(t, body, "Piano arrived intact")

	// Worker's feed carries the acceptance.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/notifications", workerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	assert.Contains(t, body, models.NotificationTypeJobAccepted)
}
