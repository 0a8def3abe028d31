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

func TestCreateJob(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, employer := helpers.CreateAndLoginEmployer(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"title":       "Warehouse loader",
		"description": "Unload trucks over the weekend",
		"category":    "logistics",
		"location":    "Astana",
		"budget":      15000.0,
		"memberLimit": 3,
	})
	require.Equal(t, http.StatusCreated, res.Code, body)

	var job models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	assert.Equal(t, models.JobOpen, job.Status)
	assert.Equal(t, employer.ID, job.EmployerID)
	assert.Equal(t, 3, job.MemberLimit)
}

func TestCreateJobDefaultsMemberLimit(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, _ := helpers.CreateAndLoginEmployer(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"title":       "Single seat job",
		"description": "One worker needed",
		"category":    "cleaning",
		"location":    "Almaty",
	})
	require.Equal(t, http.StatusCreated, res.Code, body)

	var job models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	assert.Equal(t, 1, job.MemberLimit)
}

func TestCreateJobForbiddenForWorker(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"title":       "Not allowed",
		"description": "Workers cannot post",
		"category":    "misc",
		"location":    "Almaty",
	})
	assert.Equal(t, http.StatusForbidden, res.Code, body)
}

func TestCreateJobRequiresAuth(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/jobs", "", map[string]interface{}{
		"title": "No token",
	})
	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestListOpenJobsExcludesClosed(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts, tx)
	open := helpers.CreateJob(t, tx, employer.ID, 2)
	closed := helpers.CreateJob(t, tx, employer.ID, 1)
	require.NoError(t, tx.Model(closed).Update("status", models.JobClosed).Error)

	workerToken, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/jobs", workerToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	var jobs []models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))

	ids := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		assert.Equal(t, models.JobOpen, j.Status)
		ids[j.ID] = true
	}
	assert.True(t, ids[open.ID], "open job should be listed")
	assert.False(t, ids[closed.ID], "closed job must not be listed")
}

func TestListMyJobs(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	token, employer := helpers.CreateAndLoginEmployer(t, ts, tx)
	helpers.CreateJob(t, tx, employer.ID, 1)
	helpers.CreateJob(t, tx, employer.ID, 2)

	otherToken, other := helpers.CreateAndLoginEmployer(t, ts, tx)
	helpers.CreateJob(t, tx, other.ID, 1)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/jobs/my", token, nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	var jobs []models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	assert.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Equal(t, employer.ID, j.EmployerID)
	}

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/jobs/my", otherToken, nil)
	require.Equal(t, http.StatusOK, res.Code, body)
	require.NoError(t, json.Unmarshal([]byte(body), &jobs))
	assert.Len(t, jobs, 1)
}
