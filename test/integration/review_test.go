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

func TestSubmitReviewUpdatesAggregate(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	employerToken, _ := helpers.CreateAndLoginEmployer(t, ts, tx)
	_, worker := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/reviews", employerToken, map[string]interface{}{
		"workerId": worker.ID,
		"rating":   5,
		"comment":  "Excellent work",
	})
	require.Equal(t, http.StatusOK, res.Code, body)

	var freshWorker models.User
	require.NoError(t, tx.First(&freshWorker, "id = ?", worker.ID).Error)
	assert.Equal(t, 5.0, freshWorker.Rating)
	assert.Equal(t, 1, freshWorker.ReviewCount)

	// Second review: aggregate is the rounded mean of the full history.
	secondToken, _ := helpers.CreateAndLoginEmployer(t, ts, tx)
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/api/reviews", secondToken, map[string]interface{}{
		"workerId": worker.ID,
		"rating":   4,
	})
	require.Equal(t, http.StatusOK, res.Code, body)

	require.NoError(t, tx.First(&freshWorker, "id = ?", worker.ID).Error)
	assert.Equal(t, 4.5, freshWorker.Rating)
	assert.Equal(t, 2, freshWorker.ReviewCount)
}

func TestSubmitReviewValidation(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	employerToken, _ := helpers.CreateAndLoginEmployer(t, ts, tx)
	_, worker := helpers.CreateAndLoginWorker(t, ts, tx)

	// Rating outside 1..5.
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/reviews", employerToken, map[string]interface{}{
		"workerId": worker.ID,
		"rating":   6,
	})
	assert.Equal(t, http.StatusBadRequest, res.Code, body)

	// Unknown worker.
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/api/reviews", employerToken, map[string]interface{}{
		"workerId": "00000000-0000-0000-0000-000000000000",
		"rating":   3,
	})
	assert.Equal(t, http.StatusNotFound, res.Code, body)
}

func TestSubmitReviewForbiddenForWorker(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	workerToken, worker := helpers.CreateAndLoginWorker(t, ts, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/reviews", workerToken, map[string]interface{}{
		"workerId": worker.ID,
		"rating":   5,
	})
	assert.Equal(t, http.StatusForbidden, res.Code, body)
}

func TestListReviewsIsPublic(t *testing.T) {
	ts := getServer(t)
	tx := ts.Begin(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts, tx)
	_, worker := helpers.CreateAndLoginWorker(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/reviews", employerToken, map[string]interface{}{
		"workerId": worker.ID,
		"rating":   4,
		"comment":  "Reliable",
	})
	require.Equal(t, http.StatusOK, res.Code)

	// No token: worker reviews are a public surface.
	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/reviews/"+worker.ID, "", nil)
	require.Equal(t, http.StatusOK, res.Code, body)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal([]byte(body), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.Equal(t, "Reliable", reviews[0].Comment)
	require.NotNil(t, reviews[0].Employer, "listing preloads the reviewing employer")
	assert.Equal(t, employer.ID, reviews[0].Employer.ID)
}
