package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"workzo_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user inside tx. The PasswordHash field may hold a raw
// password; it is hashed here. Users are created verified unless the caller
// flips EmailVerified afterwards.
func CreateUser(t *testing.T, tx *gorm.DB, user *models.User) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "hashing test password")
	user.PasswordHash = string(hashed)
	user.EmailVerified = true

	require.NoError(t, tx.Create(user).Error, "creating test user %s", user.Email)
}

// CreateAndLoginUser creates a verified user and logs in through the API,
// returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, tx, user)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.Code, "login should succeed: %s", body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginEmployer creates an employer with a unique email.
func CreateAndLoginEmployer(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Employer", email, "password123", models.UserRoleEmployer)
}

// CreateAndLoginWorker creates a worker with a unique email.
func CreateAndLoginWorker(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("worker_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Worker", email, "password123", models.UserRoleWorker)
}

// CreateJob inserts an OPEN job owned by employerID directly into tx.
func CreateJob(t *testing.T, tx *gorm.DB, employerID string, memberLimit int) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:       "Test Job",
		Category:    "cleaning",
		Location:    "Almaty",
		Description: "Integration test job",
		MemberLimit: memberLimit,
		Status:      models.JobOpen,
		EmployerID:  employerID,
	}
	require.NoError(t, tx.Create(job).Error, "creating test job")
	return job
}
