package models

import "gorm.io/datatypes"

type UserRole string

const (
	UserRoleEmployer UserRole = "EMPLOYER"
	UserRoleWorker   UserRole = "WORKER"
)

// User carries identity, credentials, profile and worker reputation. The
// reputation fields (Rating, ReviewCount, CompletedJobs) are written only by
// review aggregation and job completion, never by the user directly.
type User struct {
	BaseModel
	Name          string   `gorm:"not null" json:"name"`
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber   string   `json:"phoneNumber"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Role          UserRole `gorm:"type:varchar(20);not null" json:"role"`
	EmailVerified bool     `gorm:"default:false" json:"emailVerified"`

	// Profile
	ProfileImage string                      `json:"profileImage"`
	Location     string                      `json:"location"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Categories   datatypes.JSONSlice[string] `json:"categories"`
	About        string                      `json:"about"`
	Experience   string                      `json:"experience"`
	Age          *int                        `json:"age,omitempty"`

	// Reputation
	Rating        float64 `gorm:"default:0" json:"rating"`
	ReviewCount   int     `gorm:"default:0" json:"reviewCount"`
	CompletedJobs int     `gorm:"default:0" json:"completedJobs"`
}

// ValidRole reports whether r is one of the two registerable roles.
func ValidRole(r UserRole) bool {
	return r == UserRoleEmployer || r == UserRoleWorker
}
