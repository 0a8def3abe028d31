package models

type JobStatusValue string

const (
	JobOpen   JobStatusValue = "OPEN"
	JobClosed JobStatusValue = "CLOSED"
)

// Job is an employer's posting. A job accepts applications only while OPEN;
// it is closed automatically once MemberLimit workers have been accepted.
type Job struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Category    string         `gorm:"not null" json:"category"`
	Location    string         `gorm:"not null" json:"location"`
	Description string         `gorm:"not null" json:"description"`
	Budget      *float64       `json:"budget,omitempty"`
	MemberLimit int            `gorm:"not null;check:member_limit >= 1" json:"memberLimit"`
	Status      JobStatusValue `gorm:"type:varchar(10);default:'OPEN'" json:"status"`
	EmployerID  string         `gorm:"type:uuid;not null;index" json:"employer"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"employerInfo,omitempty"`
}
