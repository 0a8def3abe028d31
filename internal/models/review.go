package models

// Review is an employer's rating of a worker. Append-only: never updated or
// deleted. The full set of a worker's reviews is the source of truth for the
// aggregate rating/reviewCount on User.
type Review struct {
	BaseModel
	EmployerID string  `gorm:"type:uuid;not null;index" json:"employer"`
	WorkerID   string  `gorm:"type:uuid;not null;index" json:"worker"`
	JobID      *string `gorm:"type:uuid;index" json:"job,omitempty"`
	Rating     int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string  `json:"comment,omitempty"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"employerInfo,omitempty"`
	Worker   *User `gorm:"foreignKey:WorkerID" json:"-"`
}
