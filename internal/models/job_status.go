package models

import "time"

type WorkStatus string

const (
	WorkInProgress WorkStatus = "IN_PROGRESS"
	WorkCompleted  WorkStatus = "COMPLETED"
)

// JobStatus tracks an accepted application from in-progress to completed.
// Created exactly once per (job, worker) pair, only from an ACCEPTED
// application.
type JobStatus struct {
	BaseModel
	JobID      string     `gorm:"type:uuid;not null;index;uniqueIndex:idx_job_status_job_worker" json:"job"`
	EmployerID string     `gorm:"type:uuid;not null;index" json:"employer"`
	WorkerID   string     `gorm:"type:uuid;not null;index;uniqueIndex:idx_job_status_job_worker" json:"worker"`
	Status     WorkStatus `gorm:"type:varchar(15);default:'IN_PROGRESS'" json:"status"`
	Rating     *int       `json:"rating,omitempty"`
	Review     string     `json:"review,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Job      *Job  `gorm:"foreignKey:JobID" json:"jobInfo,omitempty"`
	Employer *User `gorm:"foreignKey:EmployerID" json:"employerInfo,omitempty"`
	Worker   *User `gorm:"foreignKey:WorkerID" json:"workerInfo,omitempty"`
}
