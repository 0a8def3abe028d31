package models

type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "APPLIED"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Application records a worker's intent to perform a job. At most one exists
// per (job, worker) pair; ACCEPTED and REJECTED are both terminal.
type Application struct {
	BaseModel
	JobID    string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_application_job_worker" json:"job"`
	WorkerID string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_application_job_worker" json:"worker"`
	Status   ApplicationStatus `gorm:"type:varchar(10);default:'APPLIED'" json:"status"`

	Job    *Job  `gorm:"foreignKey:JobID" json:"jobInfo,omitempty"`
	Worker *User `gorm:"foreignKey:WorkerID" json:"workerInfo,omitempty"`
}

// Terminal reports whether the application has been decided.
func (a *Application) Terminal() bool {
	return a.Status != ApplicationApplied
}
