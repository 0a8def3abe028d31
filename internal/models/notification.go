package models

import "gorm.io/datatypes"

// Notification types emitted by lifecycle transitions.
const (
	NotificationTypeNewApplication = "NEW_APPLICATION"
	NotificationTypeJobAccepted    = "JOB_ACCEPTED"
	NotificationTypeJobRejected    = "JOB_REJECTED"
)

// Notification is an append-only per-user feed entry. Only the bulk
// mark-read operation ever mutates one.
type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"user"`
	Message string         `gorm:"not null" json:"message"`
	Type    string         `gorm:"not null" json:"type"`
	Link    string         `json:"link,omitempty"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	Read    bool           `gorm:"default:false" json:"read"`
}
