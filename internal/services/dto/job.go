package dto

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Budget      *float64 `json:"budget,omitempty"`
	MemberLimit int      `json:"memberLimit" validate:"omitempty,min=1"`
}
