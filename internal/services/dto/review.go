package dto

type CreateReviewRequest struct {
	WorkerID string  `json:"workerId" binding:"required"`
	Rating   int     `json:"rating" binding:"required" validate:"required,min=1,max=5"`
	Comment  string  `json:"comment,omitempty"`
	JobID    *string `json:"jobId,omitempty"`
}
