package dto

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
