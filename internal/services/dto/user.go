package dto

// UpdateProfileRequest holds the client-writable profile fields. Pointer
// fields distinguish "not sent" from "cleared". Reputation, role and
// verification state are deliberately absent.
type UpdateProfileRequest struct {
	Name         *string   `json:"name,omitempty"`
	PhoneNumber  *string   `json:"phoneNumber,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	Categories   *[]string `json:"categories,omitempty"`
	About        *string   `json:"about,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Age          *int      `json:"age,omitempty" validate:"omitempty,min=16,max=100"`
}
