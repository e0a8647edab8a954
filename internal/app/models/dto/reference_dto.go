package dto

import "github.com/merdan/studentinfo/internal/app/models"

// ReferenceResponse is the public shape of a catalog record.
type ReferenceResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// AdminReferenceResponse extends the public shape with the administrative
// fields: the soft-delete flag and human-formatted timestamps.
type AdminReferenceResponse struct {
	ReferenceResponse
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateReferenceRequest carries the data for creating a catalog record.
type CreateReferenceRequest struct {
	Title string `json:"title" binding:"required"`
}

// UpdateReferenceRequest carries the data for renaming a catalog record.
type UpdateReferenceRequest struct {
	Title string `json:"title" binding:"required"`
}

// NewReferenceResponse maps a catalog record to its public shape.
func NewReferenceResponse(r *models.Reference) *ReferenceResponse {
	if r == nil {
		return nil
	}
	return &ReferenceResponse{ID: r.ID, Title: r.Title, Slug: r.Slug}
}

// NewReferenceList maps a slice of catalog records to their public shapes.
func NewReferenceList(records []models.Reference) []ReferenceResponse {
	out := make([]ReferenceResponse, 0, len(records))
	for i := range records {
		out = append(out, *NewReferenceResponse(&records[i]))
	}
	return out
}

// NewAdminReferenceResponse maps a catalog record to its administrative shape.
func NewAdminReferenceResponse(r *models.Reference) AdminReferenceResponse {
	return AdminReferenceResponse{
		ReferenceResponse: *NewReferenceResponse(r),
		IsActive:          r.IsActive,
		CreatedAt:         r.Created(),
		UpdatedAt:         r.Updated(),
	}
}

// NewAdminReferenceList maps catalog records to their administrative shapes.
func NewAdminReferenceList(records []models.Reference) []AdminReferenceResponse {
	out := make([]AdminReferenceResponse, 0, len(records))
	for i := range records {
		out = append(out, NewAdminReferenceResponse(&records[i]))
	}
	return out
}
