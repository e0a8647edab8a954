package dto

import "github.com/merdan/studentinfo/internal/app/models"

// StudentResponse is the public shape of a student. Faculty, group and
// scholarship embed the full nested reference, or null when unset.
type StudentResponse struct {
	ID             int64              `json:"id"`
	FullName       string             `json:"fullname"`
	StudentID      string             `json:"student_id"`
	ProfilePicture *string            `json:"profile_picture"`
	Slug           string             `json:"slug"`
	Faculty        *ReferenceResponse `json:"faculty"`
	Group          *ReferenceResponse `json:"group"`
	Scholarship    *ReferenceResponse `json:"scholarship"`
}

// AdminStudentResponse extends the public shape with administrative fields.
type AdminStudentResponse struct {
	StudentResponse
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// StudentRequest carries the multipart form data for creating or updating a
// student. Faculty, group and scholarship are optional reference slugs; the
// profile picture file is read from the multipart form separately. On update,
// the slug and any already-stored picture are untouched unless a new file is
// uploaded.
type StudentRequest struct {
	FirstName   string `form:"first_name" binding:"required,max=255"`
	LastName    string `form:"last_name" binding:"required,max=255"`
	StudentID   string `form:"student_id" binding:"required,max=255"`
	Faculty     string `form:"faculty"`
	Group       string `form:"group"`
	Scholarship string `form:"scholarship"`
}

// NewStudentResponse maps a student to its public shape.
func NewStudentResponse(s *models.Student) *StudentResponse {
	if s == nil {
		return nil
	}
	return &StudentResponse{
		ID:             s.ID,
		FullName:       s.FullName(),
		StudentID:      s.StudentID,
		ProfilePicture: s.ProfilePicture,
		Slug:           s.Slug,
		Faculty:        NewReferenceResponse(s.Faculty),
		Group:          NewReferenceResponse(s.Group),
		Scholarship:    NewReferenceResponse(s.Scholarship),
	}
}

// NewStudentList maps a slice of students to their public shapes.
func NewStudentList(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *NewStudentResponse(&students[i]))
	}
	return out
}

// NewAdminStudentResponse maps a student to its administrative shape.
func NewAdminStudentResponse(s *models.Student) AdminStudentResponse {
	return AdminStudentResponse{
		StudentResponse: *NewStudentResponse(s),
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		IsActive:        s.IsActive,
		CreatedAt:       s.Created(),
		UpdatedAt:       s.Updated(),
	}
}

// NewAdminStudentList maps students to their administrative shapes.
func NewAdminStudentList(students []models.Student) []AdminStudentResponse {
	out := make([]AdminStudentResponse, 0, len(students))
	for i := range students {
		out = append(out, NewAdminStudentResponse(&students[i]))
	}
	return out
}
