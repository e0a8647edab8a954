package dto

import "github.com/merdan/studentinfo/internal/app/models"

// MarkResponse is the public shape of a mark. Lesson and semester are
// flattened to their title strings, unlike the nested references on the
// student payload; consumers rely on this shape.
type MarkResponse struct {
	ID       int64            `json:"id"`
	Lesson   string           `json:"lesson"`
	Semester string           `json:"semester"`
	MarkType models.MarkType  `json:"mark_type"`
	Mark     models.MarkValue `json:"mark"`
}

// AdminMarkResponse extends the public shape with administrative fields.
type AdminMarkResponse struct {
	MarkResponse
	Student   string `json:"student"`
	Slug      string `json:"slug"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateMarkRequest carries the data for recording a mark. Student, lesson
// and semester are reference slugs.
type CreateMarkRequest struct {
	Student  string `json:"student" binding:"required"`
	Lesson   string `json:"lesson" binding:"required"`
	Semester string `json:"semester" binding:"required"`
	MarkType string `json:"mark_type" binding:"required,oneof=hasap synag"`
	Mark     string `json:"mark" binding:"required,oneof=hasap hasap_dal 5 4 3 2"`
}

// UpdateMarkRequest carries the data for changing a recorded mark.
type UpdateMarkRequest struct {
	MarkType string `json:"mark_type" binding:"required,oneof=hasap synag"`
	Mark     string `json:"mark" binding:"required,oneof=hasap hasap_dal 5 4 3 2"`
}

// NewMarkResponse maps a mark to its public shape.
func NewMarkResponse(m *models.Mark) MarkResponse {
	return MarkResponse{
		ID:       m.ID,
		Lesson:   m.LessonTitle,
		Semester: m.SemesterTitle,
		MarkType: m.MarkType,
		Mark:     m.Mark,
	}
}

// NewMarkList maps a slice of marks to their public shapes.
func NewMarkList(marks []models.Mark) []MarkResponse {
	out := make([]MarkResponse, 0, len(marks))
	for i := range marks {
		out = append(out, NewMarkResponse(&marks[i]))
	}
	return out
}

// NewAdminMarkResponse maps a mark to its administrative shape.
func NewAdminMarkResponse(m *models.Mark) AdminMarkResponse {
	return AdminMarkResponse{
		MarkResponse: NewMarkResponse(m),
		Student:      m.StudentName,
		Slug:         m.Slug,
		IsActive:     m.IsActive,
		CreatedAt:    m.Created(),
		UpdatedAt:    m.Updated(),
	}
}

// NewAdminMarkList maps marks to their administrative shapes.
func NewAdminMarkList(marks []models.Mark) []AdminMarkResponse {
	out := make([]AdminMarkResponse, 0, len(marks))
	for i := range marks {
		out = append(out, NewAdminMarkResponse(&marks[i]))
	}
	return out
}
