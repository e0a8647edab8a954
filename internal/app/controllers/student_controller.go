package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/merdan/studentinfo/internal/app/models/dto"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/app/services"
	"github.com/merdan/studentinfo/internal/middleware"
	"github.com/merdan/studentinfo/internal/pkg/filestorage"
	"github.com/merdan/studentinfo/internal/pkg/helpers"
)

// profilePictureDir is the upload subdirectory for student photos.
const profilePictureDir = "profile_pictures"

// StudentController handles student-related endpoints.
type StudentController struct {
	service services.StudentService
	storage filestorage.FileStorage
	baseURL string
}

// NewStudentController creates a new StudentController. baseURL is the
// externally visible scheme://host prefix used to build pagination links.
func NewStudentController(service services.StudentService, storage filestorage.FileStorage, baseURL string) *StudentController {
	return &StudentController{service: service, storage: storage, baseURL: baseURL}
}

func studentFilterFromQuery(c *gin.Context) repositories.StudentFilter {
	return repositories.StudentFilter{
		Faculty:     c.Query("faculty"),
		Group:       c.Query("group"),
		Scholarship: c.Query("scholarship"),
	}
}

// List returns one page of active students.
// @Summary List students
// @Description Lists active students with optional filtering by faculty, group and scholarship slug. Paginated.
// @Tags students
// @Produce json
// @Param faculty query string false "faculty slug"
// @Param group query string false "group slug"
// @Param scholarship query string false "scholarship slug"
// @Param page query int false "1-based page number"
// @Param page_size query int false "page size (max 100)"
// @Success 200 {object} dto.PageResponse
// @Router /students/ [get]
func (ctl *StudentController) List(c *gin.Context) {
	page, pageSize := helpers.ParsePageParams(c)

	students, total, err := ctl.service.List(c.Request.Context(), studentFilterFromQuery(c), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	next, previous := helpers.PageLinks(ctl.baseURL, c.Request.URL, page, pageSize, total)
	c.JSON(http.StatusOK, dto.PageResponse{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  dto.NewStudentList(students),
	})
}

// ListAll returns every active student without pagination, for bulk
// consumers.
// @Summary List all students
// @Description Lists every active student matching the filters, unpaginated.
// @Tags students
// @Produce json
// @Param faculty query string false "faculty slug"
// @Param group query string false "group slug"
// @Param scholarship query string false "scholarship slug"
// @Success 200 {object} dto.ListResponse
// @Router /students-list/ [get]
func (ctl *StudentController) ListAll(c *gin.Context) {
	students, err := ctl.service.ListAll(c.Request.Context(), studentFilterFromQuery(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	results := dto.NewStudentList(students)
	c.JSON(http.StatusOK, dto.NewListResponse(len(results), results))
}

// Detail returns one active student by slug.
// @Summary Get a student
// @Description Retrieves a single active student by its public identifier.
// @Tags students
// @Produce json
// @Param slug path string true "student slug"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.DetailResponse
// @Router /students/{slug}/ [get]
func (ctl *StudentController) Detail(c *gin.Context) {
	student, err := ctl.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// AdminList returns students including inactive ones, with search over
// names and student ID.
func (ctl *StudentController) AdminList(c *gin.Context) {
	filter := repositories.AdminStudentFilter{
		IsActive: parseBoolQuery(c, "is_active"),
		Search:   c.Query("search"),
	}

	students, err := ctl.service.AdminList(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	results := dto.NewAdminStudentList(students)
	c.JSON(http.StatusOK, dto.NewListResponse(len(results), results))
}

// studentInput reads the multipart form fields and stores an uploaded
// profile picture, if any.
func (ctl *StudentController) studentInput(c *gin.Context) (services.StudentInput, bool) {
	var req dto.StudentRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.RespondBindingError(c, err)
		return services.StudentInput{}, false
	}

	input := services.StudentInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		StudentID:   req.StudentID,
		Faculty:     req.Faculty,
		Group:       req.Group,
		Scholarship: req.Scholarship,
	}

	file, err := c.FormFile("profile_picture")
	if err == nil && file != nil {
		path, err := ctl.storage.SaveFileWithPath(file, profilePictureDir)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return services.StudentInput{}, false
		}
		input.ProfilePicture = &path
	}

	return input, true
}

// Create adds a student from a multipart form, storing the optional profile
// picture.
func (ctl *StudentController) Create(c *gin.Context) {
	input, ok := ctl.studentInput(c)
	if !ok {
		return
	}

	student, err := ctl.service.Create(c.Request.Context(), input)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAdminStudentResponse(student))
}

// Update rewrites a student's fields; the slug and, absent a new upload,
// the stored picture are kept.
func (ctl *StudentController) Update(c *gin.Context) {
	input, ok := ctl.studentInput(c)
	if !ok {
		return
	}

	student, err := ctl.service.Update(c.Request.Context(), c.Param("slug"), input)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminStudentResponse(student))
}

// Delete physically removes a student together with its marks and stored
// profile picture.
func (ctl *StudentController) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	// Look the student up first so the picture file can be removed once
	// the row is gone.
	current, err := ctl.service.AdminGetBySlug(ctx, slug)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctl.service.Delete(ctx, slug); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if current.ProfilePicture != nil {
		// The record is already gone; losing the file is not a request failure.
		_ = ctl.storage.DeleteFile(*current.ProfilePicture)
	}

	c.Status(http.StatusNoContent)
}

// Deactivate soft-deletes a student.
func (ctl *StudentController) Deactivate(c *gin.Context) {
	if err := ctl.service.SetActive(c.Request.Context(), c.Param("slug"), false); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDetailResponse("Student deactivated"))
}

// Reactivate restores a soft-deleted student.
func (ctl *StudentController) Reactivate(c *gin.Context) {
	if err := ctl.service.SetActive(c.Request.Context(), c.Param("slug"), true); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDetailResponse("Student reactivated"))
}
