package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/merdan/studentinfo/internal/app/models/dto"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/app/services"
	"github.com/merdan/studentinfo/internal/middleware"
)

// MarkController handles mark-related endpoints.
type MarkController struct {
	service services.MarkService
}

// NewMarkController creates a new MarkController.
func NewMarkController(service services.MarkService) *MarkController {
	return &MarkController{service: service}
}

// List returns active marks with optional filtering.
// @Summary List marks
// @Description Lists active marks with optional filtering by student and semester slug. Lesson and semester render as title strings.
// @Tags marks
// @Produce json
// @Param student query string false "student slug"
// @Param semester query string false "semester slug"
// @Success 200 {object} dto.ListResponse
// @Router /marks/ [get]
func (ctl *MarkController) List(c *gin.Context) {
	filter := repositories.MarkFilter{
		Student:  c.Query("student"),
		Semester: c.Query("semester"),
	}

	marks, err := ctl.service.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	results := dto.NewMarkList(marks)
	c.JSON(http.StatusOK, dto.NewListResponse(len(results), results))
}

// AdminList returns marks including inactive ones, filterable by student,
// lesson and semester.
func (ctl *MarkController) AdminList(c *gin.Context) {
	filter := repositories.AdminMarkFilter{
		Student:  c.Query("student"),
		Lesson:   c.Query("lesson"),
		Semester: c.Query("semester"),
		IsActive: parseBoolQuery(c, "is_active"),
	}

	marks, err := ctl.service.AdminList(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	results := dto.NewAdminMarkList(marks)
	c.JSON(http.StatusOK, dto.NewListResponse(len(results), results))
}

// Create records a mark for a student, lesson and semester.
func (ctl *MarkController) Create(c *gin.Context) {
	var req dto.CreateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(c, err)
		return
	}

	mark, err := ctl.service.Create(c.Request.Context(), services.MarkInput{
		Student:  req.Student,
		Lesson:   req.Lesson,
		Semester: req.Semester,
		MarkType: req.MarkType,
		Mark:     req.Mark,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAdminMarkResponse(mark))
}

// Update changes a recorded mark's type and value.
func (ctl *MarkController) Update(c *gin.Context) {
	var req dto.UpdateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(c, err)
		return
	}

	mark, err := ctl.service.Update(c.Request.Context(), c.Param("slug"), req.MarkType, req.Mark)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminMarkResponse(mark))
}

// Delete physically removes a mark.
func (ctl *MarkController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate soft-deletes a mark.
func (ctl *MarkController) Deactivate(c *gin.Context) {
	if err := ctl.service.SetActive(c.Request.Context(), c.Param("slug"), false); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDetailResponse("Mark deactivated"))
}

// Reactivate restores a soft-deleted mark.
func (ctl *MarkController) Reactivate(c *gin.Context) {
	if err := ctl.service.SetActive(c.Request.Context(), c.Param("slug"), true); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDetailResponse("Mark reactivated"))
}
