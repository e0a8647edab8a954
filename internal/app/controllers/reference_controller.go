package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/merdan/studentinfo/internal/app/models/dto"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/app/services"
	"github.com/merdan/studentinfo/internal/middleware"
)

// ReferenceController serves one titled catalog (faculties, groups,
// scholarships, lessons or semesters): the public list endpoint plus the
// administrative CRUD surface.
type ReferenceController struct {
	service services.ReferenceService
}

// NewReferenceController creates a controller over one catalog service.
func NewReferenceController(service services.ReferenceService) *ReferenceController {
	return &ReferenceController{service: service}
}

// parseBoolQuery reads an optional boolean query parameter; nil when absent
// or unparsable.
func parseBoolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// List returns every active catalog record in the {count, results} envelope.
func (ctl *ReferenceController) List(c *gin.Context) {
	records, err := ctl.service.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	results := dto.NewReferenceList(records)
	c.JSON(http.StatusOK, dto.NewListResponse(len(results), results))
}

// AdminList returns catalog records including inactive ones, filterable by
// is_active and a title search term.
func (ctl *ReferenceController) AdminList(c *gin.Context) {
	filter := repositories.ReferenceFilter{
		IsActive: parseBoolQuery(c, "is_active"),
		Search:   c.Query("search"),
	}

	records, err := ctl.service.AdminList(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	results := dto.NewAdminReferenceList(records)
	c.JSON(http.StatusOK, dto.NewListResponse(len(results), results))
}

// Create adds a catalog record and assigns its slug.
func (ctl *ReferenceController) Create(c *gin.Context) {
	var req dto.CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(c, err)
		return
	}

	record, err := ctl.service.Create(c.Request.Context(), req.Title)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAdminReferenceResponse(record))
}

// Update renames a catalog record; the slug stays unchanged.
func (ctl *ReferenceController) Update(c *gin.Context) {
	var req dto.UpdateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(c, err)
		return
	}

	record, err := ctl.service.Rename(c.Request.Context(), c.Param("slug"), req.Title)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminReferenceResponse(record))
}

// Delete physically removes a catalog record; referential actions take care
// of dependents.
func (ctl *ReferenceController) Delete(c *gin.Context) {
	if err := ctl.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate soft-deletes a catalog record.
func (ctl *ReferenceController) Deactivate(c *gin.Context) {
	if err := ctl.service.SetActive(c.Request.Context(), c.Param("slug"), false); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDetailResponse(ctl.service.Kind().DisplayName()+" deactivated"))
}

// Reactivate restores a soft-deleted catalog record. There is no public API
// path to this transition.
func (ctl *ReferenceController) Reactivate(c *gin.Context) {
	if err := ctl.service.SetActive(c.Request.Context(), c.Param("slug"), true); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDetailResponse(ctl.service.Kind().DisplayName()+" reactivated"))
}
