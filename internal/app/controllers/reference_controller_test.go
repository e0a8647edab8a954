package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
)

func newReferenceRouter(svc *stubReferenceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewReferenceController(svc)

	router := gin.New()
	router.GET("/faculties/", ctl.List)
	admin := router.Group("/admin/faculties")
	admin.GET("/", ctl.AdminList)
	admin.POST("/", ctl.Create)
	admin.PUT("/:slug/", ctl.Update)
	admin.DELETE("/:slug/", ctl.Delete)
	admin.POST("/:slug/deactivate/", ctl.Deactivate)
	admin.POST("/:slug/reactivate/", ctl.Reactivate)
	return router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReferenceControllerList(t *testing.T) {
	svc := &stubReferenceService{
		kind: models.KindFaculty,
		records: []models.Reference{
			{Base: models.Base{ID: 2, Slug: "economics", IsActive: true}, Title: "Economics"},
			{Base: models.Base{ID: 1, Slug: "cs", IsActive: true}, Title: "Computer Science"},
		},
	}
	w := doRequest(newReferenceRouter(svc), http.MethodGet, "/faculties/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"count": 2,
		"results": [
			{"id": 2, "title": "Economics", "slug": "economics"},
			{"id": 1, "title": "Computer Science", "slug": "cs"}
		]
	}`, w.Body.String())
}

func TestReferenceControllerListEmpty(t *testing.T) {
	svc := &stubReferenceService{kind: models.KindFaculty, records: []models.Reference{}}
	w := doRequest(newReferenceRouter(svc), http.MethodGet, "/faculties/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 0, "results": []}`, w.Body.String())
}

func TestReferenceControllerAdminListFilter(t *testing.T) {
	svc := &stubReferenceService{kind: models.KindFaculty, records: []models.Reference{}}
	w := doRequest(newReferenceRouter(svc), http.MethodGet, "/admin/faculties/?is_active=false&search=phys", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.IsActive)
	assert.False(t, *svc.lastFilter.IsActive)
	assert.Equal(t, "phys", svc.lastFilter.Search)
}

func TestReferenceControllerCreate(t *testing.T) {
	svc := &stubReferenceService{
		kind:   models.KindFaculty,
		record: &models.Reference{Base: models.Base{ID: 3, Slug: "physics", IsActive: true}, Title: "Physics"},
	}
	w := doRequest(newReferenceRouter(svc), http.MethodPost, "/admin/faculties/", `{"title": "Physics"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Physics", svc.lastTitle)
	assert.Contains(t, w.Body.String(), `"slug":"physics"`)
	assert.Contains(t, w.Body.String(), `"is_active":true`)
}

func TestReferenceControllerCreateBindingError(t *testing.T) {
	svc := &stubReferenceService{kind: models.KindFaculty}
	w := doRequest(newReferenceRouter(svc), http.MethodPost, "/admin/faculties/", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
}

func TestReferenceControllerUpdateNotFound(t *testing.T) {
	svc := &stubReferenceService{kind: models.KindFaculty, err: apperrors.ErrFacultyNotFound}
	w := doRequest(newReferenceRouter(svc), http.MethodPut, "/admin/faculties/missing/", `{"title": "Physics"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Faculty not found"}`, w.Body.String())
}

func TestReferenceControllerDeactivate(t *testing.T) {
	svc := &stubReferenceService{kind: models.KindFaculty}
	w := doRequest(newReferenceRouter(svc), http.MethodPost, "/admin/faculties/cs/deactivate/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail": "Faculty deactivated"}`, w.Body.String())
	require.NotNil(t, svc.lastActive)
	assert.False(t, *svc.lastActive)
}

func TestReferenceControllerDelete(t *testing.T) {
	svc := &stubReferenceService{kind: models.KindFaculty}
	w := doRequest(newReferenceRouter(svc), http.MethodDelete, "/admin/faculties/cs/", "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "cs", svc.lastSlug)
}
