package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/merdan/studentinfo/internal/app/controllers"
	"github.com/merdan/studentinfo/internal/app/models/dto"
)

// Controllers groups everything the router needs.
type Controllers struct {
	Faculties    *controllers.ReferenceController
	Groups       *controllers.ReferenceController
	Scholarships *controllers.ReferenceController
	Lessons      *controllers.ReferenceController
	Semesters    *controllers.ReferenceController
	Students     *controllers.StudentController
	Marks        *controllers.MarkController
}

// SetupRouter configures all application routes. The public surface is
// read-only; every write goes through the /admin group.
func SetupRouter(router *gin.Engine, ctl Controllers) {
	// --- Public read endpoints ---
	router.GET("/faculties/", ctl.Faculties.List)
	router.GET("/groups/", ctl.Groups.List)
	router.GET("/scholarships/", ctl.Scholarships.List)
	router.GET("/lessons/", ctl.Lessons.List)
	router.GET("/semesters/", ctl.Semesters.List)

	router.GET("/students/", ctl.Students.List)
	router.GET("/students-list/", ctl.Students.ListAll)
	router.GET("/students/:slug/", ctl.Students.Detail)

	router.GET("/marks/", ctl.Marks.List)

	// --- Administrative surface ---
	admin := router.Group("/admin")

	catalogs := map[string]*controllers.ReferenceController{
		"faculties":    ctl.Faculties,
		"groups":       ctl.Groups,
		"scholarships": ctl.Scholarships,
		"lessons":      ctl.Lessons,
		"semesters":    ctl.Semesters,
	}
	for name, catalog := range catalogs {
		group := admin.Group("/" + name)
		{
			group.GET("/", catalog.AdminList)
			group.POST("/", catalog.Create)
			group.PUT("/:slug/", catalog.Update)
			group.DELETE("/:slug/", catalog.Delete)
			group.POST("/:slug/deactivate/", catalog.Deactivate)
			group.POST("/:slug/reactivate/", catalog.Reactivate)
		}
	}

	students := admin.Group("/students")
	{
		students.GET("/", ctl.Students.AdminList)
		students.POST("/", ctl.Students.Create)
		students.PUT("/:slug/", ctl.Students.Update)
		students.DELETE("/:slug/", ctl.Students.Delete)
		students.POST("/:slug/deactivate/", ctl.Students.Deactivate)
		students.POST("/:slug/reactivate/", ctl.Students.Reactivate)
	}

	marks := admin.Group("/marks")
	{
		marks.GET("/", ctl.Marks.AdminList)
		marks.POST("/", ctl.Marks.Create)
		marks.PUT("/:slug/", ctl.Marks.Update)
		marks.DELETE("/:slug/", ctl.Marks.Delete)
		marks.POST("/:slug/deactivate/", ctl.Marks.Deactivate)
		marks.POST("/:slug/reactivate/", ctl.Marks.Reactivate)
	}

	// Health check endpoint
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewDetailResponse("ok"))
	})
}
