package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coursedir-api/internal/service"
)

// RegisterRoutes mounts the catalog endpoints on r. Callers mount r under
// the /api prefix.
func RegisterRoutes(r chi.Router, catalogService service.CatalogService, logger *slog.Logger) {
	courseHandler := NewCourseHandler(catalogService, logger)
	collegeHandler := NewCollegeHandler(catalogService, logger)
	careerHandler := NewCareerHandler(catalogService, logger)
	optionsHandler := NewOptionsHandler(catalogService, logger)

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", courseHandler.ListCourses)
		r.Get("/suggestions", courseHandler.Suggestions)
		r.Get("/{id}", courseHandler.GetCourse)
		r.Get("/{id}/colleges", courseHandler.GetCourseColleges)
		r.Get("/{id}/careers", courseHandler.GetCourseCareers)
	})

	r.Get("/colleges", collegeHandler.ListColleges)

	r.Get("/careers", careerHandler.ListCareers)
	r.Get("/careers/{name}", careerHandler.GetCareer)
	r.Get("/news", careerHandler.ListNews)

	r.Route("/options", func(r chi.Router) {
		r.Get("/levels", optionsHandler.Levels)
		r.Get("/fields", optionsHandler.Fields)
		r.Get("/subject-areas", optionsHandler.SubjectAreas)
		r.Get("/careers", optionsHandler.Careers)
		r.Get("/courses", optionsHandler.Courses)
		r.Get("/college-types", optionsHandler.CollegeTypes)
		r.Get("/states", optionsHandler.States)
		r.Get("/districts", optionsHandler.Districts)
	})
}
