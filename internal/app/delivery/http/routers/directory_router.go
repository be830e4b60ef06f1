package routers

import (
	"directory-service/internal/app/delivery/http/controllers"
	"directory-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDirectoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, directoryController *controllers.DirectoryController) {
	router.Get("/catalog", directoryController.GetCatalog)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.SessionOptional)

		r.Post("/views", directoryController.CreateView)
		r.Route("/views/{view_id}", func(r chi.Router) {
			r.Get("/", directoryController.GetView)
			r.Delete("/", directoryController.DisposeView)

			r.Put("/category", directoryController.SwitchCategory)
			r.Put("/filters", directoryController.ApplyFilters)
			r.Delete("/filters", directoryController.ClearFilters)
			r.Put("/page", directoryController.ChangePage)
			r.Put("/selection", directoryController.SelectRecord)
			r.Delete("/selection", directoryController.CloseDetail)

			r.Post("/inquiry", directoryController.OpenInquiry)
			r.Post("/inquiry/submit", directoryController.SubmitInquiry)
			r.Delete("/inquiry", directoryController.CloseInquiry)

			r.Post("/appointment", directoryController.OpenAppointment)
			r.Post("/appointment/submit", directoryController.SubmitAppointment)
			r.Delete("/appointment", directoryController.CloseAppointment)
		})
	})
}
