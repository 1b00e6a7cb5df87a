package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"caritasAPI/internal/middleware"
	"caritasAPI/internal/models"
)

const idPath = "/{id:[0-9]+}"

// NewRouter mounts every route and wraps the result in the request-wide middleware.
func NewRouter(h *Handlers, corsOrigin string) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	authenticated := func(fn http.HandlerFunc) http.Handler {
		return middleware.Chain(fn, middleware.Auth(h.AuthService))
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.Chain(fn, middleware.RequireRole(models.RoleAdmin), middleware.Auth(h.AuthService))
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// auth
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.Handle("/auth/register", admin(h.Register)).Methods(http.MethodPost)
	api.Handle("/auth/profile", authenticated(h.Profile)).Methods(http.MethodGet)
	api.Handle("/auth/profile", authenticated(h.UpdateProfile)).Methods(http.MethodPut)
	api.Handle("/auth/verify", authenticated(h.Verify)).Methods(http.MethodGet)

	// news
	api.HandleFunc("/news", h.ListNews).Methods(http.MethodGet)
	api.HandleFunc("/news/featured/latest", h.LatestNews).Methods(http.MethodGet)
	api.Handle("/news/admin/all", admin(h.ListAllNews)).Methods(http.MethodGet)
	api.Handle("/news/admin/stats", admin(h.NewsStats)).Methods(http.MethodGet)
	api.Handle("/news/admin"+idPath, admin(h.GetNewsAdmin)).Methods(http.MethodGet)
	api.HandleFunc("/news"+idPath, h.GetNews).Methods(http.MethodGet)
	api.Handle("/news", admin(h.CreateNews)).Methods(http.MethodPost)
	api.Handle("/news"+idPath, admin(h.UpdateNews)).Methods(http.MethodPut)
	api.Handle("/news"+idPath, admin(h.DeleteNews)).Methods(http.MethodDelete)

	// programs
	api.HandleFunc("/programs", h.ListPrograms).Methods(http.MethodGet)
	api.HandleFunc("/programs"+idPath, h.GetProgram).Methods(http.MethodGet)
	api.Handle("/programs", admin(h.CreateProgram)).Methods(http.MethodPost)
	api.Handle("/programs"+idPath, admin(h.UpdateProgram)).Methods(http.MethodPut)
	api.Handle("/programs"+idPath, admin(h.DeleteProgram)).Methods(http.MethodDelete)
	api.Handle("/admin/programs", admin(h.ListAllPrograms)).Methods(http.MethodGet)
	api.Handle("/admin/programs/stats", admin(h.ProgramStats)).Methods(http.MethodGet)
	api.Handle("/admin/programs"+idPath, admin(h.GetProgramAdmin)).Methods(http.MethodGet)

	// settings, contact and landing page content
	api.HandleFunc("/settings", h.Settings).Methods(http.MethodGet)
	api.Handle("/settings", admin(h.UpdateSettings)).Methods(http.MethodPut)
	api.HandleFunc("/contact", h.SubmitContact).Methods(http.MethodPost)
	api.Handle("/contact-messages", admin(h.ListContactMessages)).Methods(http.MethodGet)
	api.Handle("/contact-messages/stats", admin(h.ContactStats)).Methods(http.MethodGet)
	api.Handle("/contact-messages"+idPath, admin(h.GetContactMessage)).Methods(http.MethodGet)
	api.Handle("/contact-messages"+idPath, admin(h.UpdateContactStatus)).Methods(http.MethodPut)
	api.HandleFunc("/content/home", h.Home).Methods(http.MethodGet)

	// donations
	api.HandleFunc("/donations", h.SubmitDonation).Methods(http.MethodPost)
	api.HandleFunc("/donations/stats", h.DonationSummary).Methods(http.MethodGet)
	api.Handle("/donations/admin", admin(h.ListDonations)).Methods(http.MethodGet)
	api.Handle("/donations/admin/analytics", admin(h.DonationAnalytics)).Methods(http.MethodGet)
	api.Handle("/donations/admin/stats", admin(h.DonationStats)).Methods(http.MethodGet)
	api.Handle("/donations/admin"+idPath, admin(h.GetDonation)).Methods(http.MethodGet)
	api.Handle("/donations/admin"+idPath, admin(h.UpdateDonationStatus)).Methods(http.MethodPut)

	// volunteers
	api.HandleFunc("/volunteers", h.ApplyVolunteer).Methods(http.MethodPost)
	api.Handle("/volunteers", admin(h.ListVolunteers)).Methods(http.MethodGet)
	api.Handle("/volunteers/stats", admin(h.VolunteerStats)).Methods(http.MethodGet)
	api.Handle("/volunteers/export/csv", admin(h.ExportVolunteers)).Methods(http.MethodGet)
	api.Handle("/volunteers"+idPath, admin(h.GetVolunteer)).Methods(http.MethodGet)
	api.Handle("/volunteers"+idPath, admin(h.UpdateVolunteerStatus)).Methods(http.MethodPut)
	api.Handle("/volunteers"+idPath, admin(h.DeleteVolunteer)).Methods(http.MethodDelete)

	return middleware.Chain(r,
		middleware.Recover(h.Logger),
		middleware.CORS(corsOrigin),
		middleware.Logging(h.Logger),
	)
}
