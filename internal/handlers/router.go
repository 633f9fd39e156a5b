package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"wednest/internal/middleware"
)

// NewRouter assembles the full route table. Mutating profile, request and
// cart routes require a bearer token; public vendor reads and the auth
// endpoints stay open. When uploadsDir is set, files stored by the local
// storage backend are served under /uploads/.
func NewRouter(
	account *AccountHandler,
	couple *CoupleHandler,
	vendor *VendorHandler,
	request *RequestHandler,
	cart *CartHandler,
	verifier middleware.TokenVerifier,
	uploadsDir string,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))

	r.Get("/health", account.Health)

	if uploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", account.Register)
		r.Post("/login", account.Login)
		r.Post("/logout", account.Logout)

		r.Get("/couple/profile/{user_id}", couple.GetProfile)
		r.Get("/couple/dashboard/{user_id}", couple.Dashboard)
		r.Get("/couple/budget/{couple_id}", couple.Budget)
		r.Get("/couple/requests/{couple_id}", request.ListForCouple)

		r.Get("/vendor/profile/{vendor_id}", vendor.GetProfile)
		r.Get("/vendor/details/{vendor_id}", vendor.GetProfile)
		r.Get("/vendor/dashboard/{user_id}", vendor.Dashboard)
		r.Get("/vendor/requests/{vendor_id}", request.ListForVendor)
		r.Get("/vendors/type/{vendorType}", vendor.ListByType)

		r.Get("/request-id", request.ResolveID)
		r.Get("/cart/{couple_id}", cart.Get)

		// Mutations require authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(verifier))

			r.Put("/couple/profile", couple.UpdateProfile)
			r.Put("/vendor/profile", vendor.UpdateProfile)

			r.Post("/request", request.Send)
			r.Put("/request/{request_id}", request.Respond)

			r.Post("/cart/add", cart.Add)
			r.Delete("/cart/remove", cart.Remove)
		})
	})

	return r
}
