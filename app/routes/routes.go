package routes

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelshare/app/apperrors"
	"travelshare/app/auth"
	"travelshare/app/controllers"
	"travelshare/app/middleware"
	"travelshare/app/response"
	"travelshare/app/services"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Publications *services.PublicationService
	Comments     *services.CommentService
	Reactions    *services.ReactionService

	// Verifier enables token checks on mutating routes. Nil leaves every
	// route open.
	Verifier middleware.Verifier
	// Health reports store reachability for /healthz.
	Health func() error
	// CORSOrigins defaults to "*".
	CORSOrigins []string
}

// SetupRoutes defines the application's routes and returns the HTTP handler.
func SetupRoutes(deps Dependencies) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics)

	router.NotFoundHandler = middleware.ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, apperrors.NotFound("Not found"))
	}))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", healthz(deps.Health)).Methods("GET")

	open := func(h http.Handler) http.Handler { return h }
	write, admin := open, open
	if deps.Verifier != nil {
		write = middleware.Chain(
			middleware.Authenticate(deps.Verifier),
			middleware.RequirePlan(auth.PlanBasic),
			middleware.RequireRole(auth.RoleUser),
		)
		admin = middleware.Chain(
			middleware.Authenticate(deps.Verifier),
			middleware.RequireRole(auth.RoleAdmin),
		)
	}

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	publications := controllers.NewPublicationController(deps.Publications)
	comments := controllers.NewCommentController(deps.Comments)
	reactions := controllers.NewReactionController(deps.Reactions)

	// Publications API endpoints
	api.HandleFunc("/publications", publications.Index).Methods("GET")
	api.HandleFunc("/publications/user/{user}", publications.ByUser).Methods("GET")
	api.HandleFunc("/publications/{id}", publications.Show).Methods("GET")
	api.Handle("/publications", write(http.HandlerFunc(publications.Create))).Methods("POST")
	api.Handle("/publications/{id}", write(http.HandlerFunc(publications.Update))).Methods("PUT")
	api.Handle("/publications/{id}", write(http.HandlerFunc(publications.Delete))).Methods("DELETE")

	// Comments API endpoints
	api.HandleFunc("/comments", comments.Index).Methods("GET")
	api.HandleFunc("/comments/user/{user}", comments.ByUser).Methods("GET")
	api.HandleFunc("/comments/publication/{publication}", comments.ByPublication).Methods("GET")
	api.HandleFunc("/comments/{id}", comments.Show).Methods("GET")
	api.Handle("/comments", write(http.HandlerFunc(comments.Create))).Methods("POST")
	api.Handle("/comments/{id}", write(http.HandlerFunc(comments.Update))).Methods("PUT")
	api.Handle("/comments/{id}", write(http.HandlerFunc(comments.Delete))).Methods("DELETE")

	// Reactions API endpoints
	api.Handle("/reactions", admin(http.HandlerFunc(reactions.Index))).Methods("GET")
	api.HandleFunc("/publications/{id}/reactions", reactions.ByPublication).Methods("GET")
	api.HandleFunc("/comments/{id}/reactions", reactions.ByComment).Methods("GET")
	api.HandleFunc("/user/{id}/unseen", reactions.Unseen).Methods("GET")
	api.Handle("/publications/{id}/reaction", write(http.HandlerFunc(reactions.ReactOnPublication))).Methods("POST")
	api.Handle("/comments/{id}/reaction", write(http.HandlerFunc(reactions.ReactOnComment))).Methods("POST")
	api.Handle("/read/reaction/{id}", write(http.HandlerFunc(reactions.Read))).Methods("PUT")

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	withCORS := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})
	return withCORS(router)
}

func healthz(check func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(); err != nil {
				response.Fail(w, http.StatusServiceUnavailable, "store unavailable")
				return
			}
		}
		response.Success(w, http.StatusOK, "ok", nil)
	}
}
