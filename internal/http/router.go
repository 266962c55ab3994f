package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/opentransit/stationhub/internal/domain"
	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/internal/store"
	"github.com/opentransit/stationhub/pkg/httpx"
	"github.com/opentransit/stationhub/pkg/jwtx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	StationService  *service.StationService
	CategoryService *service.CategoryService
	RegionService   *service.RegionService
	MediaService    *service.MediaService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCategories()
	r.registerStations()
	r.registerRegions()
	r.registerMedia()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated wraps h with token verification only.
func (r *Router) authenticated(h http.Handler) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.verifier))
}

// restricted wraps h with token verification plus a flat role check.
func (r *Router) restricted(h http.Handler, roles ...domain.Role) http.Handler {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(names...),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /auth/register", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /auth/login", http.HandlerFunc(h.HandleLogin))
	r.Mux.Handle("POST /auth/activation", http.HandlerFunc(h.HandleActivation))

	r.Mux.Handle("GET /auth/me", r.authenticated(http.HandlerFunc(h.HandleMe)))
	r.Mux.Handle("PUT /auth/update-profile",
		r.restricted(http.HandlerFunc(h.HandleUpdateProfile), domain.RoleAdmin, domain.RoleUser))
	r.Mux.Handle("PUT /auth/update-password",
		r.restricted(http.HandlerFunc(h.HandleUpdatePassword), domain.RoleAdmin, domain.RoleUser))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{CategoryService: r.CategoryService}

	r.Mux.Handle("GET /category", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /category/{id}", http.HandlerFunc(h.HandleGet))

	r.Mux.Handle("POST /category",
		r.restricted(http.HandlerFunc(h.HandleCreate), domain.RoleAdmin))
	r.Mux.Handle("PUT /category/{id}",
		r.restricted(http.HandlerFunc(h.HandleUpdate), domain.RoleAdmin))
	r.Mux.Handle("DELETE /category/{id}",
		r.restricted(http.HandlerFunc(h.HandleDelete), domain.RoleAdmin))
}

func (r *Router) registerStations() {
	h := &StationsHandler{StationService: r.StationService}

	r.Mux.Handle("GET /stations", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /stations/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("GET /stations/{slug}/slug", http.HandlerFunc(h.HandleGetBySlug))

	r.Mux.Handle("POST /stations",
		r.restricted(http.HandlerFunc(h.HandleCreate), domain.RoleAdmin))
	r.Mux.Handle("PUT /stations/{id}",
		r.restricted(http.HandlerFunc(h.HandleUpdate), domain.RoleAdmin))
	r.Mux.Handle("DELETE /stations/{id}",
		r.restricted(http.HandlerFunc(h.HandleDelete), domain.RoleAdmin))
}

func (r *Router) registerRegions() {
	h := &RegionsHandler{RegionService: r.RegionService}

	r.Mux.Handle("GET /regions", http.HandlerFunc(h.HandleProvinces))
	r.Mux.Handle("GET /regions/{id}/province", http.HandlerFunc(h.HandleProvince))
	r.Mux.Handle("GET /regions/{id}/regency", http.HandlerFunc(h.HandleRegencies))
	r.Mux.Handle("GET /regions/{id}/district", http.HandlerFunc(h.HandleDistricts))
	r.Mux.Handle("GET /regions/{id}/village", http.HandlerFunc(h.HandleVillages))
	r.Mux.Handle("GET /regions-search", http.HandlerFunc(h.HandleSearch))
}

func (r *Router) registerMedia() {
	h := &MediaHandler{MediaService: r.MediaService}

	r.Mux.Handle("POST /media/upload-single",
		r.restricted(http.HandlerFunc(h.HandleUploadSingle), domain.RoleAdmin, domain.RoleUser))
	r.Mux.Handle("POST /media/upload-multiple",
		r.restricted(http.HandlerFunc(h.HandleUploadMultiple), domain.RoleAdmin, domain.RoleUser))
	r.Mux.Handle("DELETE /media/remove",
		r.restricted(http.HandlerFunc(h.HandleRemove), domain.RoleAdmin, domain.RoleUser))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
