package handlers

import (
	"net/http"
	"slices"
	"time"

	"clinic-api/internal/auth"
	"clinic-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the HTTP API on top of the store.
type Handler struct {
	store      *store.Store
	tokens     *auth.TokenIssuer
	log        *zap.Logger
	bcryptCost int
}

func NewHandler(st *store.Store, tokens *auth.TokenIssuer, log *zap.Logger, bcryptCost int) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: st, tokens: tokens, log: log, bcryptCost: bcryptCost}
}

// NewRouter wires middleware and every route.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	setupValidator()

	r := gin.New()
	r.Use(RequestID(), AccessLog(h.log), gin.CustomRecovery(h.recoverPanic))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/healthz", h.Health)

	authRoutes := r.Group("/auth")
	authRoutes.POST("/register", h.Register)
	authRoutes.POST("/login", h.Login)
	authRoutes.POST("/refresh", h.Refresh)

	api := r.Group("/", h.RequireAuth())

	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.ReplacePatient)
	api.DELETE("/patients/:id", h.DeletePatient)

	api.GET("/doctors", h.ListDoctors)
	api.POST("/doctors", h.CreateDoctor)
	api.GET("/doctors/:id", h.GetDoctor)
	api.PUT("/doctors/:id", h.ReplaceDoctor)
	api.DELETE("/doctors/:id", h.DeleteDoctor)

	api.GET("/mappings", h.ListMappings)
	api.POST("/mappings", h.CreateMapping)
	// GET takes a patient id, DELETE a mapping id.
	api.GET("/mappings/:id", h.GetMappingsForPatient)
	api.DELETE("/mappings/:id", h.DeleteMapping)

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Authorization", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
