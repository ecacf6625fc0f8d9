package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/store"
)

type Handler struct {
	store  *store.Store
	secret string
}

func New(st *store.Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/appointments", h.ListAppointments)
		api.POST("/appointments", h.CreateAppointment)
		api.PUT("/appointments/:id", h.UpdateAppointment)
		api.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
		api.DELETE("/appointments/:id", h.DeleteAppointment)

		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/refresh", h.Refresh)
		authRoutes.GET("/me", middleware.Auth(h.secret), h.Me)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// storageError logs the failing operation server-side and returns a
// generic message to the client.
func storageError(c *gin.Context, op string, err error, msg string) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
