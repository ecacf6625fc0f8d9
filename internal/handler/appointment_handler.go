package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/model"
	"appointment-booking-api/internal/store"
)

type appointmentRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Service         string `json:"service"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
}

// Presence is the only server-side check; email, phone, date and time
// formats are not validated here (known gap, kept for compatibility —
// unparseable dates surface as storage errors).
func (r *appointmentRequest) missingRequired() bool {
	return r.CustomerName == "" || r.CustomerEmail == "" || r.CustomerPhone == "" ||
		r.AppointmentDate == "" || r.AppointmentTime == "" || r.Service == ""
}

// appointmentID parses the :id path param. Non-numeric identifiers match
// no row and are reported as not found.
func appointmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return 0, false
	}
	return id, true
}

func (h *Handler) ListAppointments(c *gin.Context) {
	apts, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		storageError(c, "list appointments", err, "Failed to fetch appointments")
		return
	}
	if apts == nil {
		apts = []model.Appointment{}
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.missingRequired() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}

	apt := &model.Appointment{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Service:         req.Service,
		Notes:           req.Notes,
	}
	if err := h.store.CreateAppointment(c.Request.Context(), apt); err != nil {
		storageError(c, "create appointment", err, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      apt.ID,
		"message": "Appointment booked successfully",
	})
}

// UpdateAppointment is a full replace, not a partial patch.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.missingRequired() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All required fields must be filled"})
		return
	}
	if req.Status == "" {
		req.Status = model.StatusPending
	}

	apt := &model.Appointment{
		ID:              id,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Service:         req.Service,
		Notes:           req.Notes,
		Status:          req.Status,
	}
	err := h.store.UpdateAppointment(c.Request.Context(), apt)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		storageError(c, "update appointment", err, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid status is required"})
		return
	}
	if !model.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid status is required"})
		return
	}

	err := h.store.UpdateAppointmentStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		storageError(c, "update appointment status", err, "Failed to update appointment status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated successfully"})
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	err := h.store.DeleteAppointment(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		storageError(c, "delete appointment", err, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
