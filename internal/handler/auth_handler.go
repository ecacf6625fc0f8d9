package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/middleware"
	"appointment-booking-api/internal/model"
	"appointment-booking-api/internal/store"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		storageError(c, "hash password", err, "Failed to register")
		return
	}

	u := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         "user",
	}
	err = h.store.CreateUser(c.Request.Context(), u)
	if errors.Is(err, store.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An account with this email already exists"})
		return
	}
	if err != nil {
		storageError(c, "register user", err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account registered successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		storageError(c, "login lookup", err, "Failed to log in")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.MakeToken(u.ID, u.Email, u.Role, h.secret)
	if err != nil {
		storageError(c, "issue token", err, "Failed to log in")
		return
	}

	rawRefresh, refreshHash, err := auth.GenerateRefreshToken()
	if err != nil {
		storageError(c, "issue refresh token", err, "Failed to log in")
		return
	}
	if _, err := h.store.CreateRefreshToken(c.Request.Context(), u.ID, refreshHash, time.Now().Add(refreshTokenTTL)); err != nil {
		storageError(c, "store refresh token", err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         token,
		"refresh_token": rawRefresh,
		"role":          u.Role,
		"email":         u.Email,
		"name":          u.FullName(),
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
		return
	}

	rt, err := h.store.RefreshTokenByHash(c.Request.Context(), auth.HashRefreshToken(req.RefreshToken))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}
	if err != nil {
		storageError(c, "refresh lookup", err, "Failed to refresh session")
		return
	}
	if rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	u, err := h.store.UserByID(c.Request.Context(), rt.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		storageError(c, "issue refresh token", err, "Failed to refresh session")
		return
	}
	if _, err := h.store.RotateRefreshToken(c.Request.Context(), rt.ID, u.ID, newHash, time.Now().Add(refreshTokenTTL)); err != nil {
		storageError(c, "rotate refresh token", err, "Failed to refresh session")
		return
	}

	token, err := auth.MakeToken(u.ID, u.Email, u.Role, h.secret)
	if err != nil {
		storageError(c, "issue token", err, "Failed to refresh session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":         token,
		"refresh_token": newRaw,
	})
}

// Me returns the authenticated account, password excluded.
func (h *Handler) Me(c *gin.Context) {
	uid := c.GetInt64(middleware.UserIDKey)

	u, err := h.store.UserByID(c.Request.Context(), uid)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		storageError(c, "load profile", err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, u)
}
