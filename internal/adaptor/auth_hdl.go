package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ecommerce-store/internal/dto/request"
	"ecommerce-store/internal/usecase"
	"ecommerce-store/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	session utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, session utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		session: session,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.Signup(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	utils.ResponseCreated(w, "User created successfully", nil)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// SendOTP handles POST /api/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SendOTP(r.Context(), req.Email); err != nil {
		h.handleServiceError(w, err, "send OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent to email", nil)
}

// VerifyOTP handles POST /api/verify-otp and sets the session cookie
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    session.Token.String(),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "OTP verified", nil)
}

// CheckAuth handles GET /api/check-auth
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CheckAuth(r.Context(), h.sessionToken(r))
	if err != nil {
		h.handleServiceError(w, err, "check auth")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/logout and clears the session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), h.sessionToken(r)); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.ResponseSuccess(w, "Logged out", nil)
}

func (h *AuthHandler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// handleServiceError maps the error taxonomy onto status codes
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrDuplicateUser):
		h.log.Warn(operation+" failed - duplicate user", zap.Error(err))
		utils.ResponseBadRequest(w, "User already exists", nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid credentials", nil)

	case errors.Is(err, usecase.ErrInvalidOTP):
		h.log.Warn(operation+" failed - invalid OTP", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid OTP", nil)

	case errors.Is(err, usecase.ErrDelivery):
		h.log.Error(operation+" failed - delivery", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send OTP")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
