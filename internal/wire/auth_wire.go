package wire

import (
	"ecommerce-store/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Password authentication (bearer token)
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/login", authHandler.Login)

	// OTP authentication (cookie session)
	r.Post("/api/send-otp", authHandler.SendOTP)
	r.Post("/api/verify-otp", authHandler.VerifyOTP)
	r.Get("/api/check-auth", authHandler.CheckAuth)
	r.Post("/api/logout", authHandler.Logout)
}
