package adaptor

import (
	"ecommerce-store/internal/usecase"
	"ecommerce-store/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config.Session, log),
		Product: NewProductHandler(service.Product, log),
		User:    NewUserHandler(service.User, log),
	}
}
