package adaptor

import (
	"net/http"

	"ecommerce-store/internal/usecase"
	"ecommerce-store/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetUsers(r.Context())
	if err != nil {
		h.log.Error("Failed to get users", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
