package usecase

import (
	"ecommerce-store/internal/data/repository"
	"ecommerce-store/internal/mail"
	"ecommerce-store/internal/otp"
	"ecommerce-store/internal/storage"
	"ecommerce-store/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
	User    UserService
}

func NewService(
	repo *repository.Repository,
	challenges otp.PendingChallengeStore,
	mailer mail.Mailer,
	uploader storage.Uploader,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, challenges, mailer, config, log),
		Product: NewProductService(repo.Product, uploader, log),
		User:    NewUserService(repo.User, log),
	}
}
