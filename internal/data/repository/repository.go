package repository

import (
	"ecommerce-store/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Product ProductRepository
	User    UserRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Product: NewProductRepository(db, log),
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
