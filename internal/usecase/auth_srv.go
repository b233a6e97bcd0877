package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-store/internal/data/entity"
	"ecommerce-store/internal/data/repository"
	"ecommerce-store/internal/dto/request"
	"ecommerce-store/internal/dto/response"
	"ecommerce-store/internal/mail"
	"ecommerce-store/internal/otp"
	"ecommerce-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*entity.Session, error)
	CheckAuth(ctx context.Context, token string) (*response.CheckAuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo       *repository.Repository
	challenges otp.PendingChallengeStore
	mailer     mail.Mailer
	config     *utils.Config
	log        *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	challenges otp.PendingChallengeStore,
	mailer mail.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:       repo,
		challenges: challenges,
		mailer:     mailer,
		config:     config,
		log:        log.With(zap.String("service", "auth")),
	}
}

// Signup stores a bcrypt hash keyed by email. Does not establish a session.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) error {
	// 1. Check email is not taken. The unique index on users.email backs
	// this up if two signups race past the lookup.
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return ErrDuplicateUser
	}

	// 2. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	// 3. Save user
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:        req.Email,
		PasswordHash: hashed,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered", zap.String("email", user.Email))
	return nil
}

// Login issues a signed bearer token. It does not touch the cookie session
// used by the OTP path; the two mechanisms are independent.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	validity := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateJWT(user.ID.String(), s.config.JWT.Secret, validity)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User logged in", zap.String("email", user.Email))
	return &response.TokenResponse{Token: token}, nil
}

// SendOTP dispatches a fresh code and only then records it, so a failed
// delivery leaves no live challenge behind and resend works immediately.
func (s *authService) SendOTP(ctx context.Context, email string) error {
	code := utils.GenerateOTP()

	if err := s.mailer.SendOTP(email, code); err != nil {
		s.log.Error("Failed to deliver OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	ttl := time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute
	s.challenges.Put(email, code, ttl)

	s.log.Info("OTP sent",
		zap.String("email", email),
		zap.Duration("ttl", ttl),
	)

	return nil
}

// VerifyOTP consumes the pending code on success and establishes a session.
// A mismatch leaves the code intact so the user may retry.
func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*entity.Session, error) {
	pending, ok := s.challenges.Get(req.Email)
	if !ok {
		s.log.Warn("No pending OTP", zap.String("email", req.Email))
		return nil, ErrInvalidOTP
	}
	if pending != req.OTP {
		s.log.Warn("OTP mismatch", zap.String("email", req.Email))
		return nil, ErrInvalidOTP
	}

	// One-time use: consume before the session exists so a replay with the
	// same code fails even if session creation errors out.
	s.challenges.Delete(req.Email)

	session := &entity.Session{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Token:     uuid.New(),
		Email:     req.Email,
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("OTP verified", zap.String("email", req.Email))
	return session, nil
}

func (s *authService) CheckAuth(ctx context.Context, token string) (*response.CheckAuthResponse, error) {
	if token == "" {
		return &response.CheckAuthResponse{Authenticated: false}, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return &response.CheckAuthResponse{Authenticated: false}, nil
	}

	return &response.CheckAuthResponse{
		Authenticated: true,
		User:          session.Email,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}
