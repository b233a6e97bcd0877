package usecase

import (
	"context"
	"errors"
	"testing"

	"ecommerce-store/internal/data/entity"
	"ecommerce-store/internal/data/repository"
	"ecommerce-store/internal/dto/request"
	"ecommerce-store/internal/otp"
	"ecommerce-store/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- fakes ---

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]entity.User, error) {
	var all []entity.User
	for _, u := range f.users {
		all = append(all, *u)
	}
	return all, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeMailer struct {
	lastTo   string
	lastCode string
	err      error
}

func (f *fakeMailer) SendOTP(to, code string) error {
	if f.err != nil {
		return f.err
	}
	f.lastTo = to
	f.lastCode = code
	return nil
}

func newAuthService(t *testing.T, mailer *fakeMailer) (AuthService, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	repo := &repository.Repository{User: users, Session: sessions}

	config := &utils.Config{
		JWT:     utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		OTP:     utils.OTPConfig{ExpiryMinutes: 10},
		Session: utils.SessionConfig{CookieName: "session_token", ExpiryHours: 24},
	}

	svc := NewAuthService(repo, otp.NewMemoryStore(), mailer, config, zap.NewNop())
	return svc, users, sessions
}

// --- tests ---

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t, &fakeMailer{})
	ctx := context.Background()

	req := &request.SignupRequest{Email: "a@x.com", Password: "secret1"}
	require.NoError(t, svc.Signup(ctx, req))

	err := svc.Signup(ctx, req)
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestSignupStoresHashNotPassword(t *testing.T) {
	svc, users, _ := newAuthService(t, &fakeMailer{})
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Email: "a@x.com", Password: "secret1"}))

	stored := users.users["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", stored.PasswordHash))
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t, &fakeMailer{})
	ctx := context.Background()

	// Unknown email
	_, err := svc.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Wrong password
	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Email: "a@x.com", Password: "secret1"}))
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesBearerToken(t *testing.T) {
	svc, users, sessions := newAuthService(t, &fakeMailer{})
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &request.SignupRequest{Email: "a@x.com", Password: "secret1"}))

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, err := utils.GetUserIDFromJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, users.users["a@x.com"].ID.String(), userID)

	// Token login never establishes a cookie session
	assert.Empty(t, sessions.sessions)
}

func TestOTPRoundTrip(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _, sessions := newAuthService(t, mailer)
	ctx := context.Background()

	require.NoError(t, svc.SendOTP(ctx, "a@x.com"))
	assert.Equal(t, "a@x.com", mailer.lastTo)
	require.Len(t, mailer.lastCode, 6)

	session, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "a@x.com", OTP: mailer.lastCode})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Len(t, sessions.sessions, 1)

	// Replay with the consumed code fails
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "a@x.com", OTP: mailer.lastCode})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPMismatchLeavesChallengeIntact(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _, _ := newAuthService(t, mailer)
	ctx := context.Background()

	require.NoError(t, svc.SendOTP(ctx, "a@x.com"))

	wrong := "000000"
	if wrong == mailer.lastCode {
		wrong = "000001"
	}

	_, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "a@x.com", OTP: wrong})
	require.ErrorIs(t, err, ErrInvalidOTP)

	// The pending code survived the mismatch
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "a@x.com", OTP: mailer.lastCode})
	assert.NoError(t, err)
}

func TestVerifyOTPWithoutChallenge(t *testing.T) {
	svc, _, _ := newAuthService(t, &fakeMailer{})

	_, err := svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestSendOTPDeliveryFailureStoresNothing(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc, _, _ := newAuthService(t, mailer)
	ctx := context.Background()

	err := svc.SendOTP(ctx, "a@x.com")
	require.ErrorIs(t, err, ErrDelivery)

	// No live challenge was left behind, so any code is invalid
	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestCheckAuthAndLogout(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _, _ := newAuthService(t, mailer)
	ctx := context.Background()

	// Unauthenticated without a token
	resp, err := svc.CheckAuth(ctx, "")
	require.NoError(t, err)
	assert.False(t, resp.Authenticated)

	require.NoError(t, svc.SendOTP(ctx, "a@x.com"))
	session, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "a@x.com", OTP: mailer.lastCode})
	require.NoError(t, err)

	token := session.Token.String()

	resp, err = svc.CheckAuth(ctx, token)
	require.NoError(t, err)
	assert.True(t, resp.Authenticated)
	assert.Equal(t, "a@x.com", resp.User)

	require.NoError(t, svc.Logout(ctx, token))

	resp, err = svc.CheckAuth(ctx, token)
	require.NoError(t, err)
	assert.False(t, resp.Authenticated)
}
