package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arabshield/platform-api/internal/core/domain"
)

type stubAuthRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (r *stubAuthRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmailFn(ctx, email)
}

func (r *stubAuthRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.createFn(ctx, user)
}

type stubProfiles struct {
	ensureFn func(ctx context.Context, userID, email, displayName string) (*domain.UserProfile, error)
}

func (p *stubProfiles) EnsureProfile(ctx context.Context, userID, email, displayName string) (*domain.UserProfile, error) {
	return p.ensureFn(ctx, userID, email, displayName)
}

func (p *stubProfiles) ResolveRole(context.Context, string) (domain.Role, error) {
	return "", nil
}

func (p *stubProfiles) ChangeRole(context.Context, domain.Actor, string, domain.Role) error {
	return nil
}

func openSettings() fixedSettings {
	return fixedSettings{domain.DefaultSettings()}
}

func TestAuthService_Register_Success(t *testing.T) {
	var created *domain.User
	repo := &stubAuthRepo{
		createFn: func(_ context.Context, user *domain.User) (*domain.User, error) {
			created = user
			return user, nil
		},
	}
	svc := NewAuthService(repo, &stubProfiles{}, openSettings(), "secret", time.Hour)

	user, err := svc.Register(context.Background(), "new@example.com", "password123", "New User")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if created == nil || created.Email != "new@example.com" {
		t.Fatalf("user not persisted: %+v", created)
	}
	if created.PasswordHash == "password123" || created.PasswordHash == "" {
		t.Fatalf("password stored unhashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_Register_ClosedGate(t *testing.T) {
	repo := &stubAuthRepo{
		createFn: func(context.Context, *domain.User) (*domain.User, error) {
			t.Fatalf("closed gate must not reach the repository")
			return nil, nil
		},
	}
	closed := domain.DefaultSettings()
	closed.AllowNewRegistrations = false
	svc := NewAuthService(repo, &stubProfiles{}, fixedSettings{closed}, "secret", time.Hour)

	_, err := svc.Register(context.Background(), "new@example.com", "password123", "")
	if !errors.Is(err, domain.ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubAuthRepo{
		createFn: func(context.Context, *domain.User) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	svc := NewAuthService(repo, &stubProfiles{}, openSettings(), "secret", time.Hour)

	_, err := svc.Register(context.Background(), "taken@example.com", "password123", "")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &stubAuthRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
		},
	}

	var ensured bool
	profiles := &stubProfiles{
		ensureFn: func(_ context.Context, userID, email, _ string) (*domain.UserProfile, error) {
			ensured = true
			return &domain.UserProfile{UserID: userID, Email: email, Role: domain.RoleClient}, nil
		},
	}
	svc := NewAuthService(repo, profiles, openSettings(), "secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "u1@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !ensured {
		t.Fatalf("profile must be ensured on verified login")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "u1" || claims["email"] != "u1@example.com" || claims["role"] != "client" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token missing expiry")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	repo := &stubAuthRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	profiles := &stubProfiles{
		ensureFn: func(context.Context, string, string, string) (*domain.UserProfile, error) {
			t.Fatalf("failed login must not create a profile")
			return nil, nil
		},
	}
	svc := NewAuthService(repo, profiles, openSettings(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "u1@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := &stubAuthRepo{
		findByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, &stubProfiles{}, openSettings(), "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(&stubAuthRepo{}, &stubProfiles{}, openSettings(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pw", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}
