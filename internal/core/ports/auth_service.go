package ports

import (
	"context"

	"github.com/arabshield/platform-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
