package ports

import (
	"context"

	"github.com/animalia/listing-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, handleName, emailAddress, password string) (*domain.User, error)
	Login(ctx context.Context, handleName, password string) (string, *domain.User, error)
}
