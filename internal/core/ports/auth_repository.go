package ports

import (
	"context"

	"github.com/animalia/listing-system/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByHandleName(ctx context.Context, handleName string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
