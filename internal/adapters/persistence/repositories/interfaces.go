package repositories

import (
	"context"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"
)

// MemberRepository defines the record store.
// Errors are gorm errors: gorm.ErrRecordNotFound for a missing id and
// gorm.ErrDuplicatedKey for a national id clash (requires TranslateError).
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	ListAll(ctx context.Context, orderBy domain.OrderBy) ([]*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string, offset, limit int) ([]*models.Member, int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
