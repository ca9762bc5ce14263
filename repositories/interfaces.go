package repositories

import (
	"context"

	"skizen/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type UserRepository interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (models.User, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (models.User, error)
}

type ListWorksInput struct {
	FeaturedOnly bool
	Limit        int
}

type WorkRepository interface {
	List(ctx context.Context, tx *gorm.DB, in ListWorksInput) ([]models.DesignWork, error)
	GetByID(ctx context.Context, tx *gorm.DB, workID uint) (models.DesignWork, error)
	Create(ctx context.Context, tx *gorm.DB, work *models.DesignWork) error
	UpdateByID(ctx context.Context, tx *gorm.DB, workID uint, updates map[string]interface{}) error
	DeleteByID(ctx context.Context, tx *gorm.DB, workID uint) error
}

type Container struct {
	TxManager TxManager
	Users     UserRepository
	Works     WorkRepository
}
