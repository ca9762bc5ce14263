package repositories

import (
	"context"

	"skizen/models"

	"gorm.io/gorm"
)

type GormWorkRepository struct {
	db *gorm.DB
}

func NewGormWorkRepository(db *gorm.DB) *GormWorkRepository {
	return &GormWorkRepository{db: db}
}

func (r *GormWorkRepository) List(_ context.Context, tx *gorm.DB, in ListWorksInput) ([]models.DesignWork, error) {
	query := useTx(r.db, tx).Model(&models.DesignWork{}).Order("created_at DESC")
	if in.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if in.Limit > 0 {
		query = query.Limit(in.Limit)
	}

	var works []models.DesignWork
	err := query.Find(&works).Error
	return works, err
}

func (r *GormWorkRepository) GetByID(_ context.Context, tx *gorm.DB, workID uint) (models.DesignWork, error) {
	var work models.DesignWork
	err := useTx(r.db, tx).First(&work, workID).Error
	return work, err
}

func (r *GormWorkRepository) Create(_ context.Context, tx *gorm.DB, work *models.DesignWork) error {
	return useTx(r.db, tx).Create(work).Error
}

func (r *GormWorkRepository) UpdateByID(_ context.Context, tx *gorm.DB, workID uint, updates map[string]interface{}) error {
	result := useTx(r.db, tx).Model(&models.DesignWork{}).Where("id = ?", workID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormWorkRepository) DeleteByID(_ context.Context, tx *gorm.DB, workID uint) error {
	return useTx(r.db, tx).Delete(&models.DesignWork{}, workID).Error
}
