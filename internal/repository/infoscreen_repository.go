package repository

import (
	"context"

	"gorm.io/gorm"

	"eventadmin/internal/model"
)

// InfoScreenRepository defines info-screen persistence operations.
type InfoScreenRepository interface {
	Create(ctx context.Context, screen *model.InfoScreen) error
	List(ctx context.Context) ([]model.InfoScreen, error)
	FindByID(ctx context.Context, id uint) (*model.InfoScreen, error)
	Update(ctx context.Context, id uint, values map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type infoScreenRepository struct {
	db *gorm.DB
}

// NewInfoScreenRepository builds a GORM-backed repository.
func NewInfoScreenRepository(db *gorm.DB) InfoScreenRepository {
	return &infoScreenRepository{db: db}
}

func (r *infoScreenRepository) Create(ctx context.Context, screen *model.InfoScreen) error {
	return r.db.WithContext(ctx).Create(screen).Error
}

func (r *infoScreenRepository) List(ctx context.Context) ([]model.InfoScreen, error) {
	var screens []model.InfoScreen
	if err := r.db.WithContext(ctx).Order("position").Find(&screens).Error; err != nil {
		return nil, err
	}
	return screens, nil
}

func (r *infoScreenRepository) FindByID(ctx context.Context, id uint) (*model.InfoScreen, error) {
	var screen model.InfoScreen
	if err := r.db.WithContext(ctx).First(&screen, id).Error; err != nil {
		return nil, err
	}
	return &screen, nil
}

func (r *infoScreenRepository) Update(ctx context.Context, id uint, values map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.InfoScreen{}).
		Where("id = ?", id).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (r *infoScreenRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.InfoScreen{}, id)
	return res.RowsAffected, res.Error
}
