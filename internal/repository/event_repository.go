package repository

import (
	"context"

	"gorm.io/gorm"

	"eventadmin/internal/model"
)

// EventRepository defines event persistence operations. Writes are scoped to
// an organizer so one organizer can never touch another's rows.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	ListByOrganizer(ctx context.Context, organizerID uint) ([]model.Event, error)
	// UpdateOwned updates the event only if it belongs to organizerID and
	// returns the number of rows changed.
	UpdateOwned(ctx context.Context, id, organizerID uint, values map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, id, organizerID uint) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID uint) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("date").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) UpdateOwned(ctx context.Context, id, organizerID uint, values map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ? AND organizer_id = ?", id, organizerID).
		Updates(values)
	return res.RowsAffected, res.Error
}

func (r *eventRepository) DeleteOwned(ctx context.Context, id, organizerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND organizer_id = ?", id, organizerID).
		Delete(&model.Event{})
	return res.RowsAffected, res.Error
}
