package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
)

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, boardID, name string, position int) (*model.List, error) {
	list := &model.List{
		ID:        uuid.NewString(),
		Name:      name,
		BoardID:   boardID,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

func (r *ListRepository) FindByID(ctx context.Context, id string) (*model.List, error) {
	var list model.List
	err := r.db.WithContext(ctx).Preload("Board").First(&list, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrListNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) ListForBoard(ctx context.Context, boardID string) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position asc").
		Find(&lists).Error
	return lists, err
}

// MaxPosition returns 0 for a board with no lists.
func (r *ListRepository) MaxPosition(ctx context.Context, boardID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("board_id = ?", boardID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

// FindInBoard fetches only the submitted ids that actually belong to
// the board; ids outside it are dropped here, which is the scope
// boundary for client-supplied reorder batches.
func (r *ListRepository) FindInBoard(ctx context.Context, boardID string, ids []string) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND id IN ?", boardID, ids).
		Find(&lists).Error
	return lists, err
}

// UpdatePositions persists a reorder batch atomically, touching only
// the position column.
func (r *ListRepository) UpdatePositions(ctx context.Context, lists []model.List) error {
	if len(lists) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lists {
			err := tx.Model(&model.List{}).
				Where("id = ?", lists[i].ID).
				Update("position", lists[i].Position).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ListRepository) Rename(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Model(list).Update("name", list.Name).Error
}

func (r *ListRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.List{}, "id = ?", id).Error
}
