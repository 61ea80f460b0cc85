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

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, workspaceID, name, description string) (*model.Board, error) {
	board := &model.Board{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return nil, err
	}

	return board, nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithLists loads the board with lists and their tasks in
// display order.
func (r *BoardRepository) FindByIDWithLists(ctx context.Context, id string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Preload("Lists", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Lists.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&board, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Model(board).
		Updates(map[string]interface{}{
			"name":        board.Name,
			"description": board.Description,
		}).Error
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Board{}, "id = ?", id).Error
}
