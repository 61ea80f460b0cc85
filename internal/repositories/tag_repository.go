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

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create relies on the (name, workspace) unique constraint; a
// violation surfaces as ErrDuplicateTag for the handler to recover
// from.
func (r *TagRepository) Create(ctx context.Context, workspaceID, name string) (*model.Tag, error) {
	tag := &model.Tag{
		ID:          uuid.NewString(),
		Name:        name,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateTag
		}
		return nil, err
	}

	return tag, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTagNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) ListForWorkspace(ctx context.Context, workspaceID string) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("name asc").
		Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Tag{}, "id = ?", id).Error
}
