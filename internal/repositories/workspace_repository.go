package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	"flowdesk.com/flowdesk/internal/roles"
)

type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// CreateWithOwner creates the workspace and the creator's OWNER
// membership in one transaction so a workspace is never observable
// without an owner.
func (r *WorkspaceRepository) CreateWithOwner(ctx context.Context, ownerID, name, description string) (*model.Workspace, error) {
	workspace := &model.Workspace{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}

		membership := &model.WorkspaceMember{
			ID:          uuid.NewString(),
			UserID:      ownerID,
			WorkspaceID: workspace.ID,
			Role:        string(roles.Owner),
		}
		return tx.Create(membership).Error
	})
	if err != nil {
		return nil, err
	}

	return workspace, nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id string) (*model.Workspace, error) {
	var workspace model.Workspace
	err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepository) FindByIDWithBoards(ctx context.Context, id string) (*model.Workspace, error) {
	var workspace model.Workspace
	err := r.db.WithContext(ctx).
		Preload("Boards", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&workspace, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepository) ListForUser(ctx context.Context, userID string) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := r.db.WithContext(ctx).
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ?", userID).
		Order("workspaces.created_at asc").
		Find(&workspaces).Error
	return workspaces, err
}

func (r *WorkspaceRepository) Update(ctx context.Context, workspace *model.Workspace) error {
	return r.db.WithContext(ctx).Model(workspace).
		Updates(map[string]interface{}{
			"name":        workspace.Name,
			"description": workspace.Description,
		}).Error
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Workspace{}, "id = ?", id).Error
}

func (r *WorkspaceRepository) FindMembership(ctx context.Context, workspaceID, userID string) (*model.WorkspaceMember, error) {
	var membership model.WorkspaceMember
	err := r.db.WithContext(ctx).
		First(&membership, "workspace_id = ? AND user_id = ?", workspaceID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotAMember
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *WorkspaceRepository) AddMember(ctx context.Context, workspaceID, userID string, role roles.Role) (*model.WorkspaceMember, error) {
	membership := &model.WorkspaceMember{
		ID:          uuid.NewString(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        string(role),
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		return nil, err
	}

	return membership, nil
}

func (r *WorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]model.WorkspaceMember, error) {
	var members []model.WorkspaceMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("workspace_id = ?", workspaceID).
		Order("created_at asc").
		Find(&members).Error
	return members, err
}

func (r *WorkspaceRepository) UpdateMemberRole(ctx context.Context, workspaceID, userID string, role roles.Role) error {
	res := r.db.WithContext(ctx).Model(&model.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Update("role", string(role))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *WorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	res := r.db.WithContext(ctx).
		Delete(&model.WorkspaceMember{}, "workspace_id = ? AND user_id = ?", workspaceID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
