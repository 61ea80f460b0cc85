package services

import (
	"context"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/roles"
)

type WorkspaceService struct {
	workspaces *repository.WorkspaceRepository
}

func NewWorkspaceService(workspaces *repository.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaces: workspaces}
}

func (s *WorkspaceService) CreateWorkspace(ctx context.Context, owner *model.User, name, description string) (*model.Workspace, error) {
	return s.workspaces.CreateWithOwner(ctx, owner.ID, name, description)
}

func (s *WorkspaceService) ListWorkspaces(ctx context.Context, user *model.User) ([]model.Workspace, error) {
	return s.workspaces.ListForUser(ctx, user.ID)
}

func (s *WorkspaceService) GetWorkspace(ctx context.Context, id string) (*model.Workspace, error) {
	return s.workspaces.FindByIDWithBoards(ctx, id)
}

func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, workspace *model.Workspace, name, description string) error {
	workspace.Name = name
	workspace.Description = description
	return s.workspaces.Update(ctx, workspace)
}

func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id string) error {
	return s.workspaces.Delete(ctx, id)
}

func (s *WorkspaceService) ListMembers(ctx context.Context, workspaceID string) ([]model.WorkspaceMember, error) {
	return s.workspaces.ListMembers(ctx, workspaceID)
}

func (s *WorkspaceService) UpdateMemberRole(ctx context.Context, workspaceID, userID, roleName string) error {
	role, err := roles.Parse(roleName)
	if err != nil {
		return apperrors.ErrInvalidRole
	}
	return s.workspaces.UpdateMemberRole(ctx, workspaceID, userID, role)
}

func (s *WorkspaceService) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	return s.workspaces.RemoveMember(ctx, workspaceID, userID)
}
