package services

import (
	"context"

	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

type TagService struct {
	tags *repository.TagRepository
}

func NewTagService(tags *repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) CreateTag(ctx context.Context, workspace *model.Workspace, name string) (*model.Tag, error) {
	return s.tags.Create(ctx, workspace.ID, name)
}

func (s *TagService) ListTags(ctx context.Context, workspaceID string) ([]model.Tag, error) {
	return s.tags.ListForWorkspace(ctx, workspaceID)
}

func (s *TagService) DeleteTag(ctx context.Context, id string) error {
	return s.tags.Delete(ctx, id)
}
