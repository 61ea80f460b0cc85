package services

import (
	"context"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/roles"
)

type CommentService struct {
	comments *repository.CommentRepository
}

func NewCommentService(comments *repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) CreateComment(ctx context.Context, task *model.Task, author *model.User, text string) (*model.Comment, error) {
	return s.comments.Create(ctx, task.ID, author.ID, text)
}

func (s *CommentService) ListComments(ctx context.Context, taskID string) ([]model.Comment, error) {
	return s.comments.ListForTask(ctx, taskID)
}

// DeleteComment is allowed for the author and for ADMIN-or-above
// members. The comment must belong to the gated task: the requester's
// role only carries weight in the workspace the task was resolved
// through, so a comment reached by bare id from elsewhere is rejected.
func (s *CommentService) DeleteComment(ctx context.Context, task *model.Task, commentID string, requester *model.User, requesterRole roles.Role) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.TaskID != task.ID {
		return apperrors.ErrScopeMismatch
	}

	if comment.CreatedByID != requester.ID && !roles.MeetsMinimum(requesterRole, roles.Admin) {
		return apperrors.ErrInsufficientRole
	}

	return s.comments.Delete(ctx, comment.ID)
}
