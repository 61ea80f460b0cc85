package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/roles"
)

// ResourceKind tags which ownership chain a generic :id route resolves
// through. Routes declare their kind up front; the gate never inspects
// the fetched object to decide.
type ResourceKind int

const (
	KindBoard ResourceKind = iota
	KindList
	KindTask
	KindTag
)

// AccessGate resolves the entity chain named by path identifiers and
// rejects requests before any handler body runs. On success the
// resolved entities are attached to the request context.
type AccessGate struct {
	workspaces *repository.WorkspaceRepository
	boards     *repository.BoardRepository
	lists      *repository.ListRepository
	tasks      *repository.TaskRepository
	tags       *repository.TagRepository
}

func NewAccessGate(
	workspaces *repository.WorkspaceRepository,
	boards *repository.BoardRepository,
	lists *repository.ListRepository,
	tasks *repository.TaskRepository,
	tags *repository.TagRepository,
) *AccessGate {
	return &AccessGate{
		workspaces: workspaces,
		boards:     boards,
		lists:      lists,
		tasks:      tasks,
		tags:       tags,
	}
}

// WorkspaceAccess enforces, in order: workspace existence (a missing
// workspace is not-found, checked before membership), requester
// membership, and scope containment for every sub-entity named in the
// path. Each resolved entity lands on the echo context.
func (g *AccessGate) WorkspaceAccess() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			workspace, err := g.workspaces.FindByID(ctx, c.Param("workspaceID"))
			if err != nil {
				return err
			}

			user := CurrentUser(c)
			if user == nil {
				return apperrors.ErrNotAMember
			}

			membership, err := g.workspaces.FindMembership(ctx, workspace.ID, user.ID)
			if err != nil {
				return err
			}

			if boardID := c.Param("boardID"); boardID != "" {
				board, err := g.boards.FindByID(ctx, boardID)
				if err != nil {
					return err
				}
				if board.WorkspaceID != workspace.ID {
					return apperrors.ErrScopeMismatch
				}
				c.Set(ContextBoard, board)
			}

			if listID := c.Param("listID"); listID != "" {
				list, err := g.lists.FindByID(ctx, listID)
				if err != nil {
					return err
				}
				if list.Board.WorkspaceID != workspace.ID {
					return apperrors.ErrScopeMismatch
				}
				c.Set(ContextList, list)
			}

			if taskID := c.Param("taskID"); taskID != "" {
				task, err := g.tasks.FindByID(ctx, taskID)
				if err != nil {
					return err
				}
				if task.List.Board.WorkspaceID != workspace.ID {
					return apperrors.ErrScopeMismatch
				}
				c.Set(ContextTask, task)
			}

			c.Set(ContextWorkspace, workspace)
			c.Set(ContextMembership, membership)

			return next(c)
		}
	}
}

// ObjectAccess resolves a generic :id path segment through the
// resolver declared for the route's resource kind and verifies its
// ownership chain reaches the path workspace. Runs inside a
// WorkspaceAccess chain.
func (g *AccessGate) ObjectAccess(kind ResourceKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			workspace := CurrentWorkspace(c)
			if workspace == nil {
				return apperrors.ErrNotAMember
			}

			object, err := g.resolve(c.Request().Context(), kind, c.Param("id"), workspace.ID)
			if err != nil {
				return err
			}

			c.Set(ContextObject, object)
			return next(c)
		}
	}
}

func (g *AccessGate) resolve(ctx context.Context, kind ResourceKind, id, workspaceID string) (interface{}, error) {
	switch kind {
	case KindBoard:
		board, err := g.boards.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if board.WorkspaceID != workspaceID {
			return nil, apperrors.ErrScopeMismatch
		}
		return board, nil
	case KindList:
		list, err := g.lists.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if list.Board.WorkspaceID != workspaceID {
			return nil, apperrors.ErrScopeMismatch
		}
		return list, nil
	case KindTask:
		task, err := g.tasks.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if task.List.Board.WorkspaceID != workspaceID {
			return nil, apperrors.ErrScopeMismatch
		}
		return task, nil
	case KindTag:
		tag, err := g.tags.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if tag.WorkspaceID != workspaceID {
			return nil, apperrors.ErrScopeMismatch
		}
		return tag, nil
	}
	return nil, apperrors.ErrScopeMismatch
}

// CurrentObject returns the entity resolved by ObjectAccess.
func CurrentObject(c echo.Context) interface{} {
	return c.Get(ContextObject)
}

// RequireRole adds a role floor on top of the membership check.
func RequireRole(minimum roles.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			membership := CurrentMembership(c)
			if membership == nil {
				return apperrors.ErrNotAMember
			}

			if !roles.MeetsMinimum(roles.Role(membership.Role), minimum) {
				return apperrors.ErrInsufficientRole
			}

			return next(c)
		}
	}
}
