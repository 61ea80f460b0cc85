package services

import (
	"context"
	"time"

	"flowdesk.com/flowdesk/internal/constants"
	dto "flowdesk.com/flowdesk/internal/data_models"
	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

type TaskService struct {
	tasks      *repository.TaskRepository
	tags       *repository.TagRepository
	workspaces *repository.WorkspaceRepository
	users      *repository.UserRepository
}

func NewTaskService(
	tasks *repository.TaskRepository,
	tags *repository.TagRepository,
	workspaces *repository.WorkspaceRepository,
	users *repository.UserRepository,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		tags:       tags,
		workspaces: workspaces,
		users:      users,
	}
}

// CreateTask appends the new task after its list's current siblings.
func (s *TaskService) CreateTask(
	ctx context.Context,
	list *model.List,
	creator *model.User,
	title, description string,
	priority constants.TaskPriority,
	deadline *time.Time,
) (*model.Task, error) {
	if !constants.ValidPriority(priority) {
		priority = constants.PriorityLow
	}

	max, err := s.tasks.MaxPosition(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	return s.tasks.Create(ctx, list.ID, creator.ID, title, description, priority, deadline, max+1)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindDetailed(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, task *model.Task, req *dto.TaskRequest) error {
	task.Title = req.Title
	task.Description = req.Description
	if p := constants.TaskPriority(req.Priority); constants.ValidPriority(p) {
		task.Priority = p
	}
	if st := constants.TaskStatus(req.Status); constants.ValidStatus(st) {
		task.Status = st
	}
	task.Deadline = req.Deadline

	return s.tasks.Update(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// ReorderTasks applies a client-submitted move batch scoped to one
// board, including cross-list moves. Tasks outside the board are
// silently dropped, and a submitted target list is applied only when
// it belongs to the same board, so a batch can never move a task into
// another board. Positions are persisted as-is in one transaction; no
// renumbering of untouched siblings happens.
func (s *TaskService) ReorderTasks(ctx context.Context, boardID string, moves []dto.TaskMove) error {
	if len(moves) == 0 {
		return nil
	}

	ids := make([]string, 0, len(moves))
	byID := make(map[string]dto.TaskMove, len(moves))
	for _, m := range moves {
		ids = append(ids, m.ID)
		byID[m.ID] = m
	}

	tasks, err := s.tasks.FindInBoard(ctx, boardID, ids)
	if err != nil {
		return err
	}

	listIDs, err := s.tasks.ListIDsInBoard(ctx, boardID)
	if err != nil {
		return err
	}
	boardLists := make(map[string]bool, len(listIDs))
	for _, id := range listIDs {
		boardLists[id] = true
	}

	changed := tasks[:0]
	for _, t := range tasks {
		move, ok := byID[t.ID]
		if !ok {
			continue
		}
		t.Position = move.Position
		if move.List != "" && boardLists[move.List] {
			t.ListID = move.List
		}
		changed = append(changed, t)
	}

	return s.tasks.UpdatePositions(ctx, changed)
}

// AddBlocker records that blocker must complete before task. Both
// tasks must live in the same workspace. Cycles are not rejected;
// traversal copes with them.
func (s *TaskService) AddBlocker(ctx context.Context, workspaceID string, task *model.Task, blockerID string) error {
	blocker, err := s.tasks.FindInWorkspace(ctx, workspaceID, blockerID)
	if err != nil {
		return err
	}
	return s.tasks.AddBlocker(ctx, task, blocker)
}

func (s *TaskService) RemoveBlocker(ctx context.Context, workspaceID string, task *model.Task, blockerID string) error {
	blocker, err := s.tasks.FindInWorkspace(ctx, workspaceID, blockerID)
	if err != nil {
		return err
	}
	return s.tasks.RemoveBlocker(ctx, task, blocker)
}

// TagTask attaches a workspace tag; tags from other workspaces resolve
// as not found.
func (s *TaskService) TagTask(ctx context.Context, workspaceID string, task *model.Task, tagID string) error {
	tag, err := s.findWorkspaceTag(ctx, workspaceID, tagID)
	if err != nil {
		return err
	}
	return s.tasks.AddTag(ctx, task, tag)
}

func (s *TaskService) UntagTask(ctx context.Context, workspaceID string, task *model.Task, tagID string) error {
	tag, err := s.findWorkspaceTag(ctx, workspaceID, tagID)
	if err != nil {
		return err
	}
	return s.tasks.RemoveTag(ctx, task, tag)
}

// AssignTask assigns a workspace member to the task.
func (s *TaskService) AssignTask(ctx context.Context, workspaceID string, task *model.Task, userID string) error {
	user, err := s.findWorkspaceMemberUser(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	return s.tasks.AddAssignee(ctx, task, user)
}

func (s *TaskService) UnassignTask(ctx context.Context, workspaceID string, task *model.Task, userID string) error {
	user, err := s.findWorkspaceMemberUser(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	return s.tasks.RemoveAssignee(ctx, task, user)
}

func (s *TaskService) findWorkspaceTag(ctx context.Context, workspaceID, tagID string) (*model.Tag, error) {
	tag, err := s.tags.FindByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag.WorkspaceID != workspaceID {
		return nil, apperrors.ErrTagNotFound
	}
	return tag, nil
}

// Only workspace members can be assigned; a non-member target reads as
// an unknown user, not as an authorization failure of the requester.
func (s *TaskService) findWorkspaceMemberUser(ctx context.Context, workspaceID, userID string) (*model.User, error) {
	if _, err := s.workspaces.FindMembership(ctx, workspaceID, userID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.users.FindByID(ctx, userID)
}
