package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowdesk.com/flowdesk/internal/constants"
	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(
	ctx context.Context,
	listID, createdByID, title, description string,
	priority constants.TaskPriority,
	deadline *time.Time,
	position int,
) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      constants.StatusTodo,
		Deadline:    deadline,
		ListID:      listID,
		Position:    position,
		CreatedByID: createdByID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("List.Board").First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindDetailed loads the task with its relations for the detail view.
func (r *TaskRepository) FindDetailed(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("List").
		Preload("Tags").
		Preload("Assignees").
		Preload("BlockingTasks").
		First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindInWorkspace resolves a task only if its ownership chain reaches
// the given workspace.
func (r *TaskRepository) FindInWorkspace(ctx context.Context, workspaceID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN lists ON lists.id = tasks.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("boards.workspace_id = ? AND tasks.id = ?", workspaceID, id).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// MaxPosition returns 0 for a list with no tasks.
func (r *TaskRepository) MaxPosition(ctx context.Context, listID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("list_id = ?", listID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}

// FindInBoard fetches only the submitted ids whose current list
// belongs to the board; ids outside it are dropped here.
func (r *TaskRepository) FindInBoard(ctx context.Context, boardID string, ids []string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN lists ON lists.id = tasks.list_id").
		Where("lists.board_id = ? AND tasks.id IN ?", boardID, ids).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListIDsInBoard(ctx context.Context, boardID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("board_id = ?", boardID).
		Pluck("id", &ids).Error
	return ids, err
}

// UpdatePositions persists a reorder batch atomically, touching only
// position and list_id.
func (r *TaskRepository) UpdatePositions(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range tasks {
			err := tx.Model(&model.Task{}).
				Where("id = ?", tasks[i].ID).
				Updates(map[string]interface{}{
					"position": tasks[i].Position,
					"list_id":  tasks[i].ListID,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Model(task).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"status":      task.Status,
			"deadline":    task.Deadline,
		}).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

// Blockers returns the tasks that must complete before the given one.
func (r *TaskRepository) Blockers(ctx context.Context, taskID string) ([]model.Task, error) {
	var blockers []model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN task_blockers ON task_blockers.blocker_id = tasks.id").
		Where("task_blockers.task_id = ?", taskID).
		Find(&blockers).Error
	return blockers, err
}

// Blocking returns the inverse edge set: tasks that have the given one
// among their blockers.
func (r *TaskRepository) Blocking(ctx context.Context, taskID string) ([]model.Task, error) {
	var blocked []model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN task_blockers ON task_blockers.task_id = tasks.id").
		Where("task_blockers.blocker_id = ?", taskID).
		Find(&blocked).Error
	return blocked, err
}

// FindForWorkspace materializes a collected id set in one fetch,
// scoped to the workspace through the ownership chain. Lists come
// preloaded for tooltip rendering.
func (r *TaskRepository) FindForWorkspace(ctx context.Context, workspaceID string, ids []string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("List").
		Joins("JOIN lists ON lists.id = tasks.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("boards.workspace_id = ? AND tasks.id IN ?", workspaceID, ids).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) AddBlocker(ctx context.Context, task, blocker *model.Task) error {
	return r.db.WithContext(ctx).Model(task).
		Association("BlockingTasks").Append(blocker)
}

func (r *TaskRepository) RemoveBlocker(ctx context.Context, task, blocker *model.Task) error {
	return r.db.WithContext(ctx).Model(task).
		Association("BlockingTasks").Delete(blocker)
}

func (r *TaskRepository) AddTag(ctx context.Context, task *model.Task, tag *model.Tag) error {
	return r.db.WithContext(ctx).Model(task).Association("Tags").Append(tag)
}

func (r *TaskRepository) RemoveTag(ctx context.Context, task *model.Task, tag *model.Tag) error {
	return r.db.WithContext(ctx).Model(task).Association("Tags").Delete(tag)
}

func (r *TaskRepository) AddAssignee(ctx context.Context, task *model.Task, user *model.User) error {
	return r.db.WithContext(ctx).Model(task).Association("Assignees").Append(user)
}

func (r *TaskRepository) RemoveAssignee(ctx context.Context, task *model.Task, user *model.User) error {
	return r.db.WithContext(ctx).Model(task).Association("Assignees").Delete(user)
}
