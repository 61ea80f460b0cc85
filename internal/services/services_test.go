package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.WorkspaceMember{},
		&model.Board{},
		&model.List{},
		&model.Tag{},
		&model.Task{},
		&model.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

// boardFixture seeds one owner, one workspace and one board, the
// smallest world most ordering and graph tests need.
type boardFixture struct {
	db         *gorm.DB
	users      *repository.UserRepository
	workspaces *repository.WorkspaceRepository
	boards     *repository.BoardRepository
	lists      *repository.ListRepository
	tasks      *repository.TaskRepository
	tags       *repository.TagRepository

	owner     *model.User
	workspace *model.Workspace
	board     *model.Board
}

func newBoardFixture(t *testing.T) *boardFixture {
	db := setupTestDB(t)
	ctx := context.Background()

	f := &boardFixture{
		db:         db,
		users:      repository.NewUserRepository(db),
		workspaces: repository.NewWorkspaceRepository(db),
		boards:     repository.NewBoardRepository(db),
		lists:      repository.NewListRepository(db),
		tasks:      repository.NewTaskRepository(db),
		tags:       repository.NewTagRepository(db),
	}

	owner, err := f.users.Create(ctx, "owner", "owner@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}
	f.owner = owner

	workspace, err := f.workspaces.CreateWithOwner(ctx, owner.ID, "WS", "")
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	f.workspace = workspace

	board, err := f.boards.Create(ctx, workspace.ID, "B", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	f.board = board

	return f
}

func (f *boardFixture) mustCreateList(t *testing.T, name string) *model.List {
	list, err := NewListService(f.lists).CreateList(context.Background(), f.board, name)
	if err != nil {
		t.Fatalf("failed to create list %s: %v", name, err)
	}
	return list
}

func (f *boardFixture) taskService() *TaskService {
	return NewTaskService(f.tasks, f.tags, f.workspaces, f.users)
}

func (f *boardFixture) mustCreateTask(t *testing.T, list *model.List, title string) *model.Task {
	task, err := f.taskService().CreateTask(context.Background(), list, f.owner, title, "", "", nil)
	if err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}
