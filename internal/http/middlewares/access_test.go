package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/roles"
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

type gateFixture struct {
	gate       *AccessGate
	workspaces *repository.WorkspaceRepository
	boards     *repository.BoardRepository
	lists      *repository.ListRepository
	tags       *repository.TagRepository
	users      *repository.UserRepository

	owner     *model.User
	outsider  *model.User
	workspace *model.Workspace
	board     *model.Board
}

func newGateFixture(t *testing.T) *gateFixture {
	db := setupTestDB(t)
	ctx := context.Background()

	f := &gateFixture{
		workspaces: repository.NewWorkspaceRepository(db),
		boards:     repository.NewBoardRepository(db),
		lists:      repository.NewListRepository(db),
		tags:       repository.NewTagRepository(db),
		users:      repository.NewUserRepository(db),
	}
	f.gate = NewAccessGate(
		f.workspaces,
		f.boards,
		f.lists,
		repository.NewTaskRepository(db),
		f.tags,
	)

	var err error
	if f.owner, err = f.users.Create(ctx, "owner", "owner@example.com", "hash"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if f.outsider, err = f.users.Create(ctx, "outsider", "out@example.com", "hash"); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if f.workspace, err = f.workspaces.CreateWithOwner(ctx, f.owner.ID, "WS", ""); err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	if f.board, err = f.boards.Create(ctx, f.workspace.ID, "B", ""); err != nil {
		t.Fatalf("failed to create board: %v", err)
	}

	return f
}

// newRequestContext builds an echo context carrying the given path
// parameters and an already authenticated user, the state the gate
// sees after the authentication middleware ran.
func newRequestContext(user *model.User, names, values []string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if user != nil {
		c.Set(ContextUser, user)
	}
	return c
}

func pass(c echo.Context) error { return nil }

func TestWorkspaceAccessAttachesEntities(t *testing.T) {
	f := newGateFixture(t)

	c := newRequestContext(f.owner,
		[]string{"workspaceID", "boardID"},
		[]string{f.workspace.ID, f.board.ID})

	err := f.gate.WorkspaceAccess()(pass)(c)
	if err != nil {
		t.Fatalf("expected access, got %v", err)
	}

	if ws := CurrentWorkspace(c); ws == nil || ws.ID != f.workspace.ID {
		t.Error("workspace not attached to context")
	}
	if m := CurrentMembership(c); m == nil || m.Role != string(roles.Owner) {
		t.Error("membership not attached to context")
	}
	if b := CurrentBoard(c); b == nil || b.ID != f.board.ID {
		t.Error("board not attached to context")
	}
}

func TestWorkspaceAccessRejectsNonMember(t *testing.T) {
	f := newGateFixture(t)

	c := newRequestContext(f.outsider,
		[]string{"workspaceID"}, []string{f.workspace.ID})

	err := f.gate.WorkspaceAccess()(pass)(c)
	if !errors.Is(err, apperrors.ErrNotAMember) {
		t.Fatalf("expected ErrNotAMember, got %v", err)
	}
	if apperrors.StatusCode(err) != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", apperrors.StatusCode(err))
	}
	if err.Error() != "access denied" {
		t.Errorf("membership detail leaked: %q", err.Error())
	}
}

func TestWorkspaceAccessMissingWorkspaceIsNotFound(t *testing.T) {
	f := newGateFixture(t)

	// existence is checked before membership, so even an outsider
	// learns only that the workspace does not exist
	c := newRequestContext(f.outsider,
		[]string{"workspaceID"}, []string{"missing"})

	err := f.gate.WorkspaceAccess()(pass)(c)
	if !errors.Is(err, apperrors.ErrWorkspaceNotFound) {
		t.Fatalf("expected ErrWorkspaceNotFound, got %v", err)
	}
	if apperrors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apperrors.StatusCode(err))
	}
}

func TestWorkspaceAccessRejectsBoardFromOtherWorkspace(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()

	other, err := f.workspaces.CreateWithOwner(ctx, f.owner.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	foreign, err := f.boards.Create(ctx, other.ID, "Foreign", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}

	c := newRequestContext(f.owner,
		[]string{"workspaceID", "boardID"},
		[]string{f.workspace.ID, foreign.ID})

	err = f.gate.WorkspaceAccess()(pass)(c)
	if !errors.Is(err, apperrors.ErrScopeMismatch) {
		t.Fatalf("expected ErrScopeMismatch, got %v", err)
	}
	if err.Error() != "access denied" {
		t.Errorf("scope detail leaked: %q", err.Error())
	}
}

func TestObjectAccessResolvesTagInWorkspace(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()

	tag, err := f.tags.Create(ctx, f.workspace.ID, "urgent")
	if err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}

	c := newRequestContext(f.owner, []string{"id"}, []string{tag.ID})
	c.Set(ContextWorkspace, f.workspace)

	err = f.gate.ObjectAccess(KindTag)(pass)(c)
	if err != nil {
		t.Fatalf("expected access, got %v", err)
	}

	got, ok := CurrentObject(c).(*model.Tag)
	if !ok || got.ID != tag.ID {
		t.Errorf("tag not attached to context, got %#v", CurrentObject(c))
	}
}

func TestObjectAccessRejectsTagFromOtherWorkspace(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()

	other, err := f.workspaces.CreateWithOwner(ctx, f.owner.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	foreign, err := f.tags.Create(ctx, other.ID, "urgent")
	if err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}

	c := newRequestContext(f.owner, []string{"id"}, []string{foreign.ID})
	c.Set(ContextWorkspace, f.workspace)

	err = f.gate.ObjectAccess(KindTag)(pass)(c)
	if !errors.Is(err, apperrors.ErrScopeMismatch) {
		t.Errorf("expected ErrScopeMismatch, got %v", err)
	}
}

func TestRequireRoleEnforcesFloor(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()

	if _, err := f.workspaces.AddMember(ctx, f.workspace.ID, f.outsider.ID, roles.Guest); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	c := newRequestContext(f.outsider,
		[]string{"workspaceID"}, []string{f.workspace.ID})
	if err := f.gate.WorkspaceAccess()(pass)(c); err != nil {
		t.Fatalf("guest denied workspace access: %v", err)
	}

	err := RequireRole(roles.Admin)(pass)(c)
	if !errors.Is(err, apperrors.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}
	if err.Error() != "access denied" {
		t.Errorf("role detail leaked: %q", err.Error())
	}

	if err := RequireRole(roles.Guest)(pass)(c); err != nil {
		t.Errorf("guest rejected at guest floor: %v", err)
	}
}
