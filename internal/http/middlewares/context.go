package middleware

import (
	"github.com/labstack/echo/v4"

	model "flowdesk.com/flowdesk/internal/models"
)

// Context keys under which pre-validated entities are attached for
// downstream handlers. Handlers never re-resolve path identifiers.
const (
	ContextUser       = "user"
	ContextWorkspace  = "workspace"
	ContextMembership = "membership"
	ContextBoard      = "board"
	ContextList       = "list"
	ContextTask       = "task"
	ContextObject     = "object"
)

func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUser).(*model.User)
	return user
}

func CurrentWorkspace(c echo.Context) *model.Workspace {
	workspace, _ := c.Get(ContextWorkspace).(*model.Workspace)
	return workspace
}

func CurrentMembership(c echo.Context) *model.WorkspaceMember {
	membership, _ := c.Get(ContextMembership).(*model.WorkspaceMember)
	return membership
}

func CurrentBoard(c echo.Context) *model.Board {
	board, _ := c.Get(ContextBoard).(*model.Board)
	return board
}

func CurrentList(c echo.Context) *model.List {
	list, _ := c.Get(ContextList).(*model.List)
	return list
}

func CurrentTask(c echo.Context) *model.Task {
	task, _ := c.Get(ContextTask).(*model.Task)
	return task
}
