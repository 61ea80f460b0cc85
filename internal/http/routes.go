package http

import (
	"github.com/labstack/echo/v4"

	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/roles"
)

// Register wires the route tree. The access gate runs on every
// workspace-scoped group, so handlers below it only ever see
// pre-validated, scope-consistent entities.
func Register(e *echo.Echo, h *Handler, gate *middleware.AccessGate, authenticate echo.MiddlewareFunc) {
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)

	api := e.Group("", authenticate)

	api.GET("/workspaces", h.ListWorkspaces)
	api.POST("/workspaces", h.CreateWorkspace)
	api.POST("/workspaces/join", h.JoinWorkspace)

	ws := api.Group("/workspaces/:workspaceID", gate.WorkspaceAccess())
	ws.GET("", h.GetWorkspace)
	ws.PUT("", h.UpdateWorkspace, middleware.RequireRole(roles.Admin))
	ws.DELETE("", h.DeleteWorkspace, middleware.RequireRole(roles.Owner))

	ws.GET("/members", h.ListMembers)
	ws.POST("/members/:userID/role", h.UpdateMemberRole, middleware.RequireRole(roles.Admin))
	ws.DELETE("/members/:userID", h.RemoveMember, middleware.RequireRole(roles.Admin))
	ws.POST("/invites", h.CreateInvite, middleware.RequireRole(roles.Admin))

	ws.GET("/tags", h.ListTags)
	ws.POST("/tags", h.CreateTag, middleware.RequireRole(roles.User))
	ws.DELETE("/tags/:id", h.DeleteTag, gate.ObjectAccess(middleware.KindTag), middleware.RequireRole(roles.Admin))

	ws.POST("/boards", h.CreateBoard, middleware.RequireRole(roles.Admin))

	board := ws.Group("/boards/:boardID")
	board.GET("", h.GetBoard)
	board.PUT("", h.UpdateBoard, middleware.RequireRole(roles.Admin))
	board.DELETE("", h.DeleteBoard, middleware.RequireRole(roles.Admin))

	board.POST("/lists", h.CreateList, middleware.RequireRole(roles.User))
	board.POST("/lists/order", h.ReorderLists, middleware.RequireRole(roles.Admin))
	board.POST("/tasks/order", h.ReorderTasks, middleware.RequireRole(roles.User))

	list := board.Group("/lists/:listID")
	list.PUT("", h.UpdateList, middleware.RequireRole(roles.User))
	list.DELETE("", h.DeleteList, middleware.RequireRole(roles.Admin))
	list.POST("/tasks", h.CreateTask, middleware.RequireRole(roles.User))

	task := list.Group("/tasks/:taskID")
	task.GET("", h.GetTask)
	task.PUT("", h.UpdateTask, middleware.RequireRole(roles.User))
	task.DELETE("", h.DeleteTask, middleware.RequireRole(roles.User))
	task.GET("/graph", h.TaskGraph)

	task.POST("/blockers/:blockerID", h.AddBlocker, middleware.RequireRole(roles.User))
	task.DELETE("/blockers/:blockerID", h.RemoveBlocker, middleware.RequireRole(roles.User))
	task.POST("/assignees/:userID", h.AssignTask, middleware.RequireRole(roles.User))
	task.DELETE("/assignees/:userID", h.UnassignTask, middleware.RequireRole(roles.User))
	task.POST("/tags/:tagID", h.TagTask, middleware.RequireRole(roles.User))
	task.DELETE("/tags/:tagID", h.UntagTask, middleware.RequireRole(roles.User))

	task.GET("/comments", h.ListComments)
	task.POST("/comments", h.CreateComment, middleware.RequireRole(roles.User))
	task.DELETE("/comments/:commentID", h.DeleteComment, middleware.RequireRole(roles.User))
}
