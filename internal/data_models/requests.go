package dto

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type WorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListRequest struct {
	Name string `json:"name"`
}

type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline"`
}

type TagRequest struct {
	Name string `json:"name"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type MemberRoleRequest struct {
	Role string `json:"role"`
}

type InviteRequest struct {
	UserID string `json:"user_id"`
}

type JoinRequest struct {
	Token string `json:"token"`
}

// ListOrder is one entry of the drag-and-drop batch for lists: the
// client submits the full desired ordering, the server persists the
// submitted positions as-is.
type ListOrder struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

type ReorderListsRequest struct {
	Order []ListOrder `json:"order"`
}

// TaskMove additionally carries the target list so one batch can move
// tasks across lists of the same board.
type TaskMove struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	List     string `json:"list"`
}

type ReorderTasksRequest struct {
	Moves []TaskMove `json:"moves"`
}
