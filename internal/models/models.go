package model

import (
	"time"

	"flowdesk.com/flowdesk/internal/constants"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Workspace struct {
	ID          string            `gorm:"primaryKey;size:36" json:"id"`
	Name        string            `gorm:"size:63;not null" json:"name"`
	Description string            `gorm:"size:511" json:"description"`
	Boards      []Board           `gorm:"constraint:OnDelete:CASCADE" json:"boards,omitempty"`
	Tags        []Tag             `gorm:"constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Memberships []WorkspaceMember `gorm:"constraint:OnDelete:CASCADE" json:"memberships,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// WorkspaceMember is the sole source of authorization: deleting the row
// revokes access immediately.
type WorkspaceMember struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"size:36;not null;uniqueIndex:idx_member_user_workspace" json:"user_id"`
	WorkspaceID string    `gorm:"size:36;not null;uniqueIndex:idx_member_user_workspace" json:"workspace_id"`
	Role        string    `gorm:"type:varchar(15);not null;default:GUEST" json:"role"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Board struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:63;not null" json:"name"`
	Description string    `gorm:"size:511" json:"description"`
	WorkspaceID string    `gorm:"size:36;not null;index" json:"workspace_id"`
	Lists       []List    `gorm:"constraint:OnDelete:CASCADE" json:"lists,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type List struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:63;not null" json:"name"`
	BoardID   string    `gorm:"size:36;not null;index" json:"board_id"`
	Board     Board     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Position  int       `gorm:"not null" json:"position"`
	Tasks     []Task    `gorm:"constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Tag struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:63;not null;uniqueIndex:idx_tag_name_workspace" json:"name"`
	WorkspaceID string    `gorm:"size:36;not null;uniqueIndex:idx_tag_name_workspace" json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Task.BlockingTasks holds the tasks that must complete before this one.
// The inverse direction (tasks this one blocks) is resolved through the
// task_blockers join table. Cycles are not rejected on write.
type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"size:63;not null" json:"title"`
	Description string                 `json:"description"`
	Priority    constants.TaskPriority `gorm:"type:varchar(15);not null;default:LOW" json:"priority"`
	Status      constants.TaskStatus   `gorm:"type:varchar(15);not null;default:TODO" json:"status"`
	Deadline    *time.Time             `json:"deadline,omitempty"`
	ListID      string                 `gorm:"size:36;not null;index" json:"list_id"`
	List        List                   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Position    int                    `gorm:"not null" json:"position"`
	CreatedByID string                 `gorm:"size:36;not null" json:"created_by_id"`
	Tags        []Tag                  `gorm:"many2many:task_tags" json:"tags,omitempty"`
	Assignees   []User                 `gorm:"many2many:task_assignees" json:"assignees,omitempty"`

	BlockingTasks []*Task `gorm:"many2many:task_blockers;joinForeignKey:TaskID;joinReferences:BlockerID" json:"blocking_tasks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Text        string    `gorm:"size:511;not null" json:"text"`
	TaskID      string    `gorm:"size:36;not null;index" json:"task_id"`
	Task        Task      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedByID string    `gorm:"size:36;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
