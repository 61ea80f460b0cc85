package services

import (
	"context"
	"errors"
	"testing"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/roles"
)

func TestDeleteCommentByAuthor(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	list := f.mustCreateList(t, "Backlog")
	task := f.mustCreateTask(t, list, "a")

	comments := repository.NewCommentRepository(f.db)
	svc := NewCommentService(comments)

	comment, err := svc.CreateComment(ctx, task, f.owner, "hello")
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	if err := svc.DeleteComment(ctx, task, comment.ID, f.owner, roles.Guest); err != nil {
		t.Fatalf("author could not delete own comment: %v", err)
	}

	_, err = comments.FindByID(ctx, comment.ID)
	if !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound after delete, got %v", err)
	}
}

func TestDeleteCommentRequiresAdminForOthers(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	list := f.mustCreateList(t, "Backlog")
	task := f.mustCreateTask(t, list, "a")

	comments := repository.NewCommentRepository(f.db)
	svc := NewCommentService(comments)

	comment, err := svc.CreateComment(ctx, task, f.owner, "hello")
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	guest, err := f.users.Create(ctx, "guest", "guest@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	err = svc.DeleteComment(ctx, task, comment.ID, guest, roles.Guest)
	if !errors.Is(err, apperrors.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}

	if err := svc.DeleteComment(ctx, task, comment.ID, guest, roles.Admin); err != nil {
		t.Errorf("admin could not delete comment: %v", err)
	}
}

func TestDeleteCommentRejectsCommentFromAnotherTask(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	list := f.mustCreateList(t, "Backlog")
	task := f.mustCreateTask(t, list, "a")

	comments := repository.NewCommentRepository(f.db)
	svc := NewCommentService(comments)

	comment, err := svc.CreateComment(ctx, task, f.owner, "hello")
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	// an OWNER of an unrelated workspace must not reach the comment
	// through a task path of their own workspace
	attacker, err := f.users.Create(ctx, "mallory", "mallory@example.com", "hash")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	otherWs, err := f.workspaces.CreateWithOwner(ctx, attacker.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}
	otherBoard, err := f.boards.Create(ctx, otherWs.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	otherList, err := NewListService(f.lists).CreateList(ctx, otherBoard, "Inbox")
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}
	otherTask, err := f.taskService().CreateTask(ctx, otherList, attacker, "bait", "", "", nil)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	err = svc.DeleteComment(ctx, otherTask, comment.ID, attacker, roles.Owner)
	if !errors.Is(err, apperrors.ErrScopeMismatch) {
		t.Fatalf("expected ErrScopeMismatch, got %v", err)
	}

	if _, err := comments.FindByID(ctx, comment.ID); err != nil {
		t.Errorf("comment was deleted across workspaces: %v", err)
	}
}
