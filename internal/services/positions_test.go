package services

import (
	"context"
	"testing"

	dto "flowdesk.com/flowdesk/internal/data_models"
)

func TestCreateListAppendsAfterSiblings(t *testing.T) {
	f := newBoardFixture(t)

	first := f.mustCreateList(t, "Backlog")
	second := f.mustCreateList(t, "Doing")
	third := f.mustCreateList(t, "Done")

	if first.Position != 1 || second.Position != 2 || third.Position != 3 {
		t.Errorf("expected positions 1, 2, 3, got %d, %d, %d",
			first.Position, second.Position, third.Position)
	}
}

func TestCreateTaskAppendsAfterSiblings(t *testing.T) {
	f := newBoardFixture(t)
	list := f.mustCreateList(t, "Backlog")

	first := f.mustCreateTask(t, list, "a")
	second := f.mustCreateTask(t, list, "b")

	if first.Position != 1 || second.Position != 2 {
		t.Errorf("expected positions 1, 2, got %d, %d", first.Position, second.Position)
	}
}

func TestReorderListsSwapsOrder(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	backlog := f.mustCreateList(t, "Backlog")
	doing := f.mustCreateList(t, "Doing")

	svc := NewListService(f.lists)
	err := svc.ReorderLists(ctx, f.board.ID, []dto.ListOrder{
		{ID: backlog.ID, Position: 2},
		{ID: doing.ID, Position: 1},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	lists, err := f.lists.ListForBoard(ctx, f.board.ID)
	if err != nil {
		t.Fatalf("failed to fetch lists: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].ID != doing.ID || lists[1].ID != backlog.ID {
		t.Errorf("expected order Doing, Backlog, got %s, %s", lists[0].Name, lists[1].Name)
	}
}

func TestReorderListsIsIdempotent(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	backlog := f.mustCreateList(t, "Backlog")
	doing := f.mustCreateList(t, "Doing")

	order := []dto.ListOrder{
		{ID: backlog.ID, Position: 2},
		{ID: doing.ID, Position: 1},
	}

	svc := NewListService(f.lists)
	for i := 0; i < 2; i++ {
		if err := svc.ReorderLists(ctx, f.board.ID, order); err != nil {
			t.Fatalf("reorder attempt %d failed: %v", i+1, err)
		}
	}

	lists, err := f.lists.ListForBoard(ctx, f.board.ID)
	if err != nil {
		t.Fatalf("failed to fetch lists: %v", err)
	}
	if lists[0].Position != 1 || lists[1].Position != 2 {
		t.Errorf("expected positions 1, 2 after repeated reorder, got %d, %d",
			lists[0].Position, lists[1].Position)
	}
}

func TestReorderListsIgnoresListsFromOtherBoards(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	mine := f.mustCreateList(t, "Backlog")

	other, err := f.boards.Create(ctx, f.workspace.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	foreign, err := NewListService(f.lists).CreateList(ctx, other, "Foreign")
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}

	svc := NewListService(f.lists)
	err = svc.ReorderLists(ctx, f.board.ID, []dto.ListOrder{
		{ID: mine.ID, Position: 5},
		{ID: foreign.ID, Position: 9},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	got, err := f.lists.FindByID(ctx, foreign.ID)
	if err != nil {
		t.Fatalf("failed to fetch list: %v", err)
	}
	if got.Position != 1 {
		t.Errorf("foreign list position changed to %d", got.Position)
	}

	mineAfter, err := f.lists.FindByID(ctx, mine.ID)
	if err != nil {
		t.Fatalf("failed to fetch list: %v", err)
	}
	if mineAfter.Position != 5 {
		t.Errorf("expected position 5, got %d", mineAfter.Position)
	}
}

func TestReorderTasksMovesAcrossLists(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	backlog := f.mustCreateList(t, "Backlog")
	doing := f.mustCreateList(t, "Doing")
	task := f.mustCreateTask(t, backlog, "a")

	svc := f.taskService()
	err := svc.ReorderTasks(ctx, f.board.ID, []dto.TaskMove{
		{ID: task.ID, Position: 3, List: doing.ID},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	got, err := f.tasks.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to fetch task: %v", err)
	}
	if got.ListID != doing.ID {
		t.Errorf("expected task in list %s, got %s", doing.ID, got.ListID)
	}
	if got.Position != 3 {
		t.Errorf("expected position 3, got %d", got.Position)
	}
}

func TestReorderTasksRejectsListFromOtherBoard(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	backlog := f.mustCreateList(t, "Backlog")
	task := f.mustCreateTask(t, backlog, "a")

	other, err := f.boards.Create(ctx, f.workspace.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	foreign, err := NewListService(f.lists).CreateList(ctx, other, "Foreign")
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}

	svc := f.taskService()
	err = svc.ReorderTasks(ctx, f.board.ID, []dto.TaskMove{
		{ID: task.ID, Position: 7, List: foreign.ID},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	got, err := f.tasks.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to fetch task: %v", err)
	}
	if got.ListID != backlog.ID {
		t.Errorf("task escaped into list %s of another board", got.ListID)
	}
	if got.Position != 7 {
		t.Errorf("expected position 7, got %d", got.Position)
	}
}

func TestReorderTasksIgnoresTasksFromOtherBoards(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	other, err := f.boards.Create(ctx, f.workspace.ID, "Other", "")
	if err != nil {
		t.Fatalf("failed to create board: %v", err)
	}
	foreignList, err := NewListService(f.lists).CreateList(ctx, other, "Foreign")
	if err != nil {
		t.Fatalf("failed to create list: %v", err)
	}
	foreign := f.mustCreateTask(t, foreignList, "outsider")

	svc := f.taskService()
	err = svc.ReorderTasks(ctx, f.board.ID, []dto.TaskMove{
		{ID: foreign.ID, Position: 42},
	})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	got, err := f.tasks.FindByID(ctx, foreign.ID)
	if err != nil {
		t.Fatalf("failed to fetch task: %v", err)
	}
	if got.Position != 1 {
		t.Errorf("task on another board was repositioned to %d", got.Position)
	}
}
