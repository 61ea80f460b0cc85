package services

import (
	"context"

	dto "flowdesk.com/flowdesk/internal/data_models"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

type ListService struct {
	lists *repository.ListRepository
}

func NewListService(lists *repository.ListRepository) *ListService {
	return &ListService{lists: lists}
}

// CreateList appends the new list after the board's current siblings.
// Existing lists are never renumbered.
func (s *ListService) CreateList(ctx context.Context, board *model.Board, name string) (*model.List, error) {
	max, err := s.lists.MaxPosition(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	return s.lists.Create(ctx, board.ID, name, max+1)
}

// ReorderLists applies a client-submitted ordering batch. Only lists
// belonging to the path board are touched; ids outside it are silently
// dropped. Submitted positions are persisted as-is, without uniqueness
// or gap checks: the client owns numeric well-formedness, the server
// owns scope.
func (s *ListService) ReorderLists(ctx context.Context, boardID string, order []dto.ListOrder) error {
	if len(order) == 0 {
		return nil
	}

	ids := make([]string, 0, len(order))
	wanted := make(map[string]int, len(order))
	for _, o := range order {
		ids = append(ids, o.ID)
		wanted[o.ID] = o.Position
	}

	lists, err := s.lists.FindInBoard(ctx, boardID, ids)
	if err != nil {
		return err
	}

	changed := lists[:0]
	for _, l := range lists {
		if pos, ok := wanted[l.ID]; ok {
			l.Position = pos
			changed = append(changed, l)
		}
	}

	return s.lists.UpdatePositions(ctx, changed)
}

func (s *ListService) RenameList(ctx context.Context, list *model.List, name string) error {
	list.Name = name
	return s.lists.Rename(ctx, list)
}

func (s *ListService) DeleteList(ctx context.Context, id string) error {
	return s.lists.Delete(ctx, id)
}
