package services

import (
	"context"

	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
)

type BoardService struct {
	boards *repository.BoardRepository
}

func NewBoardService(boards *repository.BoardRepository) *BoardService {
	return &BoardService{boards: boards}
}

func (s *BoardService) CreateBoard(ctx context.Context, workspace *model.Workspace, name, description string) (*model.Board, error) {
	return s.boards.Create(ctx, workspace.ID, name, description)
}

func (s *BoardService) GetBoard(ctx context.Context, id string) (*model.Board, error) {
	return s.boards.FindByIDWithLists(ctx, id)
}

func (s *BoardService) UpdateBoard(ctx context.Context, board *model.Board, name, description string) error {
	board.Name = name
	board.Description = description
	return s.boards.Update(ctx, board)
}

func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	return s.boards.Delete(ctx, id)
}
