package services

import (
	"context"
	"fmt"

	dto "flowdesk.com/flowdesk/internal/data_models"
	model "flowdesk.com/flowdesk/internal/models"
)

// maxGraphNodes bounds the traversal; the blocking relation has no
// structural size limit, so a runaway component is cut off rather than
// walked in full.
const maxGraphNodes = 1000

// TaskGraphStore is the queryable collection the builder traverses.
// *repository.TaskRepository satisfies it; tests may substitute a
// narrower one.
type TaskGraphStore interface {
	Blockers(ctx context.Context, taskID string) ([]model.Task, error)
	Blocking(ctx context.Context, taskID string) ([]model.Task, error)
	FindForWorkspace(ctx context.Context, workspaceID string, ids []string) ([]model.Task, error)
}

type TaskGraphService struct {
	store TaskGraphStore
}

func NewTaskGraphService(store TaskGraphStore) *TaskGraphService {
	return &TaskGraphService{store: store}
}

// BuildTaskGraph collects every task connected to the origin through
// the blocking relation in either direction (weak connectivity, so a
// breadth-first walk over the undirected closure) and emits the
// node/edge structure for the visualization widget.
//
// Classification is relative to the origin only: its direct blockers
// and directly blocked tasks get their own groups, everything reachable
// only through intermediate hops is "related". Edges run blocker →
// blocked and only between nodes of the collected set.
func (s *TaskGraphService) BuildTaskGraph(ctx context.Context, origin *model.Task, workspaceID, boardID string) (*dto.TaskGraph, error) {
	visited := make(map[string]bool)
	related := map[string]bool{origin.ID: true}
	queue := []string{origin.ID}

	// Direct blockers of each visited task, reused for classification
	// and edge emission after the walk.
	blockersOf := make(map[string][]model.Task)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if visited[id] {
			continue
		}
		visited[id] = true

		blockers, err := s.store.Blockers(ctx, id)
		if err != nil {
			return nil, err
		}
		blockersOf[id] = blockers

		blocking, err := s.store.Blocking(ctx, id)
		if err != nil {
			return nil, err
		}

		for _, neighbor := range append(blockers, blocking...) {
			if related[neighbor.ID] || len(related) >= maxGraphNodes {
				continue
			}
			related[neighbor.ID] = true
			queue = append(queue, neighbor.ID)
		}
	}

	ids := make([]string, 0, len(related))
	for id := range related {
		ids = append(ids, id)
	}

	tasks, err := s.store.FindForWorkspace(ctx, workspaceID, ids)
	if err != nil {
		return nil, err
	}

	originBlockers := idSet(blockersOf[origin.ID])
	originBlocked := make(map[string]bool)
	for id, blockers := range blockersOf {
		for _, b := range blockers {
			if b.ID == origin.ID {
				originBlocked[id] = true
			}
		}
	}

	graph := &dto.TaskGraph{
		Nodes: make([]dto.GraphNode, 0, len(tasks)),
		Edges: []dto.GraphEdge{},
	}

	for _, t := range tasks {
		var group string
		switch {
		case t.ID == origin.ID:
			group = "current"
		case originBlockers[t.ID]:
			group = "blockers"
		case originBlocked[t.ID]:
			group = "blocked"
		default:
			group = "related"
		}

		graph.Nodes = append(graph.Nodes, dto.GraphNode{
			ID:    t.ID,
			Label: t.Title,
			Title: fmt.Sprintf("from list: %s", t.List.Name),
			Group: group,
			URL: fmt.Sprintf(
				"/workspaces/%s/boards/%s/lists/%s/tasks/%s",
				workspaceID, boardID, t.ListID, t.ID,
			),
		})

		for _, blocker := range blockersOf[t.ID] {
			if !related[blocker.ID] {
				continue
			}
			graph.Edges = append(graph.Edges, dto.GraphEdge{
				From:  blocker.ID,
				To:    t.ID,
				Title: fmt.Sprintf("%s → %s", blocker.Title, t.Title),
			})
		}
	}

	return graph, nil
}

func idSet(tasks []model.Task) map[string]bool {
	set := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		set[t.ID] = true
	}
	return set
}
