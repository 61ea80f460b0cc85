package dto

// TaskGraph is the node/edge structure consumed by the graph
// visualization widget on the task detail view.
type TaskGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Group is one of "current", "blockers", "blocked" or "related",
// classified relative to the origin task only.
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Group string `json:"group"`
	URL   string `json:"url"`
}

// Direction is blocker → blocked.
type GraphEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Title string `json:"title"`
}
