package domainmodels

import "time"

// Department is a node of the static 3-level org tree: the level-1 root,
// a single level-2 org and the level-3 leaf teams.
type Department struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	ParentID   string    `json:"parent_id,omitempty"`
	ParentName string    `json:"parent_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
