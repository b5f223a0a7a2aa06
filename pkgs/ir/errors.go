package ir

import "fmt"

// MergeError reports a parameter name that was bound more than once while
// merging a node's URL expression, $params, and $data into one ordered
// bound-variables set.
type MergeError struct {
	Node string
	Name string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("%s: duplicate parameter %q", e.Node, e.Name)
}
