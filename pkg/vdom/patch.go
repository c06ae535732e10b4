package vdom

// PatchOp identifies a patch operation.
type PatchOp uint8

const (
	PatchInsertNode PatchOp = iota // Insert Node under Parent at Index
	PatchRemoveNode                // Remove node at Path
	PatchReplaceNode               // Replace node at Path with Node
	PatchMoveNode                  // Move node at Path to Index under its parent
	PatchSetText                   // Set text content at Path
	PatchSetAttr                   // Set attribute Key=Value at Path
	PatchRemoveAttr                // Remove attribute Key at Path
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	default:
		return "Unknown"
	}
}

// Patch is a single tree mutation. Nodes are addressed by their child-index
// path from the root of the previous tree; Parent addresses the parent of
// an inserted node.
type Patch struct {
	Op     PatchOp `json:"op"`
	Path   []int   `json:"path,omitempty"`
	Parent []int   `json:"parent,omitempty"`
	Index  int     `json:"index,omitempty"`
	Key    string  `json:"key,omitempty"`
	Value  string  `json:"value,omitempty"`
	Node   *Node   `json:"node,omitempty"`
}
