package vdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // Named element with props and children
	KindText                 // Plain text node
	KindFragment             // Grouping without a wrapper element
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Props holds element attributes.
type Props map[string]any

// Node is an element-tree node.
type Node struct {
	Kind     Kind    `json:"kind"`
	Tag      string  `json:"tag,omitempty"`      // Element tag name
	Props    Props   `json:"props,omitempty"`    // Attributes (elements only)
	Children []*Node `json:"children,omitempty"` // Child nodes
	Key      string  `json:"key,omitempty"`      // Reconciliation key
	Text     string  `json:"text,omitempty"`     // For KindText
}

// Element creates an element node with the given tag and children.
func Element(tag string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: children}
}

// Text creates a text node.
func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Fragment groups children without introducing a wrapper element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// WithKey sets the reconciliation key and returns the node.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// WithProp sets a single attribute and returns the node.
func (n *Node) WithProp(key string, value any) *Node {
	if n.Props == nil {
		n.Props = make(Props)
	}
	n.Props[key] = value
	return n
}

// Append adds children and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}
