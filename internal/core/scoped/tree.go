package scoped

// Payload is the per-node state. Update returns the successor payload and
// any messages it wants delivered.
type Payload[P any] interface {
	Update() (P, []Message[P])
}

// Node owns its payload and its children by value. Updating a node never
// touches the original; it returns a new tree.
type Node[P Payload[P]] struct {
	Payload  P
	Children []Node[P]
}

// Leaf is a node without children.
func Leaf[P Payload[P]](p P) Node[P] {
	return Node[P]{Payload: p}
}

// Branch is a node with children.
func Branch[P Payload[P]](p P, children ...Node[P]) Node[P] {
	return Node[P]{Payload: p, Children: children}
}

// Strategy walks a tree once and returns the new tree plus the messages that
// escaped it.
type Strategy[P Payload[P]] interface {
	Step(root Node[P]) (Node[P], []Message[P])
}

// DepthFirst updates children before their parent.
type DepthFirst[P Payload[P]] struct{}

// Step updates the whole tree. At the root there is no owner left, so the
// root's own Own and Parent messages land on the root itself; Deep messages
// are returned in the order they were produced.
func (DepthFirst[P]) Step(root Node[P]) (Node[P], []Message[P]) {
	next, out := update(root)

	var deep []Message[P]
	for _, m := range out {
		switch m.Scope {
		case Deep:
			deep = append(deep, m)
		default:
			next.Payload = m.applyTo(next.Payload)
		}
	}
	return next, deep
}

// update returns the updated node and every message it sends upwards: Deep
// messages bubbling from below, then whatever its own payload produced.
func update[P Payload[P]](n Node[P]) (Node[P], []Message[P]) {
	var (
		children []Node[P]
		deferred []Message[P]
		bubbled  []Message[P]
	)
	if len(n.Children) > 0 {
		children = make([]Node[P], len(n.Children))
	}

	for i, child := range n.Children {
		nextChild, msgs := update(child)
		for _, m := range msgs {
			switch m.Scope {
			case Own:
				nextChild.Payload = m.applyTo(nextChild.Payload)
			case Parent:
				deferred = append(deferred, m)
			default:
				bubbled = append(bubbled, m)
			}
		}
		children[i] = nextChild
	}

	payload := n.Payload
	for _, m := range deferred {
		payload = m.applyTo(payload)
	}

	payload, own := payload.Update()

	out := make([]Message[P], 0, len(bubbled)+len(own))
	out = append(out, bubbled...)
	out = append(out, own...)
	return Node[P]{Payload: payload, Children: children}, out
}

// Walk visits every payload depth first, children before parents.
func Walk[P Payload[P]](n Node[P], visit func(P)) {
	for _, c := range n.Children {
		Walk(c, visit)
	}
	visit(n.Payload)
}
