package scoped

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter records what happened to it so tests can check delivery.
type counter struct {
	name  string
	ticks int
	log   []string
	emit  []Message[counter]
}

func (c counter) Update() (counter, []Message[counter]) {
	c.ticks++
	return c, c.emit
}

func tag(label string) func(counter) counter {
	return func(c counter) counter {
		c.log = append(append([]string(nil), c.log...), label)
		return c
	}
}

func msg(scope Scope, label string) Message[counter] {
	return Message[counter]{Scope: scope, Name: label, Apply: tag(label)}
}

func TestOwnMessagesApplyToEmitter(t *testing.T) {
	child := counter{name: "child", emit: []Message[counter]{msg(Own, "self")}}
	root := Branch(counter{name: "root"}, Leaf(child))

	next, deep := DepthFirst[counter]{}.Step(root)
	assert.Empty(t, deep)
	assert.Equal(t, []string{"self"}, next.Children[0].Payload.log)
	assert.Empty(t, next.Payload.log)
	assert.Equal(t, 1, next.Children[0].Payload.ticks)
	assert.Equal(t, 1, next.Payload.ticks)
}

func TestParentMessagesWaitForAllChildren(t *testing.T) {
	first := counter{name: "a", emit: []Message[counter]{msg(Parent, "from-a")}}
	second := counter{name: "b", emit: []Message[counter]{msg(Parent, "from-b")}}
	mid := Branch(counter{name: "mid"}, Leaf(first), Leaf(second))
	root := Branch(counter{name: "root"}, mid)

	next, deep := DepthFirst[counter]{}.Step(root)
	assert.Empty(t, deep)

	got := next.Children[0]
	assert.Equal(t, []string{"from-a", "from-b"}, got.Payload.log)
	assert.Empty(t, got.Children[0].Payload.log)
	assert.Empty(t, next.Payload.log, "parent messages stop one level up")
}

func TestDeepMessagesReachRoot(t *testing.T) {
	leaf := counter{name: "leaf", emit: []Message[counter]{msg(Deep, "d1")}}
	mid := Branch(counter{name: "mid", emit: []Message[counter]{msg(Deep, "d2")}}, Leaf(leaf))
	root := Branch(counter{name: "root"}, mid)

	next, deep := DepthFirst[counter]{}.Step(root)
	require.Len(t, deep, 2)
	assert.Equal(t, "d1", deep[0].Name)
	assert.Equal(t, "d2", deep[1].Name)

	// nobody on the way applied them
	Walk(next, func(c counter) { assert.Empty(t, c.log, c.name) })
}

func TestRootAppliesItsOwnMessages(t *testing.T) {
	root := Leaf(counter{name: "root", emit: []Message[counter]{msg(Own, "o"), msg(Parent, "p"), msg(Deep, "d")}})

	next, deep := DepthFirst[counter]{}.Step(root)
	assert.Equal(t, []string{"o", "p"}, next.Payload.log)
	require.Len(t, deep, 1)
	assert.Equal(t, "d", deep[0].Name)
}

func TestStepLeavesOriginalTreeAlone(t *testing.T) {
	root := Branch(counter{name: "root"}, Leaf(counter{name: "c", emit: []Message[counter]{msg(Own, "x")}}))
	_, _ = DepthFirst[counter]{}.Step(root)

	assert.Equal(t, 0, root.Payload.ticks)
	assert.Equal(t, 0, root.Children[0].Payload.ticks)
	assert.Empty(t, root.Children[0].Payload.log)
}

func TestWalkOrder(t *testing.T) {
	root := Branch(counter{name: "root"},
		Branch(counter{name: "a"}, Leaf(counter{name: "a1"})),
		Leaf(counter{name: "b"}),
	)
	var order []string
	Walk(root, func(c counter) { order = append(order, c.name) })
	assert.Equal(t, []string{"a1", "a", "b", "root"}, order)
}

func TestComposeDeep(t *testing.T) {
	m, err := Compose(msg(Deep, "one"), msg(Deep, "two"))
	require.NoError(t, err)
	assert.Equal(t, Deep, m.Scope)
	assert.Equal(t, []string{"one", "two"}, m.Apply(counter{}).log)
}

func TestComposeScopeMismatch(t *testing.T) {
	for _, pair := range [][2]Scope{{Own, Deep}, {Deep, Parent}, {Own, Own}, {Parent, Parent}} {
		_, err := Compose(msg(pair[0], "a"), msg(pair[1], "b"))
		assert.ErrorIs(t, err, ErrScopeMismatch, "%s + %s", pair[0], pair[1])
	}
	assert.Panics(t, func() { MustCompose(msg(Own, "a"), msg(Deep, "b")) })
	assert.NotPanics(t, func() { MustCompose(msg(Deep, "a"), msg(Deep, "b")) })
}
