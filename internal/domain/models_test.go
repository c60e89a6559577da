package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var tree = []Option{
	{Value: "a", Label: "A", Children: []Option{
		{Value: "a1", Label: "A1"},
		{Value: "a2", Label: "A2"},
	}},
	{Value: "b", Label: "B"},
	{Value: "c", Label: "C", Children: []Option{
		{Value: "c1", Label: "C1"},
	}},
}

func TestFlattenKeepsOnlyLeaves(t *testing.T) {
	flat := Flatten(tree)

	var vals []string
	for _, opt := range flat {
		vals = append(vals, opt.Value)
	}
	// Parents with children contribute their children; childless top-level
	// options contribute themselves.
	require.Equal(t, []string{"a1", "a2", "b", "c1"}, vals)
}

func TestCountNodesCountsParentsAndChildren(t *testing.T) {
	require.Equal(t, 6, CountNodes(tree))
	require.Zero(t, CountNodes(nil))
}

func TestFindChecksParentsBeforeChildren(t *testing.T) {
	opt, ok := Find(tree, "a")
	require.True(t, ok)
	require.Equal(t, "A", opt.Label)
	require.True(t, opt.HasChildren())

	opt, ok = Find(tree, "c1")
	require.True(t, ok)
	require.Equal(t, "C1", opt.Label)

	_, ok = Find(tree, "ghost")
	require.False(t, ok)
}

func TestContains(t *testing.T) {
	require.True(t, Contains(tree, "a2"))
	require.False(t, Contains(tree, ""))
}

func TestCSVValues(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, CSV("a,b,c").Values())
	require.Equal(t, []string{"a", "b"}, CSV(" a , b ,").Values())
	require.Nil(t, CSV("").Values())
	require.Nil(t, CSV(" , ,").Values())
}

func TestListValues(t *testing.T) {
	require.Equal(t, []string{"x", "y"}, List{"x", "y"}.Values())
	require.Nil(t, List(nil).Values())
}

func TestHasChildren(t *testing.T) {
	require.True(t, tree[0].HasChildren())
	require.False(t, tree[1].HasChildren())
	require.False(t, Option{Children: []Option{}}.HasChildren())
}
