package sequence

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterPreservesOrder(t *testing.T) {
	got := From([]int{5, 1, 4, 2, 3}).Filter(func(v int) bool { return v%2 == 1 }).Collect()
	assert.Equal(t, []int{5, 1, 3}, got)
}

func TestFoldIsLeftToRight(t *testing.T) {
	got := Fold(From([]string{"a", "b", "c"}), "", func(acc, v string) string { return acc + v })
	assert.Equal(t, "abc", got)

	assert.Equal(t, 7, Fold(From([]int(nil)), 7, func(acc, v int) int { return acc + v }))
}

func TestMapAndFilterMap(t *testing.T) {
	strs := Map(From([]int{1, 2, 3}), strconv.Itoa).Collect()
	assert.Equal(t, []string{"1", "2", "3"}, strs)

	evens := FilterMap(From([]int{1, 2, 3, 4}), func(v int) (string, bool) {
		return strconv.Itoa(v * 10), v%2 == 0
	}).Collect()
	assert.Equal(t, []string{"20", "40"}, evens)
}

func TestFindStopsEarly(t *testing.T) {
	visited := 0
	v, ok := From([]int{1, 2, 3, 4}).Filter(func(int) bool { visited++; return true }).Find(func(v int) bool { return v == 2 })
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, visited)

	_, ok = From([]int{1}).Find(func(v int) bool { return v == 9 })
	assert.False(t, ok)
	assert.Equal(t, 0, From([]int{}).Count())
}
