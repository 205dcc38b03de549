package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domainkit/domainkit/pkg/rules"
)

func TestNotEmptySlice(t *testing.T) {
	t.Run("passes for slice with elements", func(t *testing.T) {
		assert.True(t, rules.NotEmptySlice("tags", []string{"go"}).Check())
	})

	t.Run("fails for empty and nil slices", func(t *testing.T) {
		assert.False(t, rules.NotEmptySlice("tags", []string{}).Check())
		assert.False(t, rules.NotEmptySlice[string]("tags", nil).Check())
	})
}

func TestMinItems(t *testing.T) {
	t.Run("passes at and above the minimum", func(t *testing.T) {
		assert.True(t, rules.MinItems("scores", []int{1, 2}, 2).Check())
		assert.True(t, rules.MinItems("scores", []int{1, 2, 3}, 2).Check())
	})

	t.Run("fails below the minimum with count as actual value", func(t *testing.T) {
		v := rules.MinItems("scores", []int{1}, 2)
		assert.False(t, v.Check())
		assert.Equal(t, "scores must contain at least 2 items", v.Error.Message)
		assert.Equal(t, 1, v.Error.ActualValue)
	})
}

func TestMaxItems(t *testing.T) {
	t.Run("passes at and below the maximum", func(t *testing.T) {
		assert.True(t, rules.MaxItems("tags", []string{"a", "b"}, 2).Check())
		assert.True(t, rules.MaxItems("tags", []string{"a"}, 2).Check())
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		v := rules.MaxItems("tags", []string{"a", "b", "c"}, 2)
		assert.False(t, v.Check())
		assert.Equal(t, "tags must not contain more than 2 items", v.Error.Message)
	})
}

func TestInList(t *testing.T) {
	t.Run("passes for allowed value", func(t *testing.T) {
		assert.True(t, rules.InList("status", "active", []string{"active", "archived"}).Check())
	})

	t.Run("fails for value outside the list", func(t *testing.T) {
		v := rules.InList("status", "deleted", []string{"active", "archived"})
		assert.False(t, v.Check())
		assert.Equal(t, "status must be one of: [active archived]", v.Error.Message)
		assert.Equal(t, "deleted", v.Error.ActualValue)
	})

	t.Run("works with non-string comparable types", func(t *testing.T) {
		assert.True(t, rules.InList("code", 2, []int{1, 2, 3}).Check())
		assert.False(t, rules.InList("code", 4, []int{1, 2, 3}).Check())
	})
}
