package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainkit/domainkit/pkg/result"
	"github.com/domainkit/domainkit/pkg/rules"
)

func TestRequired(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		v := rules.Required("name", "alice")
		assert.True(t, v.Check())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		v := rules.Required("name", "")
		assert.False(t, v.Check())
		assert.Equal(t, "name is required", v.Error.Message)
		assert.Equal(t, "", v.Error.ActualValue)
	})

	t.Run("fails for whitespace only", func(t *testing.T) {
		v := rules.Required("name", "   \t\n")
		assert.False(t, v.Check())
	})
}

func TestMinLen(t *testing.T) {
	t.Run("passes at and above the minimum", func(t *testing.T) {
		assert.True(t, rules.MinLen("username", "abc", 3).Check())
		assert.True(t, rules.MinLen("username", "abcd", 3).Check())
	})

	t.Run("fails below the minimum", func(t *testing.T) {
		v := rules.MinLen("username", "ab", 3)
		assert.False(t, v.Check())
		assert.Equal(t, "username must be at least 3 characters long", v.Error.Message)
	})
}

func TestMaxLen(t *testing.T) {
	t.Run("passes at and below the maximum", func(t *testing.T) {
		assert.True(t, rules.MaxLen("username", "abc", 3).Check())
		assert.True(t, rules.MaxLen("username", "ab", 3).Check())
	})

	t.Run("fails above the maximum", func(t *testing.T) {
		v := rules.MaxLen("username", "abcd", 3)
		assert.False(t, v.Check())
		assert.Equal(t, "username must be at most 3 characters long", v.Error.Message)
	})
}

func TestLenBetween(t *testing.T) {
	t.Run("passes inside the range inclusive", func(t *testing.T) {
		assert.True(t, rules.LenBetween("code", "abc", 3, 5).Check())
		assert.True(t, rules.LenBetween("code", "abcde", 3, 5).Check())
	})

	t.Run("fails outside the range", func(t *testing.T) {
		assert.False(t, rules.LenBetween("code", "ab", 3, 5).Check())
		assert.False(t, rules.LenBetween("code", "abcdef", 3, 5).Check())
	})
}

func TestMatches(t *testing.T) {
	slug := regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	t.Run("passes for matching value", func(t *testing.T) {
		assert.True(t, rules.Matches("slug", "my-awesome-post", slug).Check())
	})

	t.Run("fails for non-matching value", func(t *testing.T) {
		v := rules.Matches("slug", "Not A Slug", slug)
		assert.False(t, v.Check())
		assert.Equal(t, "slug has an invalid format", v.Error.Message)
	})
}

func TestStringRules_WithValidateAll(t *testing.T) {
	t.Run("failing rules report their messages and values", func(t *testing.T) {
		res := result.ResultFor[string]().
			ValidateAll(
				rules.Required("name", ""),
				rules.MinLen("username", "ab", 3),
			)

		require.Len(t, res.Errors(), 2)
		assert.Equal(t, "name is required", res.Errors()[0].Message)
		assert.Equal(t, "username must be at least 3 characters long", res.Errors()[1].Message)
		assert.Equal(t, "ab", res.Errors()[1].ActualValue)
	})
}
