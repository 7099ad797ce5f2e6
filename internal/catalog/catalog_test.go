package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()

	t.Run("constraints keep declaration order", func(t *testing.T) {
		ids := make([]string, 0)
		for _, c := range cat.Constraints() {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []string{
			"zh_response", "strict_ts", "concise", "explain", "functional",
			"no_deps", "continuity_memory", "test_vitest", "test_mock",
		}, ids)
	})

	t.Run("lookup by id", func(t *testing.T) {
		con, ok := cat.Constraint("strict_ts")
		require.True(t, ok)
		assert.Equal(t, "strict_ts", con.ID)
		assert.NotEmpty(t, con.NegativePrompt)

		_, ok = cat.Constraint("nonexistent_id")
		assert.False(t, ok)
	})

	t.Run("unknown mode falls back to default", func(t *testing.T) {
		m := cat.Mode("no_such_mode")
		assert.Equal(t, "feature", m.ID)
		assert.False(t, cat.HasMode("no_such_mode"))
		assert.True(t, cat.HasMode("refactor"))
	})

	t.Run("modes recommend constraints", func(t *testing.T) {
		m := cat.Mode("testing")
		assert.Equal(t, []string{"test_vitest", "test_mock"}, m.RecommendedConstraintIDs)
	})
}

func TestLabelFallback(t *testing.T) {
	t.Run("requested locale wins", func(t *testing.T) {
		c := Constraint{Labels: map[string]string{LocaleEN: "Strict", LocaleZH: "严格"}}
		assert.Equal(t, "严格", c.Label(LocaleZH))
		assert.Equal(t, "Strict", c.Label(LocaleEN))
	})

	t.Run("missing locale falls back to english", func(t *testing.T) {
		c := Constraint{Labels: map[string]string{LocaleEN: "Strict"}}
		assert.Equal(t, "Strict", c.Label(LocaleZH))
		assert.Equal(t, "Strict", c.Label("fr"))
	})

	t.Run("no english falls back to first available", func(t *testing.T) {
		c := Constraint{Labels: map[string]string{LocaleZH: "严格"}}
		assert.Equal(t, "严格", c.Label("fr"))
	})

	t.Run("empty labels yield empty string", func(t *testing.T) {
		c := Constraint{}
		assert.Equal(t, "", c.Label(LocaleEN))
	})
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, LocaleZH, NormalizeLocale("zh"))
	assert.Equal(t, LocaleEN, NormalizeLocale("en"))
	assert.Equal(t, LocaleEN, NormalizeLocale("de"))
	assert.Equal(t, LocaleEN, NormalizeLocale(""))
}
