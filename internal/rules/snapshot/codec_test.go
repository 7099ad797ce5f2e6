package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekpro798/rivetly-backend/internal/rules/domain"
)

var encodeTime = time.UnixMilli(1700000000000)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		ids  []string
	}{
		{"empty id list", []string{}},
		{"single id", []string{"strict_ts"}},
		{"many ids", []string{"strict_ts", "concise", "continuity_memory"}},
		{"custom rule id", []string{"strict_ts", "user_22ci_1700000000000"}},
		{"unicode id component", []string{"user_约束_1700000000000"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := Encode("feature", tc.ids, "CURSOR", encodeTime)

			snap, err := Decode(token)
			require.NoError(t, err)
			assert.Equal(t, "feature", snap.Mode)
			assert.Equal(t, tc.ids, snap.SelectedIDs)
			assert.Equal(t, "CURSOR", snap.Platform)
			assert.Equal(t, encodeTime.UnixMilli(), snap.Timestamp)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"base64 of garbage", "Z2FyYmFnZQ=="},
		{"empty token", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.token)
			assert.ErrorIs(t, err, domain.ErrNoSnapshot)
		})
	}
}

func TestExtract(t *testing.T) {
	token := Encode("feature", []string{"strict_ts"}, "CURSOR", encodeTime)

	t.Run("comment marker pair", func(t *testing.T) {
		text := "body text\n\n<!-- RIVETLY_SNAPSHOT_START\n" + token + "\nRIVETLY_SNAPSHOT_END -->\n"
		got, ok := Extract(text)
		require.True(t, ok)
		assert.Equal(t, token, got)
	})

	t.Run("xml-style tag pair", func(t *testing.T) {
		text := "prefix <rivetly-snapshot>" + token + "</rivetly-snapshot> suffix"
		got, ok := Extract(text)
		require.True(t, ok)
		assert.Equal(t, token, got)
	})

	t.Run("absent marker", func(t *testing.T) {
		_, ok := Extract("an ordinary rule file with no snapshot")
		assert.False(t, ok)
	})
}

func TestFromDocument(t *testing.T) {
	t.Run("extracts and decodes", func(t *testing.T) {
		token := Encode("refactor", []string{"functional"}, "TRAE", encodeTime)
		text := "rules\n<rivetly-snapshot>" + token + "</rivetly-snapshot>"

		snap, ok := FromDocument(text)
		require.True(t, ok)
		assert.Equal(t, "refactor", snap.Mode)
		assert.Equal(t, []string{"functional"}, snap.SelectedIDs)
	})

	t.Run("malformed token reads as no snapshot", func(t *testing.T) {
		text := "rules\n<rivetly-snapshot>!!not a token!!</rivetly-snapshot>"
		_, ok := FromDocument(text)
		assert.False(t, ok)
	})

	t.Run("absent snapshot reads as no snapshot", func(t *testing.T) {
		_, ok := FromDocument("plain file")
		assert.False(t, ok)
	})
}

func TestEscapeURIComponent(t *testing.T) {
	t.Run("round trips json with unicode", func(t *testing.T) {
		in := `{"m":"feature","ids":["约束","a b"],"ts":1}`
		escaped := escapeURIComponent(in)
		assert.NotContains(t, escaped, " ")
		assert.NotContains(t, escaped, `"`)

		out, err := unescapeURIComponent(escaped)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("unreserved set stays literal", func(t *testing.T) {
		in := "AZaz09-_.!~*'()"
		assert.Equal(t, in, escapeURIComponent(in))
	})

	t.Run("truncated escape errors", func(t *testing.T) {
		_, err := unescapeURIComponent("abc%2")
		assert.Error(t, err)
	})

	t.Run("invalid hex errors", func(t *testing.T) {
		_, err := unescapeURIComponent("abc%zz")
		assert.Error(t, err)
	})
}
