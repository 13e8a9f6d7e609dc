package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/husnabot/internal/matching"
)

func TestBundledNames(t *testing.T) {
	names := BundledNames()
	require.Len(t, names, 99)

	seen := make(map[int]bool, len(names))
	for _, n := range names {
		assert.False(t, seen[n.Number], "duplicate number %d", n.Number)
		seen[n.Number] = true

		assert.GreaterOrEqual(t, n.Number, 1)
		assert.LessOrEqual(t, n.Number, 99)
		assert.Equal(t, int64(n.Number), n.ID)
		assert.NotEmpty(t, n.Transliteration, "number %d", n.Number)
		assert.NotEmpty(t, n.Arabic, "number %d", n.Number)
		assert.NotEmpty(t, n.Meaning, "number %d", n.Number)
	}
}

func TestBundledNamesReturnsCopy(t *testing.T) {
	first := BundledNames()
	first[0].Transliteration = "mutated"

	second := BundledNames()
	assert.Equal(t, "Ar-Rahman", second[0].Transliteration)
}

// Every bundled entry must be recallable by its own transliteration and by
// each of its aliases.
func TestBundledNamesSelfMatch(t *testing.T) {
	for _, n := range BundledNames() {
		assert.True(t, matching.Matches(n.Transliteration, n), "transliteration %q", n.Transliteration)
		for _, alias := range n.Aliases {
			assert.True(t, matching.Matches(alias, n), "alias %q of %q", alias, n.Transliteration)
		}
	}
}

func TestProviderNamesWithoutURL(t *testing.T) {
	p := &Provider{client: http.DefaultClient}
	names := p.Names(context.Background())
	assert.Len(t, names, 99)
}

func TestProviderNamesRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"number": 1, "transliteration": "Ar-Rahman", "arabic": "الرحمن", "meaning": "The Most Merciful", "aliases": ["Rahman"]},
			{"number": 2, "transliteration": "Ar-Rahim", "arabic": "الرحيم", "meaning": "The Most Compassionate"},
			{"number": 3, "transliteration": "", "meaning": "missing transliteration"}
		]`))
	}))
	defer srv.Close()

	p := &Provider{url: srv.URL, client: srv.Client()}
	names := p.Names(context.Background())

	require.Len(t, names, 2, "invalid entries are filtered out")
	assert.Equal(t, "Ar-Rahman", names[0].Transliteration)
	assert.Equal(t, int64(1), names[0].ID)
	assert.Equal(t, []string{"Rahman"}, names[0].Aliases)
}

func TestProviderNamesRemoteErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := &Provider{url: srv.URL, client: srv.Client()}
	names := p.Names(context.Background())
	assert.Len(t, names, 99, "server errors degrade to the bundled dataset")
}

func TestProviderNamesBadJSONFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	p := &Provider{url: srv.URL, client: srv.Client()}
	names := p.Names(context.Background())
	assert.Len(t, names, 99)
}

func TestProviderNamesEmptyRemoteFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := &Provider{url: srv.URL, client: srv.Client()}
	names := p.Names(context.Background())
	assert.Len(t, names, 99)
}
