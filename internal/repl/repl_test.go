package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
)

func TestRunExitsOnEmptyLine(t *testing.T) {
	t.Parallel()

	idx := index.New()
	var out bytes.Buffer
	Run(strings.NewReader("\n"), &out, idx, 15)

	require.Contains(t, out.String(), "Enter a search term")
}

func TestRunReportsNoMatch(t *testing.T) {
	t.Parallel()

	idx := index.New()
	var out bytes.Buffer
	Run(strings.NewReader("missing\n\n"), &out, idx, 15)

	require.Contains(t, out.String(), `didn't find the term "missing"`)
}

func TestRunDisplaysMatchesWithSingularPlural(t *testing.T) {
	t.Parallel()

	idx := index.New()
	idx.Add(index.Article{Title: "Only Article", URL: "http://example.com/only"}, []string{"alpha"})
	var out bytes.Buffer
	Run(strings.NewReader("alpha\n\n"), &out, idx, 15)

	got := out.String()
	require.Contains(t, got, "appears in 1 article.")
	require.Contains(t, got, "[appears 1 time]")
	require.Contains(t, got, "Only Article")
	require.Contains(t, got, "http://example.com/only")
}

func TestRunTruncatesToMaxMatches(t *testing.T) {
	t.Parallel()

	idx := index.New()
	for i := 0; i < 20; i++ {
		idx.Add(index.Article{Title: string(rune('a' + i)), URL: "http://example.com/x"}, []string{"alpha"})
	}
	var out bytes.Buffer
	Run(strings.NewReader("alpha\n\n"), &out, idx, 15)

	got := out.String()
	require.Contains(t, got, "appears in 20 articles.")
	require.Contains(t, got, "Here are the top 15 of them")
	require.Equal(t, 15, strings.Count(got, "appears 1 time"))
	require.NotContains(t, got, "16.)")
}
