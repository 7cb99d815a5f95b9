// Package repl implements the interactive query loop of spec.md §6: it
// reads a search term, queries the Token Index, and displays up to
// maxMatches postings ranked by descending frequency.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/YuchiLiuS/newsaggregator/internal/index"
)

const maxDisplayWidth = 60

// Run drives the query loop against idx, reading lines from r and writing
// output to w, until an empty line (or EOF) is read.
func Run(r io.Reader, w io.Writer, idx *index.Index, maxMatches int) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Enter a search term [or just hit <enter> to quit]: ")
		if !scanner.Scan() {
			return
		}
		response := strings.TrimSpace(scanner.Text())
		if response == "" {
			return
		}

		query := strings.ToLower(response)
		matches := idx.Matching(query)
		if len(matches) == 0 {
			fmt.Fprintf(w, "Ah, we didn't find the term %q. Try again.\n", response)
			continue
		}

		printMatches(w, matches, maxMatches)
	}
}

func printMatches(w io.Writer, matches []index.Posting, maxMatches int) {
	plural := "s"
	if len(matches) == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "That term appears in %d article%s.  ", len(matches), plural)
	if len(matches) > maxMatches {
		fmt.Fprintf(w, "Here are the top %d of them:\n", maxMatches)
	} else {
		fmt.Fprintln(w, "Here they are:")
	}

	shown := matches
	if len(shown) > maxMatches {
		shown = shown[:maxMatches]
	}
	for i, m := range shown {
		times := "times"
		if m.Count == 1 {
			times = "time"
		}
		fmt.Fprintf(w, "  %2d.) %q [appears %d %s].\n", i+1, truncate(m.Article.Title), m.Count, times)
		fmt.Fprintf(w, "       %q\n", truncate(m.Article.URL))
	}
}

// truncate shortens s to maxDisplayWidth characters, appending "...", for
// display purposes only; the index itself never truncates anything.
func truncate(s string) string {
	if len(s) <= maxDisplayWidth {
		return s
	}
	return s[:maxDisplayWidth-3] + "..."
}
