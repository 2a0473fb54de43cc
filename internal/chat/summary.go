package chat

import (
	"fmt"
	"strings"
)

// FormatSummary renders the order list as a numbered summary in the given
// language. Items appear 1-indexed in insertion order; an empty note renders
// as the language's "no note" marker. An empty list yields the fixed
// no-items message with no header.
func FormatSummary(items []Item, lang string) string {
	if len(items) == 0 {
		return emptyOrderMessage(lang)
	}

	var b strings.Builder
	b.WriteString(summaryHeader(lang))
	for i, item := range items {
		note := item.Note
		if note == "" {
			note = noNoteMarker(lang)
		}
		fmt.Fprintf(&b, "\n%d. %s - %s", i+1, item.Name, note)
	}
	return b.String()
}
