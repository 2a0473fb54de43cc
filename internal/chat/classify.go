package chat

import "strings"

// IntentKind identifies which deterministic command (if any) an utterance
// matched.
type IntentKind int

const (
	// IntentFreeform means no command matched; the utterance goes to the
	// language model.
	IntentFreeform IntentKind = iota
	// IntentReset clears the session.
	IntentReset
	// IntentSummarize formats the current order list.
	IntentSummarize
	// IntentQuickAdd adds a single item named inline ("order pizza no cheese").
	IntentQuickAdd
	// IntentBulkAdd carries a structured item block for line parsing.
	IntentBulkAdd
)

// Intent is the result of classifying one utterance.
type Intent struct {
	Kind IntentKind

	// ItemName and Note are set for IntentQuickAdd.
	ItemName string
	Note     string

	// Raw is the full utterance, set for IntentBulkAdd.
	Raw string
}

// Keyword triggers for the quick-add and bulk-add commands. These are plain
// substring checks, not word-boundary matches: an item name that embeds
// "order" also trips the quick-add rule. That matches how customers actually
// type and is covered by tests.
const (
	thaiOrderWord    = "สั่ง"
	englishOrderWord = "order"
	bulkBlockMarker  = "รายการสั่งอาหาร"
)

// Classify inspects an utterance and decides which deterministic command it
// matches, if any. Rules apply in priority order; the first match wins.
// Matching is case-insensitive on a whitespace-trimmed copy.
func Classify(text string) Intent {
	trimmed := strings.TrimSpace(text)
	lowered := strings.ToLower(trimmed)

	if lowered == "reset" {
		return Intent{Kind: IntentReset}
	}

	if lowered == "สรุปเมนู" || lowered == "summary" {
		return Intent{Kind: IntentSummarize}
	}

	if strings.Contains(lowered, thaiOrderWord) || strings.Contains(lowered, englishOrderWord) {
		tokens := strings.Fields(trimmed)
		if len(tokens) >= 2 {
			return Intent{
				Kind:     IntentQuickAdd,
				ItemName: tokens[1],
				Note:     strings.Join(tokens[2:], " "),
			}
		}
	}

	if strings.Contains(trimmed, bulkBlockMarker) {
		return Intent{Kind: IntentBulkAdd, Raw: trimmed}
	}

	return Intent{Kind: IntentFreeform}
}
