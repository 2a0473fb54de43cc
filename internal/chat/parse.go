package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// itemLine matches one structured order line: a leading hyphen, an item name,
// an integer quantity, the Thai counting word จาน, and an optional
// parenthesized note. Example: "- ข้าวผัด 2 จาน (ไม่เผ็ด)".
var itemLine = regexp.MustCompile(`^-\s*(.+?)\s*(\d+)\s*จาน(?:\s*\((.+?)\))?`)

// ParseItems extracts order items from a multi-line text block. Each
// matching line expands to quantity-many Item entries sharing the same name
// and note; lines that don't match the grammar are skipped. A quantity of
// zero contributes nothing. Input line order is preserved.
func ParseItems(block string) []Item {
	var items []Item
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		m := itemLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		note := m[3]
		for i := 0; i < qty; i++ {
			items = append(items, Item{Name: name, Note: note})
		}
	}
	return items
}
