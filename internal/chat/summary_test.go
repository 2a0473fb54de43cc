package chat

import (
	"strings"
	"testing"
)

func TestFormatSummary_EmptyOrder(t *testing.T) {
	if got := FormatSummary(nil, LangThai); got != "ยังไม่มีเมนูที่ถูกสั่ง" {
		t.Errorf("thai empty = %q", got)
	}
	if got := FormatSummary(nil, "en"); got != "No items ordered yet." {
		t.Errorf("english empty = %q", got)
	}
}

func TestFormatSummary_English(t *testing.T) {
	items := []Item{
		{Name: "pizza", Note: "extra cheese"},
		{Name: "burger", Note: ""},
	}
	got := FormatSummary(items, "en")
	want := "📝 Order Summary:\n1. pizza - extra cheese\n2. burger - No note"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestFormatSummary_Thai(t *testing.T) {
	items := []Item{{Name: "ข้าวผัด", Note: ""}}
	got := FormatSummary(items, LangThai)
	if !strings.HasPrefix(got, "📝 สรุปเมนูที่สั่ง:") {
		t.Errorf("summary missing thai header: %q", got)
	}
	if !strings.Contains(got, "1. ข้าวผัด - ไม่มีหมายเหตุ") {
		t.Errorf("summary missing no-note marker line: %q", got)
	}
}

func TestFormatSummary_OneIndexedInsertionOrder(t *testing.T) {
	items := []Item{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	}
	got := FormatSummary(items, "en")
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want header + 3", len(lines))
	}
	for i, name := range []string{"a", "b", "c"} {
		line := lines[i+1]
		if !strings.HasPrefix(line, string(rune('1'+i))+". "+name) {
			t.Errorf("line %d = %q, want prefix %d. %s", i+1, line, i+1, name)
		}
	}
}
