package chat

import "testing"

func TestClassify_Reset(t *testing.T) {
	for _, text := range []string{"reset", "Reset", "RESET", "  reset  "} {
		got := Classify(text)
		if got.Kind != IntentReset {
			t.Errorf("Classify(%q).Kind = %v, want IntentReset", text, got.Kind)
		}
	}
}

func TestClassify_Summarize(t *testing.T) {
	for _, text := range []string{"สรุปเมนู", "summary", "Summary", " summary "} {
		got := Classify(text)
		if got.Kind != IntentSummarize {
			t.Errorf("Classify(%q).Kind = %v, want IntentSummarize", text, got.Kind)
		}
	}
}

func TestClassify_QuickAdd(t *testing.T) {
	tests := []struct {
		text string
		name string
		note string
	}{
		{"order pizza extra cheese", "pizza", "extra cheese"},
		{"order pizza", "pizza", ""},
		{"สั่ง ต้มยำ ไม่เผ็ด", "ต้มยำ", "ไม่เผ็ด"},
		{"Order   burger   no pickles", "burger", "no pickles"},
	}
	for _, tt := range tests {
		got := Classify(tt.text)
		if got.Kind != IntentQuickAdd {
			t.Errorf("Classify(%q).Kind = %v, want IntentQuickAdd", tt.text, got.Kind)
			continue
		}
		if got.ItemName != tt.name {
			t.Errorf("Classify(%q).ItemName = %q, want %q", tt.text, got.ItemName, tt.name)
		}
		if got.Note != tt.note {
			t.Errorf("Classify(%q).Note = %q, want %q", tt.text, got.Note, tt.note)
		}
	}
}

// The order keyword is a plain substring check, so a word that merely embeds
// "order" also trips the rule. This is intentional reference behavior.
func TestClassify_EmbeddedOrderWord(t *testing.T) {
	got := Classify("the borders pizza shop")
	if got.Kind != IntentQuickAdd {
		t.Fatalf("Kind = %v, want IntentQuickAdd for embedded keyword", got.Kind)
	}
	if got.ItemName != "borders" {
		t.Errorf("ItemName = %q, want %q", got.ItemName, "borders")
	}
}

// A lone order keyword has fewer than two tokens, so the quick-add rule does
// not fire and the utterance goes to the model.
func TestClassify_OrderKeywordAlone(t *testing.T) {
	got := Classify("order")
	if got.Kind != IntentFreeform {
		t.Errorf("Classify(%q).Kind = %v, want IntentFreeform", "order", got.Kind)
	}
}

func TestClassify_BulkAdd(t *testing.T) {
	// The bulk marker itself contains the Thai order keyword, so only a
	// single-token utterance can reach the bulk rule — anything longer is
	// captured by quick-add first.
	got := Classify("รายการสั่งอาหาร")
	if got.Kind != IntentBulkAdd {
		t.Fatalf("Kind = %v, want IntentBulkAdd", got.Kind)
	}
	if got.Raw != "รายการสั่งอาหาร" {
		t.Errorf("Raw = %q, want the full utterance", got.Raw)
	}
}

func TestClassify_BulkMarkerWithBody_TakenByQuickAdd(t *testing.T) {
	text := "รายการสั่งอาหาร\n- ข้าวผัด 2 จาน"
	got := Classify(text)
	if got.Kind != IntentQuickAdd {
		t.Errorf("Kind = %v, want IntentQuickAdd (quick-add rule wins)", got.Kind)
	}
}

func TestClassify_Freeform(t *testing.T) {
	for _, text := range []string{"", "   ", "hello", "แนะนำเมนูหน่อย", "what do you have?"} {
		got := Classify(text)
		if got.Kind != IntentFreeform {
			t.Errorf("Classify(%q).Kind = %v, want IntentFreeform", text, got.Kind)
		}
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "reset" embedded in a longer utterance is not an exact match; the
	// utterance falls through to freeform.
	got := Classify("please reset everything")
	if got.Kind != IntentFreeform {
		t.Errorf("Kind = %v, want IntentFreeform for non-exact reset", got.Kind)
	}
}
