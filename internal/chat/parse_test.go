package chat

import (
	"reflect"
	"testing"
)

func TestParseItems_MixedBlock(t *testing.T) {
	got := ParseItems("- ข้าวผัด 2 จาน (ไม่เผ็ด)\n- ต้มยำ 1 จาน")
	want := []Item{
		{Name: "ข้าวผัด", Note: "ไม่เผ็ด"},
		{Name: "ข้าวผัด", Note: "ไม่เผ็ด"},
		{Name: "ต้มยำ", Note: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseItems = %+v, want %+v", got, want)
	}
}

func TestParseItems_QuantityExpansion(t *testing.T) {
	got := ParseItems("- Pizza 3 จาน")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, item := range got {
		if item.Name != "Pizza" || item.Note != "" {
			t.Errorf("item[%d] = %+v, want {Pizza }", i, item)
		}
	}
}

func TestParseItems_ZeroQuantity(t *testing.T) {
	got := ParseItems("- ข้าวผัด 0 จาน")
	if len(got) != 0 {
		t.Errorf("len = %d, want 0 for zero quantity", len(got))
	}
}

func TestParseItems_MultiDigitQuantity(t *testing.T) {
	got := ParseItems("- ไก่ทอด 12 จาน")
	if len(got) != 12 {
		t.Fatalf("len = %d, want 12", len(got))
	}
	if got[0].Name != "ไก่ทอด" {
		t.Errorf("name = %q, want ไก่ทอด", got[0].Name)
	}
}

func TestParseItems_SkipsNonMatchingLines(t *testing.T) {
	block := "รายการสั่งอาหาร\n- ผัดไทย 1 จาน\nขอบคุณครับ\nต้มยำ 2 จาน"
	got := ParseItems(block)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (only the hyphenated จาน line matches)", len(got))
	}
	if got[0].Name != "ผัดไทย" {
		t.Errorf("name = %q, want ผัดไทย", got[0].Name)
	}
}

func TestParseItems_NoteWhitespace(t *testing.T) {
	got := ParseItems("-ข้าวผัด 1 จาน(เผ็ดน้อย)")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Note != "เผ็ดน้อย" {
		t.Errorf("note = %q, want เผ็ดน้อย", got[0].Note)
	}
}

func TestParseItems_EmptyBlock(t *testing.T) {
	if got := ParseItems(""); len(got) != 0 {
		t.Errorf("len = %d, want 0 for empty block", len(got))
	}
	if got := ParseItems("just chatting"); len(got) != 0 {
		t.Errorf("len = %d, want 0 for prose", len(got))
	}
}

func TestParseItems_PreservesLineOrder(t *testing.T) {
	got := ParseItems("- Burger 1 จาน\n- Steak 1 จาน\n- ผัดไทย 1 จาน")
	names := []string{"Burger", "Steak", "ผัดไทย"}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range names {
		if got[i].Name != want {
			t.Errorf("item[%d].Name = %q, want %q", i, got[i].Name, want)
		}
	}
}
