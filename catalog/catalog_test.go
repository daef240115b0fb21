package catalog

import "testing"

func TestDefault(t *testing.T) {
	cat := Default()

	if cat.Len() != 10 {
		t.Errorf("Len = %d, want 10", cat.Len())
	}

	chatgpt, ok := cat.Lookup("chatgpt")
	if !ok {
		t.Fatal("chatgpt missing from default catalog")
	}
	if chatgpt.Name != "ChatGPT" || chatgpt.BaseCount != 13 {
		t.Errorf("chatgpt = %+v", chatgpt)
	}

	// First and last entries pin the fixed order
	entries := cat.Entries()
	if entries[0].ID != "chatgpt" || entries[9].ID != "gemini" {
		t.Errorf("order = %v", entries)
	}
}

func TestNew_DropsDuplicateIDs(t *testing.T) {
	cat := New([]Entry{
		{ID: "a", BaseCount: 1},
		{ID: "a", BaseCount: 99},
		{ID: "b", BaseCount: 2},
	})

	if cat.Len() != 2 {
		t.Errorf("Len = %d, want 2", cat.Len())
	}
	a, _ := cat.Lookup("a")
	if a.BaseCount != 1 {
		t.Errorf("first entry must win, got %+v", a)
	}
}

func TestLookup_Unknown(t *testing.T) {
	cat := Default()
	if _, ok := cat.Lookup("nonexistent"); ok {
		t.Error("Lookup returned ok for unknown id")
	}
	if cat.Contains("nonexistent") {
		t.Error("Contains returned true for unknown id")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	cat := Default()
	entries := cat.Entries()
	entries[0].BaseCount = 777

	if fresh := cat.Entries(); fresh[0].BaseCount == 777 {
		t.Error("mutating the returned slice leaked into the catalog")
	}
}
