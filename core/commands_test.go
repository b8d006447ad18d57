package core

import (
	"testing"
)

func TestSearchFiltersByScopeAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "a", Name: "Alpha", Scopes: []string{"tab:a"}},
		{ID: "b", Name: "Beta", Scopes: []string{"tab:b"}, Disabled: func(m *Model) (bool, string) { return true, "blocked" }},
	})
	m, _ := newTestModel(t, 2)
	resA := reg.Search("", "tab:a", &m)
	if len(resA) != 1 || resA[0].CommandID != "a" {
		t.Fatalf("expected only command a in tab:a, got %+v", resA)
	}
	resB := reg.Search("", "tab:b", &m)
	if len(resB) != 1 || !resB[0].Disabled || resB[0].Reason != "blocked" {
		t.Fatalf("expected disabled command in tab:b, got %+v", resB)
	}
}

func TestSearchRanksTyposAfterSubstringHits(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "goto-gallery", Name: "Go to Gallery"},
		{ID: "goto-workshop", Name: "Go to Workshop Space"},
		{ID: "goto-cafe", Name: "Go to Café & Library"},
	})
	m, _ := newTestModel(t, 2)

	res := reg.Search("galery", "*", &m)
	if len(res) != 1 || res[0].CommandID != "goto-gallery" {
		t.Fatalf("typo search = %+v, want only goto-gallery", res)
	}

	res = reg.Search("space", "*", &m)
	if len(res) != 1 || res[0].CommandID != "goto-workshop" {
		t.Fatalf("substring search = %+v", res)
	}

	res = reg.Search("go", "*", &m)
	if len(res) != 3 || res[0].Name != "Go to Café & Library" {
		t.Fatalf("ties should sort by name, got %+v", res)
	}

	if res := reg.Search("zzzzzz", "*", &m); len(res) != 0 {
		t.Fatalf("unrelated query matched %+v", res)
	}
}

func TestExecuteUnknownAndDisabled(t *testing.T) {
	reg := NewCommandRegistry([]Command{
		{ID: "off", Name: "Off", Disabled: func(*Model) (bool, string) { return true, "" }},
	})
	m, _ := newTestModel(t, 2)
	msg := reg.Execute("nope", &m)()
	if st, ok := msg.(StatusMsg); !ok || st.Text != "Unknown command: nope" {
		t.Fatalf("unknown command msg = %#v", msg)
	}
	msg = reg.Execute("off", &m)()
	if st, ok := msg.(StatusMsg); !ok || st.Text != "command is disabled" {
		t.Fatalf("disabled command msg = %#v", msg)
	}
}
