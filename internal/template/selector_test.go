package template

import "testing"

func TestPickByID(t *testing.T) {
	for _, id := range []string{"classic", "modern", "minimal", "luxury"} {
		got := Pick(id)
		if got.ID != id {
			t.Fatalf("Pick(%q).ID = %q", id, got.ID)
		}
	}
}

func TestPickResolvesAliases(t *testing.T) {
	tests := map[string]string{
		"template1": "classic",
		"template2": "modern",
		"template3": "minimal",
		"template4": "luxury",
	}
	for alias, want := range tests {
		got := Pick(alias)
		if got.ID != want {
			t.Fatalf("Pick(%q).ID = %q, want %q", alias, got.ID, want)
		}
	}
}

func TestPickRandomReturnsRegistered(t *testing.T) {
	for _, id := range []string{"", "random", "no-such-template"} {
		got := Pick(id)
		if _, ok := Lookup(got.ID); !ok {
			t.Fatalf("Pick(%q) returned unregistered template %q", id, got.ID)
		}
		if got.Render == nil {
			t.Fatalf("Pick(%q) returned template without renderer", id)
		}
	}
}

func TestListMetadata(t *testing.T) {
	infos := List()
	if len(infos) != 4 {
		t.Fatalf("List() returned %d templates, want 4", len(infos))
	}
	if infos[0].ID != "classic" || infos[0].Name != "Classic Elegant" {
		t.Fatalf("first template = %+v", infos[0])
	}
	for _, info := range infos {
		if info.Description == "" || info.PreviewColor == "" {
			t.Fatalf("incomplete metadata: %+v", info)
		}
	}
}
