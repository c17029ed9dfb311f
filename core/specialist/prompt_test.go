package specialist

import (
	"strings"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "historical expert", id: HistoricalExpert},
		{name: "geography specialist", id: GeographySpecialist},
		{name: "detroit historian", id: DetroitHistorian},
		{name: "unknown id", id: "Culinary_Expert", wantErr: ErrNotFound},
		{name: "empty id", id: "", wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := reg.Get(tt.id)
			if err != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && sp.ID != tt.id {
				t.Errorf("Get() ID = %v, want %v", sp.ID, tt.id)
			}
		})
	}
}

func TestRegistryOrder(t *testing.T) {
	reg := DefaultRegistry()
	want := []string{HistoricalExpert, GeographySpecialist, DetroitHistorian}
	got := reg.IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IDs()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	reg := DefaultRegistry()
	sp, _ := reg.Get(HistoricalExpert)

	t.Run("base prompt", func(t *testing.T) {
		system, user := BuildPrompt(sp, "How did statehood happen?", "", false)

		for _, want := range []string{sp.Name, sp.Title, sp.Background, sp.Personality} {
			if !strings.Contains(system, want) {
				t.Errorf("system prompt missing %q", want)
			}
		}
		for _, area := range sp.KeyAreas {
			if !strings.Contains(system, "- "+area) {
				t.Errorf("system prompt missing bulleted area %q", area)
			}
		}
		if strings.Contains(system, sp.ResidentFocus) {
			t.Error("system prompt contains resident focus for unverified user")
		}
		if !strings.Contains(user, "How did statehood happen?") {
			t.Error("user message missing question")
		}
		if strings.Contains(user, "I'm asking from") {
			t.Error("user message mentions location without one being set")
		}
	})

	t.Run("verified resident with location", func(t *testing.T) {
		system, user := BuildPrompt(sp, "What about my city?", "Dearborn, Michigan 48124", true)

		if !strings.Contains(system, sp.ResidentFocus) {
			t.Error("system prompt missing resident focus for verified resident")
		}
		if !strings.Contains(system, "verified Michigan resident") {
			t.Error("system prompt missing resident framing")
		}
		if !strings.Contains(user, "(I'm asking from Dearborn, Michigan 48124)") {
			t.Error("user message missing location")
		}
	})

	t.Run("pure function", func(t *testing.T) {
		s1, u1 := BuildPrompt(sp, "q", "loc", true)
		s2, u2 := BuildPrompt(sp, "q", "loc", true)
		if s1 != s2 || u1 != u2 {
			t.Error("BuildPrompt is not deterministic")
		}
	})
}
