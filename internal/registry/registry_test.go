package registry

import (
	"testing"

	"github.com/JJC3321/BeatDash/internal/core"
)

type stubGame struct {
	id, title string
	resets    int
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return s.title }
func (s *stubGame) Reset(core.RuntimeConfig)             { s.resets++ }
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") {
		t.Error("Exists returned false for registered mode")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("created mode ID = %q", g.ID())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("stub-a")
	if g == g2 {
		t.Error("Create returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-mode"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if Exists("no-such-mode") {
		t.Error("Exists returned true for unknown mode")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z", title: "Stub Z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "Stub B"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := map[string]string{}
	for _, info := range list {
		found[info.ID] = info.Title
	}
	if found["stub-b"] != "Stub B" {
		t.Errorf("missing or wrong title for stub-b: %q", found["stub-b"])
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
