package gamedata

import (
	"errors"
	"io/fs"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 2 {
		t.Errorf("Expected 2 enemies, got %d", len(enemies))
	}

	expectedIDs := map[string]bool{"orc": false, "troll": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestLoadFromErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte("{not json")},
	}

	if _, err := LoadFrom[EnemiesFile](fsys, "missing.json"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFrom(missing) error = %v, want fs.ErrNotExist", err)
	}
	if _, err := LoadFrom[EnemiesFile](fsys, "broken.json"); err == nil {
		t.Error("LoadFrom(broken) should fail")
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 enemy types, got %d", registry.Count())
	}
	if registry.TotalWeight() != 100 {
		t.Errorf("TotalWeight() = %d, want 100", registry.TotalWeight())
	}

	orc := registry.GetByID("orc")
	if orc == nil {
		t.Fatal("Orc not found by ID")
	}
	if orc.Name != "Orc" {
		t.Errorf("Expected name 'Orc', got %q", orc.Name)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID(dragon) should be nil")
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 20; i++ {
		a, b := registry.SpawnRandom(rng1), registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
	}
}

func TestSpawnRandomWeights(t *testing.T) {
	registry := NewEnemyRegistry([]EnemyDef{
		{ID: "never", SpawnWeight: 0},
		{ID: "always", SpawnWeight: 5},
		{ID: "negative", SpawnWeight: -3},
	})
	if registry.TotalWeight() != 5 {
		t.Fatalf("TotalWeight() = %d, want 5", registry.TotalWeight())
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if got := registry.SpawnRandom(rng).ID; got != "always" {
			t.Fatalf("SpawnRandom() = %q, want always", got)
		}
	}

	empty := NewEnemyRegistry(nil)
	if empty.SpawnRandom(rng) != nil {
		t.Error("SpawnRandom on empty registry should be nil")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"#3F7F3F", tcell.NewRGBColor(63, 127, 63), true},
		{"#000000", tcell.NewRGBColor(0, 0, 0), true},
		{"invalid", tcell.ColorDefault, false},
		{"#GGGGGG", tcell.ColorDefault, false},
		{"#FFF", tcell.ColorDefault, false}, // Too short
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
			continue
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
			continue
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{
		ID:          "test",
		Name:        "Test Enemy",
		Glyph:       "T",
		Color:       "#FF0000",
		HP:          10,
		Attack:      5,
		Defense:     2,
		SpawnWeight: 50,
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("TCellColor() = %v, want red", def.TCellColor())
	}

	blank := EnemyDef{Color: "nope"}
	if blank.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph '?', got %c", blank.GlyphRune())
	}
	if blank.TCellColor() != tcell.ColorYellow {
		t.Errorf("Expected fallback color yellow, got %v", blank.TCellColor())
	}
}
