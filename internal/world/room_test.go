package world

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func randomRoom(t *testing.T, rng *rand.Rand) Room {
	t.Helper()
	from := Pos{X: rng.Intn(12) + 1, Y: rng.Intn(12) + 1}
	room, err := NewRoom(from, Dim{Width: rng.Intn(5) + 1, Height: rng.Intn(5) + 1})
	if err != nil {
		t.Fatal(err)
	}
	return room
}

func TestNewRoom(t *testing.T) {
	room, err := NewRoom(Pos{X: 2, Y: 3}, Dim{Width: 4, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if room.To != (Pos{X: 6, Y: 5}) {
		t.Errorf("To = %v, want (6,5)", room.To)
	}
	if room.Width() != 4 || room.Height() != 2 {
		t.Errorf("extent = %dx%d, want 4x2", room.Width(), room.Height())
	}
	if n := len(slices.Collect(room.Positions())); n != 15 {
		t.Errorf("interior has %d cells, want 15", n)
	}
}

func TestNewRoomErrors(t *testing.T) {
	tests := []struct {
		name string
		from Pos
		dim  Dim
	}{
		{"origin on border column", Pos{X: 0, Y: 1}, Dim{Width: 2, Height: 2}},
		{"origin on border row", Pos{X: 1, Y: 0}, Dim{Width: 2, Height: 2}},
		{"zero width", Pos{X: 1, Y: 1}, Dim{Width: 0, Height: 2}},
		{"negative height", Pos{X: 1, Y: 1}, Dim{Width: 2, Height: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRoom(tt.from, tt.dim); !errors.Is(err, ErrInvalidRoom) {
				t.Errorf("NewRoom(%v, %v) error = %v, want ErrInvalidRoom", tt.from, tt.dim, err)
			}
		})
	}
}

func TestRoomGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for range 200 {
		room := randomRoom(t, rng)
		for _, p := range []Pos{room.From, room.To, room.Center()} {
			if !room.Contains(p) {
				t.Fatalf("%v does not contain %v", room, p)
			}
		}
		for _, c := range room.Corners() {
			if !room.Contains(c) {
				t.Fatalf("%v does not contain corner %v", room, c)
			}
		}

		interior := make(map[Pos]bool)
		for p := range room.Positions() {
			interior[p] = true
		}

		walls := slices.Collect(room.Walls())
		wantWalls := 2*(room.Width()+3) + 2*(room.Height()+1)
		if len(walls) != wantWalls {
			t.Fatalf("%v has %d wall cells, want %d", room, len(walls), wantWalls)
		}
		seen := make(map[Pos]bool)
		for _, w := range walls {
			if seen[w] {
				t.Fatalf("%v yields wall %v twice", room, w)
			}
			seen[w] = true
			if interior[w] || room.Contains(w) {
				t.Fatalf("%v wall %v overlaps the interior", room, w)
			}
			if !room.ContainsOrTouches(w) {
				t.Fatalf("%v wall %v does not touch the room", room, w)
			}
		}
	}
}

func TestRoomIntersectsMatchesTouching(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for range 500 {
		a, b := randomRoom(t, rng), randomRoom(t, rng)

		want := false
		for p := range a.Positions() {
			if b.ContainsOrTouches(p) {
				want = true
				break
			}
		}

		if got := a.Intersects(b); got != want {
			t.Fatalf("%v.Intersects(%v) = %v, want %v", a, b, got, want)
		}
		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("Intersects is not symmetric for %v and %v", a, b)
		}
	}
}

func TestRoomIntersectsAdjacent(t *testing.T) {
	a, _ := NewRoom(Pos{X: 1, Y: 1}, Dim{Width: 2, Height: 2})

	tests := []struct {
		name string
		from Pos
		want bool
	}{
		{"shared wall column", Pos{X: 4, Y: 1}, true},
		{"one cell gap", Pos{X: 5, Y: 1}, false},
		{"diagonal touching", Pos{X: 4, Y: 4}, true},
		{"far away", Pos{X: 10, Y: 10}, false},
	}

	for _, tt := range tests {
		b, _ := NewRoom(tt.from, Dim{Width: 2, Height: 2})
		if got := a.Intersects(b); got != tt.want {
			t.Errorf("%s: %v.Intersects(%v) = %v, want %v", tt.name, a, b, got, tt.want)
		}
	}
}
