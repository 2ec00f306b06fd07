package fov

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/cavern/internal/world"
)

// openLevel returns a level where every cell is Ground.
func openLevel(t *testing.T, width, height int) *world.Level {
	t.Helper()
	level, err := world.NewLevel(width, height)
	if err != nil {
		t.Fatalf("NewLevel(%d, %d): %v", width, height, err)
	}
	level.Fill(world.Ground)
	return level
}

// randomLevel returns a level with roughly wallPct percent walls.
func randomLevel(t *testing.T, rng *rand.Rand, width, height, wallPct int) *world.Level {
	t.Helper()
	level, err := world.NewLevel(width, height)
	if err != nil {
		t.Fatalf("NewLevel(%d, %d): %v", width, height, err)
	}
	for p := range level.Positions() {
		switch {
		case rng.Intn(100) < wallPct/2:
			level.Set(p, world.Wall)
		case rng.Intn(100) < wallPct/2:
			level.Set(p, world.RoomWall)
		default:
			level.Set(p, world.Ground)
		}
	}
	return level
}

func visibleSet(mask *Mask) map[world.Pos]bool {
	set := make(map[world.Pos]bool)
	for p, v := range mask.All() {
		if v {
			set[p] = true
		}
	}
	return set
}

func TestComputeRadiusZero(t *testing.T) {
	level := openLevel(t, 9, 9)
	origin := world.Pos{X: 4, Y: 4}

	got := visibleSet(Compute(level, origin, 0))
	if len(got) != 1 || !got[origin] {
		t.Errorf("radius 0 visible set = %v, want only %v", got, origin)
	}
}

func TestComputeOriginAlwaysVisible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	level := randomLevel(t, rng, 20, 20, 60)

	for i := 0; i < 100; i++ {
		origin := world.Pos{X: rng.Intn(20), Y: rng.Intn(20)}
		radius := rng.Intn(10)
		mask := Compute(level, origin, radius)
		if !mask.At(origin) {
			t.Fatalf("origin %v not visible with radius %d", origin, radius)
		}
		if mask.Dim() != level.Dim() {
			t.Fatalf("mask dim %v, want %v", mask.Dim(), level.Dim())
		}
	}
}

func TestComputeOpenFieldIsEuclideanDisc(t *testing.T) {
	level := openLevel(t, 21, 21)
	origin := world.Pos{X: 10, Y: 10}
	radius := 6

	mask := Compute(level, origin, radius)
	for p, v := range mask.All() {
		dx, dy := p.X-origin.X, p.Y-origin.Y
		want := dx*dx+dy*dy <= radius*radius
		if v != want {
			t.Errorf("cell %v visible = %v, want %v", p, v, want)
		}
	}
}

func TestComputeWallOccludes(t *testing.T) {
	level := openLevel(t, 11, 11)
	level.Set(world.Pos{X: 5, Y: 5}, world.RoomWall)

	mask := Compute(level, world.Pos{X: 5, Y: 2}, 10)

	if !mask.At(world.Pos{X: 5, Y: 5}) {
		t.Error("the wall itself should be visible")
	}
	for y := 6; y < 11; y++ {
		if mask.At(world.Pos{X: 5, Y: y}) {
			t.Errorf("cell (5,%d) behind the wall should not be visible", y)
		}
	}
	if !mask.At(world.Pos{X: 0, Y: 2}) {
		t.Error("cell along the open row should be visible")
	}
}

func TestComputeLevelEdgesAreOpaque(t *testing.T) {
	level := openLevel(t, 3, 3)
	mask := Compute(level, world.Pos{X: 0, Y: 0}, 10)

	if len(visibleSet(mask)) != 9 {
		t.Errorf("expected whole 3x3 level visible, got %v", visibleSet(mask))
	}
}

func TestComputeInvalidOriginPanics(t *testing.T) {
	level := openLevel(t, 3, 3)
	defer func() {
		if recover() == nil {
			t.Error("Compute with an out-of-bounds origin should panic")
		}
	}()
	Compute(level, world.Pos{X: 3, Y: 0}, 2)
}

// Along the eight straight rays from the origin, nothing beyond the first
// opaque cell is visible.
func TestComputeNothingVisibleBehindOpaqueOnRays(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	dirs := []world.Dir{
		world.North, world.South, world.East, world.West,
		world.NorthEast, world.NorthWest, world.SouthEast, world.SouthWest,
	}

	for trial := 0; trial < 20; trial++ {
		level := randomLevel(t, rng, 25, 25, 30)
		origin := world.Pos{X: rng.Intn(25), Y: rng.Intn(25)}
		level.Set(origin, world.Ground)
		mask := Compute(level, origin, 12)

		for _, d := range dirs {
			blocked := false
			for p := origin.Add(d); level.IsValid(p); p = p.Add(d) {
				if blocked && mask.At(p) {
					t.Fatalf("trial %d: %v visible from %v behind an opaque cell", trial, p, origin)
				}
				if level.BlocksSight(p) {
					blocked = true
				}
			}
		}
	}
}

func TestComputeIsSymmetric(t *testing.T) {
	const width, height, radius = 18, 14, 7

	for _, seed := range []int64{1, 2, 3} {
		rng := rand.New(rand.NewSource(seed))
		level := randomLevel(t, rng, width, height, 35)

		masks := make(map[world.Pos]*Mask)
		for p := range level.Positions() {
			if !level.BlocksSight(p) {
				masks[p] = Compute(level, p, radius)
			}
		}

		for a, maskA := range masks {
			for b, maskB := range masks {
				if maskA.At(b) != maskB.At(a) {
					t.Fatalf("seed %d: %v sees %v = %v, but reverse = %v", seed, a, b, maskA.At(b), maskB.At(a))
				}
			}
		}
	}
}
