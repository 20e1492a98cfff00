package life

import (
	"context"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"conways-life/internal/core"
)

func mustGrid(t *testing.T, cols, rows int, live ...int) *core.Grid {
	t.Helper()
	g, err := core.NewGridWithSeed(cols, rows, live)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNextRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantLive := n == 2 || n == 3
		if got := Next(true, n); got != wantLive {
			t.Fatalf("live cell with %d neighbours -> %v, expected %v", n, got, wantLive)
		}
		wantDead := n == 3
		if got := Next(false, n); got != wantDead {
			t.Fatalf("dead cell with %d neighbours -> %v, expected %v", n, got, wantDead)
		}
	}
}

func TestEmptyGridIsFixedPoint(t *testing.T) {
	g := mustGrid(t, 6, 4)
	if next := Step(g); !next.Equal(g) {
		t.Fatalf("empty grid changed: %v", next.Live())
	}
}

func TestBlockIsStable(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if err := Place(g, Block, 1, 1); err != nil {
		t.Fatal(err)
	}
	if next := Step(g); !next.Equal(g) {
		t.Fatalf("block changed: %v -> %v", g.Live(), next.Live())
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5)
	if err := Place(g, Blinker, 1, 2); err != nil {
		t.Fatal(err)
	}

	once := Step(g)
	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c, _ := once.Get(x, y)
			if expects[[2]int{x, y}] != c.IsAlive() {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, c.IsAlive(), expects[[2]int{x, y}])
			}
		}
	}

	if twice := Step(once); !twice.Equal(g) {
		t.Fatalf("after second step live=%v, expected %v", twice.Live(), g.Live())
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := mustGrid(t, 19, 10, DefaultSeed...)
	before := g.Clone()
	first := Step(g)
	if !g.Equal(before) {
		t.Fatal("Step mutated its input")
	}
	if second := Step(g); !second.Equal(first) {
		t.Fatal("Step is not deterministic")
	}
}

func TestCornerHasNoWraparound(t *testing.T) {
	// The opposite corners would give (0,0) three neighbours on a torus.
	g := mustGrid(t, 5, 5, 4, 20, 24)
	if n := Neighbors(g, 0, 0); n != 0 {
		t.Fatalf("corner counted %d neighbours across the edge", n)
	}

	full := mustGrid(t, 3, 3, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	if n := Neighbors(full, 0, 0); n != 3 {
		t.Fatalf("corner of a full grid has %d neighbours, expected 3", n)
	}
	if n := Neighbors(full, 1, 0); n != 5 {
		t.Fatalf("edge of a full grid has %d neighbours, expected 5", n)
	}
	if n := Neighbors(full, 1, 1); n != 8 {
		t.Fatalf("centre of a full grid has %d neighbours, expected 8", n)
	}

	lone := mustGrid(t, 5, 5, 0)
	if next := Step(lone); next.CountAlive() != 0 {
		t.Fatalf("lone corner cell should die, got %v", next.Live())
	}
}

func TestDefaultSeedFirstGeneration(t *testing.T) {
	g := mustGrid(t, 19, 10, DefaultSeed...)
	want := []int{64, 65, 66, 81, 83, 85, 87, 100, 102, 104, 106, 119, 121, 123, 125, 140, 141, 142}
	if got := Step(g).Live(); !slices.Equal(got, want) {
		t.Fatalf("first generation live=%v, expected %v", got, want)
	}
}

func TestStepIntoMatchesStep(t *testing.T) {
	src := mustGrid(t, 19, 10, DefaultSeed...)
	dst := mustGrid(t, 19, 10, 0, 1, 2, 3) // stale contents must be overwritten
	if err := StepInto(dst, src); err != nil {
		t.Fatal(err)
	}
	if !dst.Equal(Step(src)) {
		t.Fatal("StepInto diverged from Step")
	}

	if err := StepInto(src, src); err == nil {
		t.Fatal("expected aliasing to be rejected")
	}
	small := mustGrid(t, 3, 3)
	if err := StepInto(small, src); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("mismatched sizes err=%v", err)
	}
}

func TestStepParallelMatchesStep(t *testing.T) {
	src := mustGrid(t, 64, 48)
	core.NewRNG(7).Fill(src, 0.35)
	want := Step(src)

	for _, workers := range []int{0, 1, 3, 7, 100} {
		dst := mustGrid(t, 64, 48)
		if err := StepParallel(context.Background(), dst, src, workers); err != nil {
			t.Fatal(err)
		}
		if !dst.Equal(want) {
			t.Fatalf("workers=%d diverged from serial step", workers)
		}
	}
}

func TestStepParallelHonoursCancellation(t *testing.T) {
	src := mustGrid(t, 16, 16)
	dst := mustGrid(t, 16, 16)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := StepParallel(ctx, dst, src, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPlaceRejectsOverflow(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if err := Place(g, Glider, 1, 1); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("err=%v", err)
	}
	if g.CountAlive() != 0 {
		t.Fatal("partial pattern written")
	}
}
