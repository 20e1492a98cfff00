package life

import (
	"testing"

	"conways-life/internal/core"
)

func TestCellCenter(t *testing.T) {
	c := CellCenter(2, 1, 50, core.Pt(10, 20))
	if c.X != 135 || c.Y != 95 {
		t.Fatalf("centre=%+v", c)
	}
}

func TestApplyInfluenceMarksCellsWithinReach(t *testing.T) {
	g := mustGrid(t, 19, 10)
	inf := Influence{Pointer: core.Pt(125, 75), Radius: 25, CellSize: 50}

	out := ApplyInfluence(g, inf)
	if g.CountAlive() != 0 {
		t.Fatal("ApplyInfluence mutated its input")
	}

	// Pointer sits on the centre of cell (2,1). Reach is 25+25=50 px from
	// cell centres: orthogonal neighbours are exactly 50 px away and excluded.
	want := []int{1*19 + 2}
	got := out.Live()
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("live=%v, expected %v", got, want)
	}

	inf.Radius = 26
	got = ApplyInfluence(g, inf).Live()
	if len(got) != 5 {
		t.Fatalf("radius 26 should reach the four orthogonal neighbours, got %v", got)
	}
}

func TestApplyInfluenceNeverKills(t *testing.T) {
	g := mustGrid(t, 10, 10)
	core.NewRNG(3).Fill(g, 0.5)
	before := g.Clone()

	inf := Influence{Pointer: core.Pt(120, 80), Radius: 60, CellSize: 25}
	born := ApplyInfluenceInPlace(g, inf)

	for i, c := range before.Cells() {
		if c == core.Alive && g.Cells()[i] != core.Alive {
			t.Fatalf("cell %d was killed by influence", i)
		}
	}
	if g.CountAlive() != before.CountAlive()+born {
		t.Fatalf("born=%d does not match population change %d -> %d", born, before.CountAlive(), g.CountAlive())
	}
}

func TestApplyInfluenceMatchesExhaustiveScan(t *testing.T) {
	g := mustGrid(t, 40, 20)
	for _, inf := range []Influence{
		{Pointer: core.Pt(0, 0), Radius: 25, CellSize: 10},
		{Pointer: core.Pt(399, 199), Radius: 100, CellSize: 10},
		{Pointer: core.Pt(-30, 50), Radius: 40, CellSize: 10},
		{Pointer: core.Pt(500, 500), Radius: 25, CellSize: 10},
		{Pointer: core.Pt(137, 64), Radius: 33, CellSize: 5, Origin: core.Pt(12, 7)},
	} {
		out := ApplyInfluence(g, inf)
		for y := 0; y < g.Rows(); y++ {
			for x := 0; x < g.Cols(); x++ {
				c, _ := out.Get(x, y)
				if c.IsAlive() != inf.Touches(x, y) {
					t.Fatalf("influence %+v: cell (%d,%d) alive=%v, expected %v", inf, x, y, c.IsAlive(), inf.Touches(x, y))
				}
			}
		}
	}
}

func TestApplyInfluenceIgnoresDegenerateInput(t *testing.T) {
	g := mustGrid(t, 5, 5)
	if n := ApplyInfluenceInPlace(g, Influence{Pointer: core.Pt(10, 10), Radius: 25}); n != 0 {
		t.Fatalf("zero cell size should be a no-op, born %d", n)
	}
}
