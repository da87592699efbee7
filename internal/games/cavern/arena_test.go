package cavern

import "testing"

func TestArenaHandleStaleAfterReuse(t *testing.T) {
	a := NewArena(4)

	h1 := a.Spawn(Entity{Kind: KindRobot})
	a.Kill(h1)
	a.Compact()

	// The freed slot is reused; the old handle must not resolve to the
	// newcomer.
	h2 := a.Spawn(Entity{Kind: KindFruit})
	if a.Get(h1) != nil {
		t.Error("stale handle resolved after slot reuse")
	}
	if e := a.Get(h2); e == nil || e.Kind != KindFruit {
		t.Error("fresh handle failed to resolve")
	}
}

func TestArenaKilledEntitiesInertUntilCompact(t *testing.T) {
	a := NewArena(4)
	h := a.Spawn(Entity{Kind: KindOrb})

	a.Kill(h)
	a.Kill(h) // Idempotent

	e := a.Get(h)
	if e == nil {
		t.Fatal("killed entity should still resolve before compaction")
	}
	if e.Alive {
		t.Error("killed entity should report Alive=false")
	}

	a.Compact()
	if a.Get(h) != nil {
		t.Error("entity should be gone after compaction")
	}
	if a.Len() != 0 {
		t.Errorf("arena len = %d, want 0", a.Len())
	}
}

func TestArenaIterationOrder(t *testing.T) {
	a := NewArena(8)
	a.Spawn(Entity{Kind: KindRobot, Points: 1})
	a.Spawn(Entity{Kind: KindRobot, Points: 2})
	a.Spawn(Entity{Kind: KindRobot, Points: 3})

	var seen []int
	a.ForEachKind(KindRobot, func(_ Handle, e *Entity) {
		seen = append(seen, e.Points)
	})

	for i, v := range seen {
		if v != i+1 {
			t.Fatalf("iteration order broken: got %v", seen)
		}
	}
}

func TestArenaCountSkipsDead(t *testing.T) {
	a := NewArena(8)
	a.Spawn(Entity{Kind: KindFruit})
	h := a.Spawn(Entity{Kind: KindFruit})
	a.Kill(h)

	if n := a.CountKind(KindFruit); n != 1 {
		t.Errorf("live fruit count = %d, want 1", n)
	}
}
