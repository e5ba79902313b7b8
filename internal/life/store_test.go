package life

import (
	"testing"

	"sparselife/internal/core"
)

func TestStoreSetAliveIdempotent(t *testing.T) {
	s := NewStore()
	pos := core.Position{X: 3, Y: -4}

	s.SetAlive(pos)
	s.SetAlive(pos)

	if s.Count() != 1 {
		t.Fatalf("count = %d after double insert, want 1", s.Count())
	}
	if !s.IsAlive(pos) {
		t.Fatal("cell should be alive")
	}
}

func TestStoreSetAliveKeepsRecord(t *testing.T) {
	s := NewStore()
	pos := core.Position{X: 1, Y: 1}

	s.setRecord(pos, 5)
	s.SetAlive(pos)

	if got := s.cells[pos].neighbors; got != 5 {
		t.Fatalf("re-inserting a live cell reset its record: neighbors = %d", got)
	}
}

func TestStoreSetDeadIsNoOpWhenAbsent(t *testing.T) {
	s := NewStore()
	s.SetDead(core.Position{X: 9, Y: 9})
	if s.Count() != 0 {
		t.Fatalf("count = %d, want 0", s.Count())
	}
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	a := core.Position{X: 0, Y: 0}
	b := core.Position{X: -1, Y: 2}

	s.SetAlive(a)
	s.SetAlive(b)
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}

	s.SetDead(a)
	if s.IsAlive(a) {
		t.Fatal("cell a should be dead")
	}
	if !s.IsAlive(b) {
		t.Fatal("cell b should still be alive")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("count = %d after clear, want 0", s.Count())
	}
}

func TestStorePositionsSnapshot(t *testing.T) {
	s := NewStore()
	a := core.Position{X: 1, Y: 0}
	b := core.Position{X: 2, Y: 0}
	s.SetAlive(a)
	s.SetAlive(b)

	snap := s.Positions()
	s.SetDead(a)
	s.SetDead(b)

	if len(snap) != 2 {
		t.Fatalf("snapshot length %d changed by later mutation, want 2", len(snap))
	}
}
