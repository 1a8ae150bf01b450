package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 256; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if r.Chance(-1) {
			t.Fatal("negative probability must never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}
