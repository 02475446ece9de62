package const_data

import (
	"testing"

	"go-splendor/entities"
)

func TestCatalogSizes(t *testing.T) {
	want := map[int]int{1: 40, 2: 30, 3: 20}
	for level, n := range want {
		if got := len(CardsByLevel(level)); got != n {
			t.Fatalf("level %d: expected %d cards, got %d", level, n, got)
		}
	}
	if len(NobleTiles) != 10 {
		t.Fatalf("expected 10 nobles, got %d", len(NobleTiles))
	}
	if CardsByLevel(4) != nil {
		t.Fatal("expected nil for unknown level")
	}
}

func TestCatalogInvariants(t *testing.T) {
	seen := map[int]bool{}
	for level := 1; level <= Levels; level++ {
		for _, c := range CardsByLevel(level) {
			if seen[c.ID] {
				t.Fatalf("duplicate card id %d", c.ID)
			}
			seen[c.ID] = true
			if c.Level != level {
				t.Fatalf("card %d: level %d listed under %d", c.ID, c.Level, level)
			}
			if c.Cost[entities.Gold] != 0 {
				t.Fatalf("card %d costs gold", c.ID)
			}
			if !c.Bonus.IsColored() {
				t.Fatalf("card %d has non-colored bonus %s", c.ID, c.Bonus)
			}
			if c.TotalCost() == 0 {
				t.Fatalf("card %d is free", c.ID)
			}
		}
	}
	for _, n := range NobleTiles {
		if n.Points != 3 {
			t.Fatalf("noble %d worth %d", n.ID, n.Points)
		}
		if n.Cost[entities.Gold] != 0 {
			t.Fatalf("noble %d requires gold", n.ID)
		}
	}
}

func TestCardsByLevelReturnsCopy(t *testing.T) {
	cards := CardsByLevel(1)
	cards[0].Points = 99
	if Level1Cards[0].Points == 99 {
		t.Fatal("CardsByLevel must not expose the catalog slice")
	}
}

func TestLookup(t *testing.T) {
	c, ok := CardByID(306)
	if !ok || c.Level != 3 || c.Bonus != entities.Sapphire || c.Cost[entities.Diamond] != 7 {
		t.Fatalf("unexpected card 306: %+v ok=%v", c, ok)
	}
	if _, ok := CardByID(999); ok {
		t.Fatal("expected unknown card")
	}
	n, ok := NobleByID(1)
	if !ok || n.Name != "Mary Stuart" {
		t.Fatalf("unexpected noble 1: %+v", n)
	}
}
