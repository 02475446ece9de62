package engine

import (
	"reflect"
	"testing"

	"go-splendor/const_data"
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

// randomAction 从合法动作概览里随机挑一个动作
func randomAction(t *testing.T, s *GameState, rng *rand.Rand) Action {
	t.Helper()
	p := s.CurrentPlayer()
	sum, err := LegalActionsSummary(s, p.ID)
	if err != nil {
		t.Fatalf("LegalActionsSummary: %v", err)
	}
	if sum.PendingDiscard {
		a, err := DisconnectedSeatAction(s, p.ID)
		if err != nil {
			t.Fatalf("DisconnectedSeatAction: %v", err)
		}
		return a
	}

	roll := rng.Intn(10)
	switch {
	case len(sum.PurchasableCardIDs) > 0 && roll < 6:
		return PurchaseCard(p.ID, sum.PurchasableCardIDs[rng.Intn(len(sum.PurchasableCardIDs))])
	case len(sum.ReservableCardIDs) > 0 && roll == 6:
		return ReserveCard(p.ID, sum.ReservableCardIDs[rng.Intn(len(sum.ReservableCardIDs))])
	case len(sum.BlindReserveTiers) > 0 && roll == 7:
		return ReserveFromDeck(p.ID, sum.BlindReserveTiers[rng.Intn(len(sum.BlindReserveTiers))])
	case len(sum.DoubleTakeColors) > 0 && roll == 8:
		var gems entities.GemPool
		gems[sum.DoubleTakeColors[rng.Intn(len(sum.DoubleTakeColors))]] = 2
		return TakeGems(p.ID, gems)
	}

	var gems entities.GemPool
	colors := append([]entities.GemColor(nil), sum.TakeableColors...)
	rng.Shuffle(len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
	for i := 0; i < len(colors) && i < 3; i++ {
		gems[colors[i]] = 1
	}
	return TakeGems(p.ID, gems)
}

func checkGemConservation(t *testing.T, s *GameState) {
	t.Helper()
	total := s.Bank
	for _, p := range s.Players {
		if p.Gems.HasNegative() {
			t.Fatalf("turn %d: %s holds negative gems %v", s.Turn, p.ID, p.Gems)
		}
		total = total.Add(p.Gems)
	}
	if s.Bank.HasNegative() {
		t.Fatalf("turn %d: negative bank %v", s.Turn, s.Bank)
	}
	if total != s.InitialSupply {
		t.Fatalf("turn %d: gems not conserved: %v vs %v", s.Turn, total, s.InitialSupply)
	}
}

func checkCardLocations(t *testing.T, s *GameState) {
	t.Helper()
	seen := make(map[int]int)
	for tier := range s.Display {
		for _, c := range s.Display[tier] {
			seen[c.ID]++
		}
		for _, c := range s.Decks[tier] {
			seen[c.ID]++
		}
	}
	for _, p := range s.Players {
		for _, c := range p.Cards {
			seen[c.ID]++
		}
		for _, r := range p.Reserved {
			seen[r.ID]++
		}
	}
	for level := 1; level <= const_data.Levels; level++ {
		for _, c := range const_data.CardsByLevel(level) {
			if seen[c.ID] != 1 {
				t.Fatalf("turn %d: card %d found in %d places", s.Turn, c.ID, seen[c.ID])
			}
			delete(seen, c.ID)
		}
	}
	if len(seen) != 0 {
		t.Fatalf("turn %d: unknown cards on the table: %v", s.Turn, seen)
	}
}

func checkNobles(t *testing.T, s *GameState) {
	t.Helper()
	seen := make(map[int]bool)
	for _, n := range s.Nobles {
		seen[n.ID] = true
	}
	for _, p := range s.Players {
		points := 0
		for _, c := range p.Cards {
			points += c.Points
		}
		for _, n := range p.Nobles {
			if seen[n.ID] {
				t.Fatalf("noble %d awarded twice", n.ID)
			}
			seen[n.ID] = true
			points += n.Points
		}
		if points != p.Points {
			t.Fatalf("%s points %d, cards and nobles sum to %d", p.ID, p.Points, points)
		}
		if len(p.Reserved) > ReserveLimit {
			t.Fatalf("%s reserved %d cards", p.ID, len(p.Reserved))
		}
		if !s.PendingDiscard && p.Gems.Total() > GemCap {
			t.Fatalf("%s holds %d gems outside a pending discard", p.ID, p.Gems.Total())
		}
	}
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	for players := 2; players <= 4; players++ {
		for seed := uint64(1); seed <= 5; seed++ {
			seats := make([]Seat, players)
			for i := range seats {
				seats[i] = Seat{ID: string(rune('a' + i))}
			}
			cfg := MatchConfig{MatchID: "inv", Seats: seats, Seed: seed}
			s, err := InitializeMatch(cfg)
			if err != nil {
				t.Fatal(err)
			}
			rng := rand.New(rand.NewSource(seed * 7))

			for step := 0; step < 600 && !s.Finished(); step++ {
				a := randomAction(t, s, rng)
				next, err := ApplyAction(s, a)
				if err != nil {
					t.Fatalf("players=%d seed=%d step=%d action %+v: %v", players, seed, step, a, err)
				}
				checkGemConservation(t, next)
				checkCardLocations(t, next)
				checkNobles(t, next)
				s = next
			}

			replayed, err := Replay(ConfigOf(s), s.Actions)
			if err != nil {
				t.Fatalf("Replay: %v", err)
			}
			if !reflect.DeepEqual(replayed, s) {
				t.Fatalf("players=%d seed=%d: replay diverged", players, seed)
			}
		}
	}
}

func TestReplayRejectsIllegalLog(t *testing.T) {
	cfg := MatchConfig{MatchID: "r", Seats: []Seat{{ID: "a"}, {ID: "b"}}, Seed: 3}
	log := []Action{
		TakeGems("a", entities.GemPool{entities.Ruby: 1}),
		TakeGems("a", entities.GemPool{entities.Ruby: 1}),
	}
	if _, err := Replay(cfg, log); CodeOf(err) != CodeNotYourTurn {
		t.Fatalf("expected not your turn from replay, got %v", err)
	}
}
