package ai

import (
	"errors"
	"testing"

	"go-splendor/engine"
	"go-splendor/entities"
)

func newMatch(t *testing.T, players int, seed uint64) *engine.GameState {
	t.Helper()
	ids := []string{"ai_0", "ai_1", "ai_2", "ai_3"}
	seats := make([]engine.Seat, players)
	for i := range seats {
		seats[i] = engine.Seat{ID: ids[i]}
	}
	s, err := engine.InitializeMatch(engine.MatchConfig{MatchID: "ai", Seats: seats, Seed: seed})
	if err != nil {
		t.Fatalf("InitializeMatch: %v", err)
	}
	return s
}

func TestChooseActionUnknownSeat(t *testing.T) {
	s := newMatch(t, 2, 1)
	if _, err := ChooseAction(s, "nobody"); !errors.Is(err, ErrSeatNotFound) {
		t.Fatalf("expected ErrSeatNotFound, got %v", err)
	}
}

func TestChooseActionIsDeterministic(t *testing.T) {
	s := newMatch(t, 3, 9)
	a, err := ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		b, err := ChooseAction(s, "ai_0")
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Fatalf("run %d: %+v != %+v", i, b, a)
		}
	}
}

func TestReservesExpensivePointCardEarly(t *testing.T) {
	s := newMatch(t, 2, 5)
	s.Display[2][0] = entities.NormalCard{ID: 998, Level: 3, Bonus: entities.Ruby, Points: 5,
		Cost: entities.GemPool{entities.Onyx: 7, entities.Ruby: 3}}

	a, err := ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != engine.ActionReserveCard || a.CardID != 998 {
		t.Fatalf("expected to reserve 998, got %+v", a)
	}

	// 已预留两张、手里宝石接近上限时不再预留
	p := s.Players[0]
	p.Reserved = []engine.ReservedCard{{NormalCard: s.Decks[0][0]}, {NormalCard: s.Decks[0][1]}}
	s.Decks[0] = s.Decks[0][2:]
	p.Gems = entities.GemPool{entities.Onyx: 4, entities.Diamond: 4, entities.Sapphire: 1}
	s.Bank = s.Bank.Sub(p.Gems)
	a, err = ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind == engine.ActionReserveCard {
		t.Fatalf("expected no further reserve, got %+v", a)
	}
}

func TestBuysAffordableCard(t *testing.T) {
	s := newMatch(t, 2, 2)
	s.Display[1][0] = entities.NormalCard{ID: 999, Level: 2, Bonus: entities.Emerald, Points: 3}

	a, err := ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != engine.ActionPurchaseCard || a.CardID != 999 {
		t.Fatalf("expected purchase of 999, got %+v", a)
	}
}

func TestPrefersNobleColor(t *testing.T) {
	s := newMatch(t, 2, 2)
	p := s.Players[0]
	p.Cards = []entities.NormalCard{{ID: 901, Bonus: entities.Ruby}, {ID: 902, Bonus: entities.Ruby}}
	s.Nobles = []entities.NobleCard{{ID: 1, Points: 3, Cost: entities.GemPool{entities.Ruby: 3, entities.Onyx: 3}}}
	s.Display[0][0] = entities.NormalCard{ID: 998, Level: 1, Bonus: entities.Ruby}
	s.Display[0][1] = entities.NormalCard{ID: 999, Level: 1, Bonus: entities.Diamond, Points: 1}

	a, err := ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != engine.ActionPurchaseCard || a.CardID != 998 {
		t.Fatalf("expected the ruby card for the noble, got %+v", a)
	}

	// 没有贵族目标时按通用评分，分数高的卡优先
	s.Nobles = nil
	a, err = ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	if a.CardID != 999 {
		t.Fatalf("expected the point card without noble targets, got %+v", a)
	}
}

func TestDiscardsWhilePending(t *testing.T) {
	s := newMatch(t, 2, 4)
	held := entities.GemPool{entities.Diamond: 3, entities.Sapphire: 3, entities.Emerald: 3}
	s.Players[0].Gems = held
	s.Bank = s.Bank.Sub(held)
	s, err := engine.ApplyAction(s, engine.TakeGems("ai_0", entities.GemPool{entities.Ruby: 1, entities.Onyx: 1}))
	if err != nil {
		t.Fatal(err)
	}

	a, err := ChooseAction(s, "ai_0")
	if err != nil {
		t.Fatal(err)
	}
	if a.Kind != engine.ActionDiscardGems || a.Gems.Total() != 1 {
		t.Fatalf("expected a single gem discard, got %+v", a)
	}
	if _, err := engine.ApplyAction(s, a); err != nil {
		t.Fatalf("discard rejected: %v", err)
	}
}

func TestSelectGems(t *testing.T) {
	s := newMatch(t, 2, 1)
	p := s.Players[0]

	var pri gemPriority
	pri[entities.Onyx] = 2
	if got := selectGems(s, p, pri); got != (entities.GemPool{entities.Onyx: 2}) {
		t.Fatalf("expected a double onyx take, got %v", got)
	}

	s.Bank[entities.Onyx] = 3
	want := entities.GemPool{entities.Onyx: 1, entities.Diamond: 1, entities.Sapphire: 1}
	if got := selectGems(s, p, pri); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	p.Gems = entities.GemPool{entities.Ruby: 4, entities.Emerald: 4, entities.Gold: 1}
	if got := selectGems(s, p, pri); got != (entities.GemPool{entities.Onyx: 1}) {
		t.Fatalf("nine held gems leave room for one, got %v", got)
	}

	p.Gems[entities.Gold] = 2
	if got := selectGems(s, p, pri); !got.IsZero() {
		t.Fatalf("full hand should select nothing, got %v", got)
	}
}

func TestChooseDiscard(t *testing.T) {
	p := &engine.Player{Gems: entities.GemPool{entities.Ruby: 4, entities.Onyx: 4, entities.Diamond: 2, entities.Gold: 3}}
	var pri gemPriority
	pri[entities.Ruby] = 3
	pri[entities.Diamond] = 1

	got := chooseDiscard(p, pri)
	want := entities.GemPool{entities.Onyx: 3}
	if got != want {
		t.Fatalf("chooseDiscard = %v, want %v", got, want)
	}

	p.Gems = entities.GemPool{entities.Gold: 5, entities.Ruby: 7}
	if got := chooseDiscard(p, pri); got != (entities.GemPool{entities.Ruby: 2}) {
		t.Fatalf("colored gems go before gold, got %v", got)
	}
}

func TestCompletionOf(t *testing.T) {
	noble := entities.NobleCard{Cost: entities.GemPool{entities.Ruby: 4, entities.Onyx: 4}}
	needed, completion := completionOf(noble, entities.GemPool{entities.Ruby: 5, entities.Onyx: 2})
	if completion != 0.75 {
		t.Fatalf("completion = %v, want 0.75", completion)
	}
	if needed != (entities.GemPool{entities.Onyx: 2}) {
		t.Fatalf("needed = %v", needed)
	}
}

func TestAIGamesStayLegal(t *testing.T) {
	d := NewDecider(nil)
	for players := 2; players <= 4; players++ {
		s := newMatch(t, players, uint64(players)*11)
		purchases := 0
		for step := 0; step < 400 && !s.Finished(); step++ {
			id := s.CurrentPlayer().ID
			a, err := d.ChooseAction(s, id)
			if err != nil {
				t.Fatalf("players=%d step=%d: %v", players, step, err)
			}
			next, err := engine.ApplyAction(s, a)
			if err != nil {
				t.Fatalf("players=%d step=%d: AI chose illegal %+v: %v", players, step, a, err)
			}
			if a.Kind == engine.ActionPurchaseCard {
				purchases++
			}

			total := next.Bank
			for _, p := range next.Players {
				total = total.Add(p.Gems)
			}
			if total != next.InitialSupply {
				t.Fatalf("players=%d step=%d: gems not conserved", players, step)
			}
			s = next
		}
		if purchases == 0 {
			t.Fatalf("players=%d: AI never bought a card", players)
		}
	}
}
