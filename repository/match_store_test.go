package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go-splendor/engine"
	"go-splendor/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestStore(t *testing.T) (*MatchStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewMatchStore(rdb, 200*time.Millisecond), mr
}

func TestRoomRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	info := &entities.RoomInfo{
		RoomID:     "r1",
		UserID:     "u1",
		MaxPlayers: 3,
		GameStatus: entities.RoomStatusWaiting,
		Players:    []string{"u1", "ai_x"},
	}
	if err := store.SaveRoom(ctx, info); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetRoom(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, info) {
		t.Fatalf("GetRoom = %+v, want %+v", got, info)
	}

	if _, err := store.GetRoom(ctx, "missing"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}

	rooms, err := store.ListRooms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 1 || rooms[0].RoomID != "r1" {
		t.Fatalf("ListRooms = %+v", rooms)
	}

	if err := store.DeleteRoom(ctx, "r1"); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteRoom(ctx, "r1"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	rooms, _ = store.ListRooms(ctx)
	if len(rooms) != 0 {
		t.Fatalf("rooms left after delete: %+v", rooms)
	}
}

func TestListRoomsDropsStaleIDs(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if _, err := mr.SAdd(roomSetKey, "ghost"); err != nil {
		t.Fatal(err)
	}
	rooms, err := store.ListRooms(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 0 {
		t.Fatalf("expected no rooms, got %+v", rooms)
	}
	if ok, _ := mr.SIsMember(roomSetKey, "ghost"); ok {
		t.Fatal("stale id still registered")
	}
}

func TestStateAndActionLog(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := store.LoadState(ctx, "r1"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("expected ErrStateNotFound, got %v", err)
	}

	s, err := engine.InitializeMatch(engine.MatchConfig{
		MatchID: "m1",
		Seats:   []engine.Seat{{ID: "a"}, {ID: "b"}},
		Seed:    7,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.StartMatch(ctx, "r1", s); err != nil {
		t.Fatal(err)
	}

	take := engine.TakeGems("a", entities.GemPool{entities.Diamond: 1, entities.Ruby: 1, entities.Onyx: 1})
	next, err := engine.ApplyAction(s, take)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SaveState(ctx, "r1", next); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadState(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Version() != 1 || loaded.Bank != next.Bank || loaded.CurrentSeat != 1 {
		t.Fatalf("loaded state differs: version=%d bank=%v seat=%d", loaded.Version(), loaded.Bank, loaded.CurrentSeat)
	}

	actions, err := store.LoadActions(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if len(actions) != 1 || actions[0] != take {
		t.Fatalf("actions = %+v", actions)
	}

	replayed, err := engine.Replay(engine.ConfigOf(loaded), actions)
	if err != nil {
		t.Fatal(err)
	}
	if replayed.Bank != loaded.Bank {
		t.Fatalf("replay bank %v != %v", replayed.Bank, loaded.Bank)
	}

	// 重新开局会清空动作日志
	if err := store.StartMatch(ctx, "r1", s); err != nil {
		t.Fatal(err)
	}
	actions, _ = store.LoadActions(ctx, "r1")
	if len(actions) != 0 {
		t.Fatalf("action log not reset: %+v", actions)
	}

	start, err := store.GameStartTime(ctx, "r1")
	if err != nil || start == "" {
		t.Fatalf("GameStartTime = %q, %v", start, err)
	}
}

func TestLock(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	unlock, err := store.Lock(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Lock(ctx, "r1"); !errors.Is(err, ErrRoomBusy) {
		t.Fatalf("expected ErrRoomBusy, got %v", err)
	}

	// 别的房间不受影响
	unlockOther, err := store.Lock(ctx, "r2")
	if err != nil {
		t.Fatal(err)
	}
	unlockOther()

	unlock()
	if mr.Exists(lockKey("r1")) {
		t.Fatal("lock key not released")
	}

	unlock, err = store.Lock(ctx, "r1")
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}

	// 锁已被别人持有时，旧的 unlock 不能删掉它
	mr.Set(lockKey("r1"), "someone-else")
	unlock()
	if got, _ := mr.Get(lockKey("r1")); got != "someone-else" {
		t.Fatalf("foreign lock removed, value %q", got)
	}
}

func TestMemoryHistory(t *testing.T) {
	h := NewMemoryHistory()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"m1", "m2", "m3"} {
		if err := h.Record(ctx, MatchResult{MatchID: id, FinishedAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatal(err)
		}
	}
	// 重复记录不覆盖
	h.Record(ctx, MatchResult{MatchID: "m1", Winner: "late", FinishedAt: base})

	got, err := h.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].MatchID != "m3" || got[1].MatchID != "m2" {
		t.Fatalf("Recent = %+v", got)
	}

	all, _ := h.Recent(ctx, 0)
	for _, r := range all {
		if r.MatchID == "m1" && r.Winner != "" {
			t.Fatal("duplicate record overwrote the first one")
		}
	}
}
