package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestService(t *testing.T) (*GameService, *repository.MemoryHistory) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	history := repository.NewMemoryHistory()
	return NewGameService(repository.NewMatchStore(rdb, time.Second), history, nil, nil), history
}

func TestRoomLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateRoom(ctx, "alice", 5); !errors.Is(err, ErrInvalidMaxPlayers) {
		t.Fatalf("expected ErrInvalidMaxPlayers, got %v", err)
	}

	room, err := svc.CreateRoom(ctx, "alice", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(room.RoomID) != 8 || room.GameStatus != entities.RoomStatusWaiting {
		t.Fatalf("unexpected room %+v", room)
	}

	if _, err := svc.StartMatch(ctx, room.RoomID, "alice"); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Fatalf("expected ErrNotEnoughPlayers, got %v", err)
	}
	if _, _, err := svc.AddAIPlayer(ctx, room.RoomID, "bob"); !errors.Is(err, ErrNotRoomOwner) {
		t.Fatalf("expected ErrNotRoomOwner, got %v", err)
	}

	if _, err := svc.JoinRoom(ctx, room.RoomID, "bob"); err != nil {
		t.Fatal(err)
	}
	// 重复加入不报错
	if _, err := svc.JoinRoom(ctx, room.RoomID, "bob"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.JoinRoom(ctx, room.RoomID, "carol"); !errors.Is(err, ErrRoomFull) {
		t.Fatalf("expected ErrRoomFull, got %v", err)
	}

	if _, err := svc.StartMatch(ctx, room.RoomID, "bob"); !errors.Is(err, ErrNotRoomOwner) {
		t.Fatalf("expected ErrNotRoomOwner, got %v", err)
	}
	state, err := svc.StartMatch(ctx, room.RoomID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if state.Players[0].ID != "alice" || state.Players[1].ID != "bob" {
		t.Fatalf("seat order not kept: %s %s", state.Players[0].ID, state.Players[1].ID)
	}

	info, err := svc.GetRoom(ctx, room.RoomID)
	if err != nil {
		t.Fatal(err)
	}
	if info.GameStatus != entities.RoomStatusPlaying || info.MatchID != state.MatchID {
		t.Fatalf("room not updated: %+v", info)
	}
	if _, err := svc.StartMatch(ctx, room.RoomID, "alice"); !errors.Is(err, ErrGameInProgress) {
		t.Fatalf("expected ErrGameInProgress, got %v", err)
	}

	if err := svc.DeleteRoom(ctx, room.RoomID, "bob"); !errors.Is(err, ErrNotRoomOwner) {
		t.Fatalf("expected ErrNotRoomOwner, got %v", err)
	}
	if err := svc.DeleteRoom(ctx, room.RoomID, "alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetRoom(ctx, room.RoomID); !errors.Is(err, repository.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func startTwoPlayer(t *testing.T, svc *GameService, second string) (string, *engine.GameState) {
	t.Helper()
	ctx := context.Background()
	room, err := svc.CreateRoom(ctx, "alice", 2)
	if err != nil {
		t.Fatal(err)
	}
	if second == "" {
		if second, _, err = svc.AddAIPlayer(ctx, room.RoomID, "alice"); err != nil {
			t.Fatal(err)
		}
	} else if _, err := svc.JoinRoom(ctx, room.RoomID, second); err != nil {
		t.Fatal(err)
	}
	state, err := svc.StartMatch(ctx, room.RoomID, "alice")
	if err != nil {
		t.Fatal(err)
	}
	return room.RoomID, state
}

func TestApplyActionPersists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	roomID, _ := startTwoPlayer(t, svc, "bob")

	take := engine.TakeGems("alice", entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 1})
	if _, err := svc.ApplyAction(ctx, roomID, take); err != nil {
		t.Fatal(err)
	}

	// 不是自己的回合
	_, err := svc.ApplyAction(ctx, roomID, engine.TakeGems("alice", entities.GemPool{entities.Ruby: 1}))
	if !errors.Is(err, engine.ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	state, err := svc.GetState(ctx, roomID)
	if err != nil {
		t.Fatal(err)
	}
	if state.Version() != 1 || state.Players[0].Gems.Total() != 3 {
		t.Fatalf("state not saved: version=%d gems=%v", state.Version(), state.Players[0].Gems)
	}

	sum, err := svc.LegalActions(ctx, roomID, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if !sum.IsTurn {
		t.Fatal("expected bob to move next")
	}

	actions, err := svc.Actions(ctx, roomID)
	if err != nil || len(actions) != 1 {
		t.Fatalf("Actions = %+v, %v", actions, err)
	}
	if _, err := svc.ReplayMatch(ctx, roomID); err != nil {
		t.Fatalf("ReplayMatch: %v", err)
	}
}

func TestRunAITurnIsGuardedByVersion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	roomID, state := startTwoPlayer(t, svc, "")

	// 先手是真人，AI 不动
	if _, played, err := svc.RunAITurn(ctx, roomID, state.Version()); err != nil || played {
		t.Fatalf("AI played out of turn: played=%v err=%v", played, err)
	}

	take := engine.TakeGems("alice", entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 1})
	next, err := svc.ApplyAction(ctx, roomID, take)
	if err != nil {
		t.Fatal(err)
	}

	// 旧版本号的调度直接跳过
	if _, played, err := svc.RunAITurn(ctx, roomID, state.Version()); err != nil || played {
		t.Fatalf("stale schedule ran: played=%v err=%v", played, err)
	}

	after, played, err := svc.RunAITurn(ctx, roomID, next.Version())
	if err != nil || !played {
		t.Fatalf("AI did not play: played=%v err=%v", played, err)
	}
	if after.Version() <= next.Version() {
		t.Fatalf("version did not advance")
	}

	// 同一个版本号只执行一次
	if _, played, _ := svc.RunAITurn(ctx, roomID, next.Version()); played {
		t.Fatal("AI played the same turn twice")
	}
}

func TestAutoPlayOnlyOnOwnTurn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	roomID, _ := startTwoPlayer(t, svc, "bob")

	if _, played, err := svc.AutoPlay(ctx, roomID, "bob"); err != nil || played {
		t.Fatalf("auto play out of turn: played=%v err=%v", played, err)
	}

	state, played, err := svc.AutoPlay(ctx, roomID, "alice")
	if err != nil || !played {
		t.Fatalf("auto play: played=%v err=%v", played, err)
	}
	if state.CurrentPlayer().ID != "bob" {
		t.Fatalf("turn not passed, current=%s", state.CurrentPlayer().ID)
	}
	if state.Players[0].Gems.Total() != 3 {
		t.Fatalf("expected a three gem take, got %v", state.Players[0].Gems)
	}
}

func TestFinishedMatchIsRecorded(t *testing.T) {
	svc, history := newTestService(t)
	ctx := context.Background()
	roomID, state := startTwoPlayer(t, svc, "")

	// alice 已有 15 分，拿一次宝石就进入最后一轮，AI 走完后结算
	state.Players[0].Points = engine.PointsToWin
	if err := svc.store.StartMatch(ctx, roomID, state); err != nil {
		t.Fatal(err)
	}
	take := engine.TakeGems("alice", entities.GemPool{entities.Diamond: 1, entities.Sapphire: 1, entities.Emerald: 1})
	next, err := svc.ApplyAction(ctx, roomID, take)
	if err != nil {
		t.Fatal(err)
	}
	if next.Status != entities.RoomStatusLastTurn {
		t.Fatalf("status = %s, want last turn", next.Status)
	}
	info, _ := svc.GetRoom(ctx, roomID)
	if info.GameStatus != entities.RoomStatusLastTurn {
		t.Fatalf("room status = %s", info.GameStatus)
	}

	final, played, err := svc.RunAITurn(ctx, roomID, next.Version())
	if err != nil || !played {
		t.Fatalf("AI turn: played=%v err=%v", played, err)
	}
	if !final.Finished() || final.Winner != "alice" {
		t.Fatalf("finished=%v winner=%q", final.Finished(), final.Winner)
	}

	info, _ = svc.GetRoom(ctx, roomID)
	if info.GameStatus != entities.RoomStatusEnd {
		t.Fatalf("room status = %s", info.GameStatus)
	}
	results, _ := svc.History(ctx, 0)
	if len(results) != 1 || results[0].MatchID != final.MatchID || results[0].Winner != "alice" {
		t.Fatalf("history = %+v", results)
	}
	if recorded, _ := history.Recent(ctx, 1); len(recorded) != 1 {
		t.Fatalf("memory history = %+v", recorded)
	}

	// 结束后可以重开
	if _, err := svc.StartMatch(ctx, roomID, "alice"); err != nil {
		t.Fatalf("restart: %v", err)
	}
}

func TestCleanupRooms(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	keep, _ := svc.CreateRoom(ctx, "alice", 2)
	drop, _ := svc.CreateRoom(ctx, "bob", 2)

	n, err := svc.CleanupRooms(ctx, func(roomID string) bool { return roomID == keep.RoomID })
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("removed %d rooms", n)
	}
	if _, err := svc.GetRoom(ctx, drop.RoomID); !errors.Is(err, repository.ErrRoomNotFound) {
		t.Fatalf("expected dropped room gone, got %v", err)
	}
	if _, err := svc.GetRoom(ctx, keep.RoomID); err != nil {
		t.Fatalf("kept room missing: %v", err)
	}
}
