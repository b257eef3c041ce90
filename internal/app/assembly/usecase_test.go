package assembly

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pablohpsilva/Botking-sub000/internal/app/ports"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/bot"
	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testSkeletonConfig() item.SkeletonConfig {
	return item.SkeletonConfig{ID: "skel-1", Name: "Frame", Type: item.SkeletonBalanced, Rarity: item.RarityCommon}
}

func TestCreateUseCase_PersistsSnapshotAndEvent(t *testing.T) {
	botRepo := &stubBotRepo{byID: map[string]bot.Snapshot{}}
	eventRepo := &stubEventRepo{}
	metrics := &stubMetrics{}

	uc := CreateUseCase{
		TxManager: stubTxManager{},
		BotRepo:   botRepo,
		EventRepo: eventRepo,
		Metrics:   metrics,
		Now:       func() time.Time { return testNow },
	}

	out, err := uc.Execute(context.Background(), CreateRequest{
		Name:     "Digger",
		BotType:  bot.TypeWorker,
		OwnerID:  "owner-1",
		Skeleton: testSkeletonConfig(),
	})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if out.Bot.Version != 1 {
		t.Fatalf("expected version 1, got %d", out.Bot.Version)
	}
	stored, ok := botRepo.byID[out.Bot.ID]
	if !ok {
		t.Fatalf("bot snapshot was not persisted")
	}
	if stored.Name != "Digger" || stored.Type != bot.TypeWorker {
		t.Fatalf("unexpected stored snapshot: %+v", stored)
	}
	if len(eventRepo.events) != 1 || eventRepo.events[0].Type != "bot_created" {
		t.Fatalf("expected one bot_created event, got %+v", eventRepo.events)
	}
	if metrics.success["create"] != 1 {
		t.Fatalf("expected create success metric, got %v", metrics.success)
	}
}

func TestCreateUseCase_InvalidRequest(t *testing.T) {
	uc := CreateUseCase{TxManager: stubTxManager{}}

	if _, err := uc.Execute(context.Background(), CreateRequest{Name: "  ", BotType: bot.TypeWorker}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank name, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), CreateRequest{Name: "x", BotType: "ghost"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown type, got %v", err)
	}
}

func TestCreateUseCase_WorkerSoulChipRejected(t *testing.T) {
	metrics := &stubMetrics{}
	uc := CreateUseCase{
		TxManager: stubTxManager{},
		BotRepo:   &stubBotRepo{byID: map[string]bot.Snapshot{}},
		EventRepo: &stubEventRepo{},
		Metrics:   metrics,
		Now:       func() time.Time { return testNow },
	}

	_, err := uc.Execute(context.Background(), CreateRequest{
		Name:     "Digger",
		BotType:  bot.TypeWorker,
		Skeleton: testSkeletonConfig(),
		SoulChip: &item.SoulChipConfig{Name: "Spark"},
	})
	if !errors.Is(err, bot.ErrWorkerSoulChip) {
		t.Fatalf("expected ErrWorkerSoulChip, got %v", err)
	}
	if metrics.failures != 1 {
		t.Fatalf("expected failure metric, got %d", metrics.failures)
	}
}

func TestLoadoutUseCase_InstallPartAndReplay(t *testing.T) {
	botRepo := seedBotRepo(t, bot.TypeWorker, "")
	execRepo := &stubExecRepo{byKey: map[string]ports.AssemblyExecutionRecord{}}
	eventRepo := &stubEventRepo{}
	metrics := &stubMetrics{}

	uc := LoadoutUseCase{
		TxManager: stubTxManager{},
		BotRepo:   botRepo,
		ExecRepo:  execRepo,
		EventRepo: eventRepo,
		Metrics:   metrics,
		Now:       func() time.Time { return testNow },
	}

	req := LoadoutRequest{
		BotID:          "bot-1",
		IdempotencyKey: "k-1",
		Command:        CommandInstallPart,
		Part:           &item.PartConfig{ID: "part-1", Name: "Drill Arm", Category: item.PartArmLeft, Rarity: item.RarityRare},
	}

	first, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("first execute error: %v", err)
	}
	if !first.Applied {
		t.Fatalf("expected command to apply: %s", first.Message)
	}
	if first.AssignedSlot != bot.SlotID("arm_left") {
		t.Fatalf("expected arm_left slot, got %q", first.AssignedSlot)
	}
	if first.Bot.Version != 2 {
		t.Fatalf("expected version bump to 2, got %d", first.Bot.Version)
	}
	if len(eventRepo.events) != 1 || eventRepo.events[0].Type != "part_installed" {
		t.Fatalf("expected part_installed event, got %+v", eventRepo.events)
	}

	second, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("second execute error: %v", err)
	}
	if second.Bot.Version != first.Bot.Version {
		t.Fatalf("replay should not bump version: first=%d second=%d", first.Bot.Version, second.Bot.Version)
	}
	if botRepo.saves != 1 {
		t.Fatalf("replay should not save again, saves=%d", botRepo.saves)
	}
	if len(eventRepo.events) != 1 {
		t.Fatalf("replay should not append events, got %d", len(eventRepo.events))
	}
}

func TestLoadoutUseCase_WorkerSoulChipIsRecordedRejection(t *testing.T) {
	botRepo := seedBotRepo(t, bot.TypeWorker, "")
	execRepo := &stubExecRepo{byKey: map[string]ports.AssemblyExecutionRecord{}}
	metrics := &stubMetrics{}

	uc := LoadoutUseCase{
		TxManager: stubTxManager{},
		BotRepo:   botRepo,
		ExecRepo:  execRepo,
		EventRepo: &stubEventRepo{},
		Metrics:   metrics,
		Now:       func() time.Time { return testNow },
	}

	out, err := uc.Execute(context.Background(), LoadoutRequest{
		BotID:          "bot-1",
		IdempotencyKey: "k-soul",
		Command:        CommandInstallSoulChip,
		SoulChip:       &item.SoulChipConfig{Name: "Spark"},
	})
	if err != nil {
		t.Fatalf("rejection should not be an error: %v", err)
	}
	if out.Applied {
		t.Fatalf("expected rejection for worker soul chip")
	}
	if !strings.Contains(out.Message, "cannot have soul chips") {
		t.Fatalf("unexpected message: %q", out.Message)
	}
	if out.Bot.Version != 1 {
		t.Fatalf("rejection must not change state, version=%d", out.Bot.Version)
	}
	if botRepo.saves != 0 {
		t.Fatalf("rejection should not save, saves=%d", botRepo.saves)
	}
	if _, ok := execRepo.byKey["bot-1|k-soul"]; !ok {
		t.Fatalf("rejection should still record the execution")
	}
	if metrics.rejected[string(CommandInstallSoulChip)] != 1 {
		t.Fatalf("expected rejected metric, got %v", metrics.rejected)
	}
}

func TestLoadoutUseCase_AssignPlayerAndActivate(t *testing.T) {
	botRepo := seedBotRepo(t, bot.TypePlayable, "player-1")
	uc := LoadoutUseCase{
		TxManager: stubTxManager{},
		BotRepo:   botRepo,
		ExecRepo:  &stubExecRepo{byKey: map[string]ports.AssemblyExecutionRecord{}},
		EventRepo: &stubEventRepo{},
		Now:       func() time.Time { return testNow },
	}

	reassign, err := uc.Execute(context.Background(), LoadoutRequest{
		BotID:          "bot-1",
		IdempotencyKey: "k-player",
		Command:        CommandAssignPlayer,
		PlayerID:       "player-2",
	})
	if err != nil {
		t.Fatalf("assign player error: %v", err)
	}
	if !reassign.Applied || reassign.Bot.PlayerID != "player-2" {
		t.Fatalf("expected player reassignment, got %+v", reassign)
	}

	activated, err := uc.Execute(context.Background(), LoadoutRequest{
		BotID:          "bot-1",
		IdempotencyKey: "k-activate",
		Command:        CommandActivate,
	})
	if err != nil {
		t.Fatalf("activate error: %v", err)
	}
	if !activated.Applied {
		t.Fatalf("expected activation: %s", activated.Message)
	}
	if activated.Bot.State.Location != bot.LocationIdle {
		t.Fatalf("expected idle location, got %q", activated.Bot.State.Location)
	}
}

func TestLoadoutUseCase_VersionConflict(t *testing.T) {
	botRepo := seedBotRepo(t, bot.TypeWorker, "")
	botRepo.saveErr = ports.ErrConflict
	metrics := &stubMetrics{}

	uc := LoadoutUseCase{
		TxManager: stubTxManager{},
		BotRepo:   botRepo,
		ExecRepo:  &stubExecRepo{byKey: map[string]ports.AssemblyExecutionRecord{}},
		EventRepo: &stubEventRepo{},
		Metrics:   metrics,
		Now:       func() time.Time { return testNow },
	}

	_, err := uc.Execute(context.Background(), LoadoutRequest{
		BotID:          "bot-1",
		IdempotencyKey: "k-conflict",
		Command:        CommandDeactivate,
	})
	if !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if metrics.conflicts != 1 {
		t.Fatalf("expected conflict metric, got %d", metrics.conflicts)
	}
}

func TestLoadoutUseCase_Validation(t *testing.T) {
	uc := LoadoutUseCase{TxManager: stubTxManager{}}

	_, err := uc.Execute(context.Background(), LoadoutRequest{BotID: "bot-1", IdempotencyKey: "k", Command: "paint"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown command, got %v", err)
	}

	_, err = uc.Execute(context.Background(), LoadoutRequest{BotID: "bot-1", IdempotencyKey: "k", Command: CommandInstallPart})
	if !errors.Is(err, ErrInvalidCommandParams) {
		t.Fatalf("expected ErrInvalidCommandParams for missing part, got %v", err)
	}
}

func TestLoadoutUseCase_BotNotFound(t *testing.T) {
	uc := LoadoutUseCase{
		TxManager: stubTxManager{},
		BotRepo:   &stubBotRepo{byID: map[string]bot.Snapshot{}},
		ExecRepo:  &stubExecRepo{byKey: map[string]ports.AssemblyExecutionRecord{}},
		EventRepo: &stubEventRepo{},
	}

	_, err := uc.Execute(context.Background(), LoadoutRequest{
		BotID:          "missing",
		IdempotencyKey: "k",
		Command:        CommandReset,
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func seedBotRepo(t *testing.T, botType bot.BotType, playerID string) *stubBotRepo {
	t.Helper()
	built, err := bot.NewBot(bot.Config{
		ID:       "bot-1",
		Name:     "Seed",
		Type:     botType,
		PlayerID: playerID,
		Skeleton: item.NewSkeleton(testSkeletonConfig()),
	}, testNow)
	if err != nil {
		t.Fatalf("seed bot: %v", err)
	}
	built.Version = 1
	return &stubBotRepo{byID: map[string]bot.Snapshot{built.ID: built.Snapshot()}}
}

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubBotRepo struct {
	byID    map[string]bot.Snapshot
	saves   int
	saveErr error
}

func (r *stubBotRepo) GetByID(_ context.Context, botID string) (bot.Snapshot, error) {
	snap, ok := r.byID[botID]
	if !ok {
		return bot.Snapshot{}, ports.ErrNotFound
	}
	return snap, nil
}

func (r *stubBotRepo) ListByOwner(_ context.Context, ownerID string) ([]bot.Snapshot, error) {
	var out []bot.Snapshot
	for _, snap := range r.byID {
		if snap.OwnerID == ownerID {
			out = append(out, snap)
		}
	}
	return out, nil
}

func (r *stubBotRepo) SaveWithVersion(_ context.Context, snap bot.Snapshot, expectedVersion int64) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	current, ok := r.byID[snap.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.byID[snap.ID] = snap
		r.saves++
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.byID[snap.ID] = snap
	r.saves++
	return nil
}

func (r *stubBotRepo) Delete(_ context.Context, botID string) error {
	delete(r.byID, botID)
	return nil
}

type stubExecRepo struct {
	byKey map[string]ports.AssemblyExecutionRecord
}

func (r *stubExecRepo) GetByIdempotencyKey(_ context.Context, botID, key string) (*ports.AssemblyExecutionRecord, error) {
	record, ok := r.byKey[botID+"|"+key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := record
	return &copy, nil
}

func (r *stubExecRepo) SaveExecution(_ context.Context, record ports.AssemblyExecutionRecord) error {
	r.byKey[record.BotID+"|"+record.IdempotencyKey] = record
	return nil
}

type stubEventRepo struct {
	events []bot.DomainEvent
}

func (r *stubEventRepo) Append(_ context.Context, _ string, events []bot.DomainEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByBotID(_ context.Context, _ string, limit int) ([]bot.DomainEvent, error) {
	if limit <= 0 || limit > len(r.events) {
		limit = len(r.events)
	}
	out := make([]bot.DomainEvent, limit)
	copy(out, r.events[:limit])
	return out, nil
}

type stubMetrics struct {
	success   map[string]int
	rejected  map[string]int
	conflicts int
	failures  int
}

func (m *stubMetrics) RecordSuccess(command string) {
	if m.success == nil {
		m.success = map[string]int{}
	}
	m.success[command]++
}

func (m *stubMetrics) RecordRejected(command string) {
	if m.rejected == nil {
		m.rejected = map[string]int{}
	}
	m.rejected[command]++
}

func (m *stubMetrics) RecordConflict() { m.conflicts++ }
func (m *stubMetrics) RecordFailure()  { m.failures++ }
