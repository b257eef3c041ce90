package bot

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func mustState(t *testing.T, botType BotType) State {
	t.Helper()
	state, err := NewState(botType, testNow)
	if err != nil {
		t.Fatalf("NewState(%s) error: %v", botType, err)
	}
	return state
}

func TestNewStateSelectsVariant(t *testing.T) {
	cases := []struct {
		botType  BotType
		want     StateType
		wantBond int
	}{
		{TypeWorker, StateWorker, 0},
		{TypePlayable, StateNonWorker, PlayableStartingBond},
		{TypeKing, StateNonWorker, KingStartingBond},
		{TypeRogue, StateNonWorker, 0},
		{TypeGovBot, StateNonWorker, GovBotStartingBond},
	}
	for _, tc := range cases {
		state := mustState(t, tc.botType)
		if state.StateType() != tc.want {
			t.Fatalf("%s: state type = %s, want %s", tc.botType, state.StateType(), tc.want)
		}
		if combat, ok := state.(*CombatState); ok && combat.BondLevel != tc.wantBond {
			t.Fatalf("%s: bond = %d, want %d", tc.botType, combat.BondLevel, tc.wantBond)
		}
	}
}

func TestNewStateKingDefaults(t *testing.T) {
	state := mustState(t, TypeKing)
	king := state.(*CombatState)
	if king.Experience != KingStartingExperience {
		t.Fatalf("king experience = %d, want %d", king.Experience, KingStartingExperience)
	}
	if king.BattlesWon != KingStartingBattlesWon {
		t.Fatalf("king battles won = %d, want %d", king.BattlesWon, KingStartingBattlesWon)
	}
	if king.TotalBattles < king.BattlesWon+king.BattlesLost {
		t.Fatalf("king battle record inconsistent: total=%d won=%d lost=%d",
			king.TotalBattles, king.BattlesWon, king.BattlesLost)
	}
}

func TestNewStateUnknownType(t *testing.T) {
	_, err := NewState("overlord", testNow)
	if err == nil {
		t.Fatalf("expected error for unknown bot type")
	}
	if got := err.Error(); got != `unknown bot type: "overlord"` {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestUpdateEnergySaturates(t *testing.T) {
	state := mustState(t, TypeWorker)
	core := state.Core()

	core.UpdateEnergy(-250)
	if core.EnergyLevel != 0 {
		t.Fatalf("energy = %v, want clamp to 0", core.EnergyLevel)
	}
	core.UpdateEnergy(9999)
	if core.EnergyLevel != EnergyMax {
		t.Fatalf("energy = %v, want clamp to %v", core.EnergyLevel, EnergyMax)
	}
	core.UpdateMaintenance(-500)
	if core.Maintenance != 0 {
		t.Fatalf("maintenance = %v, want clamp to 0", core.Maintenance)
	}
}

func TestAddExperienceIgnoresNegative(t *testing.T) {
	state := mustState(t, TypeWorker)
	core := state.Core()
	core.AddExperience(40)
	core.AddExperience(-100)
	if core.Experience != 40 {
		t.Fatalf("experience = %d, want 40", core.Experience)
	}
}

func TestStatusEffectUpsertByID(t *testing.T) {
	state := mustState(t, TypePlayable)
	core := state.Core()

	core.AddStatusEffect(StatusEffect{ID: "fx-1", Kind: EffectEnergyBoost, Magnitude: 10, Source: "test"})
	core.AddStatusEffect(StatusEffect{ID: "fx-2", Kind: EffectEnergyDrain, Magnitude: 5, Source: "test"})
	core.AddStatusEffect(StatusEffect{ID: "fx-1", Kind: EffectEnergyBoost, Magnitude: 25, Source: "test"})

	if len(core.StatusEffects) != 2 {
		t.Fatalf("effect count = %d, want 2 (duplicate id replaces)", len(core.StatusEffects))
	}
	boosts := core.ActiveEffectsByKind(EffectEnergyBoost)
	if len(boosts) != 1 || boosts[0].Magnitude != 25 {
		t.Fatalf("expected replaced boost magnitude 25, got %+v", boosts)
	}

	if !core.RemoveStatusEffect("fx-2") {
		t.Fatalf("expected removal of fx-2")
	}
	if core.RemoveStatusEffect("fx-2") {
		t.Fatalf("second removal should report false")
	}
}

func TestEffectiveEnergy(t *testing.T) {
	state := mustState(t, TypeWorker)
	core := state.Core()
	core.UpdateEnergy(-40) // 60

	core.AddStatusEffect(StatusEffect{ID: "boost", Kind: EffectEnergyBoost, Magnitude: 15})
	core.AddStatusEffect(StatusEffect{ID: "drain", Kind: EffectEnergyDrain, Magnitude: 5})
	if got := core.EffectiveEnergy(); got != 70 {
		t.Fatalf("effective energy = %v, want 70", got)
	}

	core.AddStatusEffect(StatusEffect{ID: "surge", Kind: EffectEnergyBoost, Magnitude: 500})
	if got := core.EffectiveEnergy(); got != EnergyMax {
		t.Fatalf("effective energy = %v, want clamp to %v", got, EnergyMax)
	}
}

func TestWorkerEfficiencyPinnedValues(t *testing.T) {
	worker := mustState(t, TypeWorker).(*WorkerState)
	if got := worker.WorkEfficiency(); got != 1.0 {
		t.Fatalf("efficiency at full = %v, want 1.0", got)
	}

	worker.Maintenance = 25
	if got := worker.WorkEfficiency(); got != 0.5 {
		t.Fatalf("efficiency at maintenance 25 = %v, want 0.5", got)
	}

	worker.Maintenance = 0
	worker.EnergyLevel = 0
	if eff := worker.WorkEfficiency(); eff < 0 || eff > 1 {
		t.Fatalf("efficiency out of range: %v", eff)
	}
}

func TestWorkerPerformWork(t *testing.T) {
	worker := mustState(t, TypeWorker).(*WorkerState)
	report := worker.PerformWork(1.0, 1, testNow)

	if worker.EnergyLevel >= EnergyMax {
		t.Fatalf("expected energy below max after work, got %v", worker.EnergyLevel)
	}
	if report.ExperienceGained <= 0 || worker.Experience != report.ExperienceGained {
		t.Fatalf("expected experience gain, got report=%+v state=%d", report, worker.Experience)
	}
	if report.Fatigued {
		t.Fatalf("light work should not fatigue")
	}
	if len(worker.ActiveEffectsByKind(EffectFatigue)) != 0 {
		t.Fatalf("unexpected fatigue effect after light work")
	}
}

func TestWorkerHardWorkFatigues(t *testing.T) {
	worker := mustState(t, TypeWorker).(*WorkerState)
	report := worker.PerformWork(2.0, 1, testNow)
	if !report.Fatigued {
		t.Fatalf("expected fatigue at intensity 2.0")
	}
	if len(worker.ActiveEffectsByKind(EffectFatigue)) != 1 {
		t.Fatalf("expected one fatigue effect")
	}

	// a second hard shift refreshes, not duplicates, the effect
	worker.PerformWork(2.5, 1, testNow)
	if len(worker.ActiveEffectsByKind(EffectFatigue)) != 1 {
		t.Fatalf("fatigue effect should be upserted, not duplicated")
	}
}

func TestWorkerRest(t *testing.T) {
	worker := mustState(t, TypeWorker).(*WorkerState)
	worker.EnergyLevel = 50

	restored := worker.Rest(1, testNow)
	if restored != RestRecoveryRate {
		t.Fatalf("restored = %v, want %v", restored, RestRecoveryRate)
	}

	// near the cap only the remaining headroom is restored
	worker.EnergyLevel = 95
	if restored := worker.Rest(1, testNow); restored != 5 {
		t.Fatalf("restored = %v, want 5", restored)
	}
	if worker.Rest(0, testNow) != 0 {
		t.Fatalf("zero-duration rest should restore nothing")
	}
}

func TestBondLevelClamping(t *testing.T) {
	combat := mustState(t, TypeRogue).(*CombatState)

	combat.BondLevel = 50
	combat.UpdateBondLevel(-50)
	if combat.BondLevel != 0 {
		t.Fatalf("bond = %d, want 0", combat.BondLevel)
	}

	combat.BondLevel = 40
	combat.UpdateBondLevel(150)
	if combat.BondLevel != BondLevelMax {
		t.Fatalf("bond = %d, want %d", combat.BondLevel, BondLevelMax)
	}
}

func TestBattleStats(t *testing.T) {
	combat := mustState(t, TypePlayable).(*CombatState)
	for i := 0; i < 2; i++ {
		combat.RecordBattleResult(true, testNow)
	}
	combat.RecordBattleResult(false, testNow)

	stats := combat.BattleStats()
	if stats.Won != 2 || stats.Lost != 1 || stats.Total != 3 {
		t.Fatalf("stats = %+v, want 2/1/3", stats)
	}
	if stats.WinRate != 66.67 {
		t.Fatalf("win rate = %v, want 66.67", stats.WinRate)
	}
}

func TestBattleStatsZeroBattles(t *testing.T) {
	combat := mustState(t, TypePlayable).(*CombatState)
	stats := combat.BattleStats()
	if stats.Total != 0 || stats.WinRate != 0 {
		t.Fatalf("stats = %+v, want zero record", stats)
	}
}

func TestBattleWinGrantsExperienceAndBond(t *testing.T) {
	combat := mustState(t, TypeRogue).(*CombatState)
	combat.RecordBattleResult(true, testNow)
	if combat.Experience != BattleWinExperience {
		t.Fatalf("experience = %d, want %d", combat.Experience, BattleWinExperience)
	}
	if combat.BondLevel != BattleWinBondGain {
		t.Fatalf("bond = %d, want %d", combat.BondLevel, BattleWinBondGain)
	}
}

func TestNormalizeBattleRecord(t *testing.T) {
	combat := &CombatState{BattlesWon: 4, BattlesLost: 3, TotalBattles: 5}
	combat.NormalizeBattleRecord()
	if combat.TotalBattles != 7 {
		t.Fatalf("total = %d, want corrected to 7", combat.TotalBattles)
	}
}

func TestSocialStatusBands(t *testing.T) {
	combat := mustState(t, TypePlayable).(*CombatState)

	status := combat.SocialStatus(testNow.Add(10 * time.Minute))
	if status.ActivityLevel != "Very Active" {
		t.Fatalf("activity = %q, want Very Active just after creation", status.ActivityLevel)
	}
	if status.CombatRating != "Untested" {
		t.Fatalf("rating = %q, want Untested with zero battles", status.CombatRating)
	}

	status = combat.SocialStatus(testNow.Add(30 * 24 * time.Hour))
	if status.ActivityLevel != "Dormant" {
		t.Fatalf("activity = %q, want Dormant after a month", status.ActivityLevel)
	}

	for i := 0; i < 9; i++ {
		combat.RecordBattleResult(true, testNow)
	}
	combat.RecordBattleResult(false, testNow)
	if got := combat.SocialStatus(testNow).CombatRating; got != "Champion" {
		t.Fatalf("rating = %q, want Champion at 90%% over 10 battles", got)
	}
}

func TestTrain(t *testing.T) {
	combat := mustState(t, TypePlayable).(*CombatState)
	bondBefore := combat.BondLevel

	report := combat.Train(1.5, 2, testNow)
	if report.EnergySpent <= 0 {
		t.Fatalf("training should cost energy, report=%+v", report)
	}
	if combat.Experience != report.ExperienceGained || report.ExperienceGained <= 0 {
		t.Fatalf("training should grant experience, report=%+v", report)
	}
	if combat.BondLevel != bondBefore+TrainBondGain {
		t.Fatalf("bond = %d, want %d", combat.BondLevel, bondBefore+TrainBondGain)
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	combat := mustState(t, TypeKing).(*CombatState)
	combat.AddStatusEffect(StatusEffect{ID: "fx", Kind: EffectAttackBoost, Magnitude: 3})
	combat.Customizations["paint"] = "gold"

	clone := combat.Clone().(*CombatState)
	clone.UpdateBondLevel(-100)
	clone.RemoveStatusEffect("fx")
	clone.Customizations["paint"] = "rust"

	if combat.BondLevel != KingStartingBond {
		t.Fatalf("original bond mutated: %d", combat.BondLevel)
	}
	if len(combat.StatusEffects) != 1 {
		t.Fatalf("original effects mutated: %+v", combat.StatusEffects)
	}
	if combat.Customizations["paint"] != "gold" {
		t.Fatalf("original customizations mutated")
	}
}

func TestResetPreservesHistory(t *testing.T) {
	combat := mustState(t, TypePlayable).(*CombatState)
	combat.RecordBattleResult(true, testNow)
	combat.UpdateEnergy(-80)
	combat.UpdateMaintenance(-60)
	xp, bond, total := combat.Experience, combat.BondLevel, combat.TotalBattles

	combat.Reset()
	if combat.EnergyLevel != EnergyMax || combat.Maintenance != MaintenanceMax {
		t.Fatalf("reset should restore condition, got %v/%v", combat.EnergyLevel, combat.Maintenance)
	}
	if combat.Experience != xp || combat.BondLevel != bond || combat.TotalBattles != total {
		t.Fatalf("reset must preserve history: xp=%d bond=%d total=%d", combat.Experience, combat.BondLevel, combat.TotalBattles)
	}
}

func TestIsOperationalThresholds(t *testing.T) {
	worker := mustState(t, TypeWorker).(*WorkerState)
	if !worker.IsOperational() {
		t.Fatalf("fresh worker should be operational")
	}
	worker.EnergyLevel = 0
	if worker.IsOperational() {
		t.Fatalf("drained worker should not be operational")
	}

	combat := mustState(t, TypePlayable).(*CombatState)
	combat.EnergyLevel = CombatEnergyFloor
	if combat.IsOperational() {
		t.Fatalf("combat state at its energy floor should not be operational")
	}
	combat.EnergyLevel = CombatEnergyFloor + 1
	combat.Maintenance = CombatMaintenanceFloor
	if combat.IsOperational() {
		t.Fatalf("combat state at its maintenance floor should not be operational")
	}
}
