package bot

import (
	"math"
	"time"
)

// CombatState is the non-worker condition variant: playable, king, rogue and
// govbot bots all carry a bond level and a battle record on top of the core.
type CombatState struct {
	CoreState
	BondLevel    int `json:"bond_level"`
	BattlesWon   int `json:"battles_won"`
	BattlesLost  int `json:"battles_lost"`
	TotalBattles int `json:"total_battles"`
}

func (s *CombatState) StateType() StateType { return StateNonWorker }

func (s *CombatState) IsOperational() bool {
	return s.EnergyLevel > CombatEnergyFloor && s.Maintenance > CombatMaintenanceFloor
}

// NormalizeBattleRecord corrects the total upward when it undercounts the
// recorded outcomes. Called at construction and rehydration.
func (s *CombatState) NormalizeBattleRecord() {
	if s.TotalBattles < s.BattlesWon+s.BattlesLost {
		s.TotalBattles = s.BattlesWon + s.BattlesLost
	}
}

// UpdateBondLevel applies a signed delta, saturating at [0,100].
func (s *CombatState) UpdateBondLevel(delta int) {
	s.BondLevel = clampInt(s.BondLevel+delta, 0, BondLevelMax)
}

// RecordBattleResult appends one battle outcome. Wins grant experience and
// strengthen the bond.
func (s *CombatState) RecordBattleResult(won bool, now time.Time) {
	s.TotalBattles++
	if won {
		s.BattlesWon++
		s.AddExperience(BattleWinExperience)
		s.UpdateBondLevel(BattleWinBondGain)
	} else {
		s.BattlesLost++
	}
	s.Touch(now)
}

func (s *CombatState) BattleStats() BattleStats {
	stats := BattleStats{
		Won:   s.BattlesWon,
		Lost:  s.BattlesLost,
		Total: s.TotalBattles,
	}
	if stats.Total > 0 {
		stats.WinRate = math.Round(float64(stats.Won)/float64(stats.Total)*10000) / 100
	}
	return stats
}

// SocialStatus derives the qualitative activity and combat bands. Bands are
// monotonic: more recent activity and a better record never rate lower.
func (s *CombatState) SocialStatus(now time.Time) SocialStatus {
	status := SocialStatus{}

	sinceActive := now.Sub(s.LastActivity)
	switch {
	case sinceActive <= ActivityVeryActiveWithin*time.Hour:
		status.ActivityLevel = "Very Active"
	case sinceActive <= ActivityActiveWithin*time.Hour:
		status.ActivityLevel = "Active"
	case sinceActive <= ActivityOccasionalWithin*time.Hour:
		status.ActivityLevel = "Occasional"
	default:
		status.ActivityLevel = "Dormant"
	}

	stats := s.BattleStats()
	switch {
	case stats.Total == 0:
		status.CombatRating = "Untested"
	case stats.Total < CombatRatingMinBattles:
		status.CombatRating = "Novice"
	case stats.WinRate >= CombatChampionWinRate:
		status.CombatRating = "Champion"
	case stats.WinRate >= CombatVeteranWinRate:
		status.CombatRating = "Veteran"
	default:
		status.CombatRating = "Struggler"
	}
	return status
}

// Train is the non-worker counterpart of PerformWork: it costs energy and
// grants experience plus a bond increase.
func (s *CombatState) Train(intensity, hours float64, now time.Time) WorkReport {
	if intensity <= 0 || hours <= 0 {
		return WorkReport{}
	}
	before := s.EnergyLevel
	s.UpdateEnergy(-intensity * hours * TrainEnergyCostRate)
	gained := int(math.Round(intensity * hours * TrainExperienceRate))
	if gained < 1 {
		gained = 1
	}
	s.AddExperience(gained)
	s.UpdateBondLevel(TrainBondGain)
	s.Touch(now)
	return WorkReport{
		EnergySpent:      before - s.EnergyLevel,
		ExperienceGained: gained,
	}
}

func (s *CombatState) Clone() State {
	return &CombatState{
		CoreState:    s.cloneCore(),
		BondLevel:    s.BondLevel,
		BattlesWon:   s.BattlesWon,
		BattlesLost:  s.BattlesLost,
		TotalBattles: s.TotalBattles,
	}
}

// Reset restores condition to defaults; bond and battle history survive.
func (s *CombatState) Reset() {
	s.resetCore()
}
