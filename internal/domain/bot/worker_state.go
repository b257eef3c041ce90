package bot

import (
	"math"
	"time"
)

// WorkerState is the condition of a worker bot. Workers have no bond or
// battle record; they work and they rest.
type WorkerState struct {
	CoreState
}

func (s *WorkerState) StateType() StateType { return StateWorker }

func (s *WorkerState) IsOperational() bool {
	return s.EnergyLevel > WorkerEnergyFloor && s.Maintenance > WorkerMaintenanceFloor
}

// WorkEfficiency is linear in maintenance with a near-unity energy factor at
// full charge: 1.0 at (100, 100), 0.5 at maintenance 25 with full energy.
func (s *WorkerState) WorkEfficiency() float64 {
	maintenanceFactor := (s.Maintenance + 50) / 150
	energyFactor := s.EnergyLevel / EnergyMax
	return clamp(maintenanceFactor*energyFactor, 0, 1)
}

// PerformWork drains energy proportional to intensity and duration, grants
// experience proportional to efficiency, and fatigues the worker when pushed
// at or beyond the fatigue threshold.
func (s *WorkerState) PerformWork(intensity, hours float64, now time.Time) WorkReport {
	if intensity <= 0 || hours <= 0 {
		return WorkReport{}
	}

	efficiency := s.WorkEfficiency()
	before := s.EnergyLevel
	s.UpdateEnergy(-intensity * hours * WorkEnergyCostRate)
	gained := int(math.Round(efficiency * intensity * hours * WorkExperienceRate))
	if gained < 1 {
		gained = 1
	}
	s.AddExperience(gained)
	s.Touch(now)

	report := WorkReport{
		EnergySpent:      before - s.EnergyLevel,
		ExperienceGained: gained,
	}
	if intensity >= FatigueIntensityThreshold {
		s.AddStatusEffect(StatusEffect{
			ID:              "work-fatigue",
			Kind:            EffectFatigue,
			Magnitude:       intensity,
			DurationSeconds: FatigueEffectSeconds,
			Source:          "work",
		})
		report.Fatigued = true
	}
	return report
}

// Rest restores energy proportional to duration and returns the amount
// actually restored after clamping.
func (s *WorkerState) Rest(hours float64, now time.Time) float64 {
	if hours <= 0 {
		return 0
	}
	before := s.EnergyLevel
	s.UpdateEnergy(hours * RestRecoveryRate)
	s.Touch(now)
	return s.EnergyLevel - before
}

func (s *WorkerState) Clone() State {
	return &WorkerState{CoreState: s.cloneCore()}
}

func (s *WorkerState) Reset() {
	s.resetCore()
}
