package bot

const (
	EnergyMax      = 100.0
	MaintenanceMax = 100.0
	BondLevelMax   = 100

	// operational floors; a state is operational strictly above its floor
	WorkerEnergyFloor      = 0.0
	WorkerMaintenanceFloor = 0.0
	CombatEnergyFloor      = 5.0
	CombatMaintenanceFloor = 10.0

	WorkEnergyCostRate        = 10.0
	WorkExperienceRate        = 25.0
	FatigueIntensityThreshold = 2.0
	FatigueEffectSeconds      = 3600
	RestRecoveryRate          = 20.0

	TrainEnergyCostRate = 8.0
	TrainExperienceRate = 15.0
	TrainBondGain       = 1

	BattleWinExperience = 100
	BattleWinBondGain   = 2

	PlayableStartingBond   = 20
	KingStartingBond       = 100
	KingStartingBattlesWon = 10
	KingStartingExperience = 5000
	GovBotStartingBond     = 50

	CombatReadyPowerThreshold = 50.0

	// combat power weights; only the ordering they induce is contractual
	ChipPowerWeight        = 50.0
	BondPowerWeight        = 2.0
	BattleWinPowerWeight   = 10.0
	ExperiencePowerDivisor = 100.0
	WorkerPowerWeight      = 10.0
)

// social status thresholds, monotonic in recency and record
const (
	ActivityVeryActiveWithin = 1   // hours
	ActivityActiveWithin     = 24  // hours
	ActivityOccasionalWithin = 168 // hours

	CombatRatingMinBattles = 5
	CombatChampionWinRate  = 75.0
	CombatVeteranWinRate   = 50.0
)
