package item

type Stats struct {
	Attack            int `json:"attack"`
	Defense           int `json:"defense"`
	Speed             int `json:"speed"`
	Perception        int `json:"perception"`
	EnergyConsumption int `json:"energy_consumption"`
}

func (s Stats) Add(other Stats) Stats {
	return Stats{
		Attack:            s.Attack + other.Attack,
		Defense:           s.Defense + other.Defense,
		Speed:             s.Speed + other.Speed,
		Perception:        s.Perception + other.Perception,
		EnergyConsumption: s.EnergyConsumption + other.EnergyConsumption,
	}
}

// Total is the offensive/defensive sum used by combat power; energy
// consumption is a cost, not a contribution, so it is excluded.
func (s Stats) Total() int {
	return s.Attack + s.Defense + s.Speed + s.Perception
}
