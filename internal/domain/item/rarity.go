package item

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUltraRare Rarity = "ultra_rare"
	RarityPrototype Rarity = "prototype"
)

var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityUltraRare,
	RarityPrototype,
}

var rarityBaseMagnitude = map[Rarity]float64{
	RarityCommon:    0.05,
	RarityUncommon:  0.10,
	RarityRare:      0.15,
	RarityEpic:      0.25,
	RarityLegendary: 0.35,
	RarityUltraRare: 0.40,
	RarityPrototype: 0.50,
}

var rarityMaxUpgradeLevel = map[Rarity]int{
	RarityCommon:    5,
	RarityUncommon:  7,
	RarityRare:      10,
	RarityEpic:      12,
	RarityLegendary: 15,
	RarityUltraRare: 18,
	RarityPrototype: 20,
}

// Index returns the position of r in the rarity ordering, -1 for unknown values.
func (r Rarity) Index() int {
	for i, known := range rarityOrder {
		if known == r {
			return i
		}
	}
	return -1
}

func (r Rarity) Valid() bool {
	return r.Index() >= 0
}

func (r Rarity) Less(other Rarity) bool {
	return r.Index() < other.Index()
}

// BaseMagnitude is the rarity-driven effect contribution shared by every
// equipment kind. Unknown rarities contribute as common.
func (r Rarity) BaseMagnitude() float64 {
	if m, ok := rarityBaseMagnitude[r]; ok {
		return m
	}
	return rarityBaseMagnitude[RarityCommon]
}

func (r Rarity) MaxUpgradeLevel() int {
	if lvl, ok := rarityMaxUpgradeLevel[r]; ok {
		return lvl
	}
	return rarityMaxUpgradeLevel[RarityCommon]
}

// statMultiplier scales flat equipment stats: common 1x up to prototype 7x.
func (r Rarity) statMultiplier() float64 {
	idx := r.Index()
	if idx < 0 {
		idx = 0
	}
	return float64(idx + 1)
}
