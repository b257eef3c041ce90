package item

import "testing"

func TestNewSkeletonClampsExpansionSlots(t *testing.T) {
	s := NewSkeleton(SkeletonConfig{Type: SkeletonLight, Rarity: RarityCommon, SlotCount: 10})
	if s.SlotCount != skeletonMaxExpansionSlots[SkeletonLight] {
		t.Fatalf("slot count = %d, want %d", s.SlotCount, skeletonMaxExpansionSlots[SkeletonLight])
	}
	if got := s.ExpansionSlotCount(); got != s.SlotCount {
		t.Fatalf("expansion slots = %d, want %d", got, s.SlotCount)
	}
}

func TestNewSkeletonScalesStatsWithRarity(t *testing.T) {
	common := NewSkeleton(SkeletonConfig{Type: SkeletonHeavy, Rarity: RarityCommon})
	proto := NewSkeleton(SkeletonConfig{Type: SkeletonHeavy, Rarity: RarityPrototype})
	if proto.BaseStats.Total() <= common.BaseStats.Total() {
		t.Fatalf("prototype stats %d not above common %d", proto.BaseStats.Total(), common.BaseStats.Total())
	}
	if proto.BaseStats.EnergyConsumption != common.BaseStats.EnergyConsumption {
		t.Fatalf("energy consumption should not scale with rarity")
	}
}

func TestNewSkeletonUnknownTypeFallsBack(t *testing.T) {
	s := NewSkeleton(SkeletonConfig{Type: "exoskeleton"})
	if s.Type != SkeletonBalanced {
		t.Fatalf("type = %s, want balanced fallback", s.Type)
	}
	if s.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestNewPartScalesWithRarityAndCategory(t *testing.T) {
	for _, category := range PartCategories {
		common := NewPart(PartConfig{Category: category, Rarity: RarityCommon})
		epic := NewPart(PartConfig{Category: category, Rarity: RarityEpic})
		if epic.Stats.Total() <= common.Stats.Total() {
			t.Fatalf("%s: epic stats %d not above common %d", category, epic.Stats.Total(), common.Stats.Total())
		}
	}

	arm := NewPart(PartConfig{Category: PartArmRight, Rarity: RarityRare})
	head := NewPart(PartConfig{Category: PartHead, Rarity: RarityRare})
	if arm.Stats.Attack <= head.Stats.Attack {
		t.Fatalf("arm attack %d should exceed head attack %d", arm.Stats.Attack, head.Stats.Attack)
	}
	if head.Stats.Perception <= arm.Stats.Perception {
		t.Fatalf("head perception %d should exceed arm perception %d", head.Stats.Perception, arm.Stats.Perception)
	}
}
