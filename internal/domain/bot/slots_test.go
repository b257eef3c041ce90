package bot

import (
	"testing"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

func testSkeleton(slots int) item.Skeleton {
	return item.NewSkeleton(item.SkeletonConfig{
		ID:        "skel-1",
		Name:      "test frame",
		Type:      item.SkeletonBalanced,
		Rarity:    item.RarityCommon,
		SlotCount: slots,
	})
}

func TestBuildSlotConfigurationLayout(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(2), true)
	descriptors := cfg.Descriptors()

	counts := map[SlotCategory]int{}
	for _, d := range descriptors {
		counts[d.Category]++
	}
	want := map[SlotCategory]int{
		SlotSoulChip: 1, SlotSkeleton: 1, SlotHead: 1, SlotTorso: 1,
		SlotArmLeft: 1, SlotArmRight: 1, SlotLegs: 1, SlotExpansion: 2,
	}
	for category, n := range want {
		if counts[category] != n {
			t.Fatalf("%s slots = %d, want %d", category, counts[category], n)
		}
	}
}

func TestAssignAutoPicksFirstFreeCompatibleSlot(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(2), true)

	first := cfg.Assign(SlotItem{ItemID: "chip-1", Category: SlotExpansion}, "")
	if !first.Success || first.AssignedSlot != "expansion_1" {
		t.Fatalf("first assign = %+v, want expansion_1", first)
	}
	second := cfg.Assign(SlotItem{ItemID: "chip-2", Category: SlotExpansion}, "")
	if !second.Success || second.AssignedSlot != "expansion_2" {
		t.Fatalf("second assign = %+v, want expansion_2", second)
	}
	third := cfg.Assign(SlotItem{ItemID: "chip-3", Category: SlotExpansion}, "")
	if third.Success {
		t.Fatalf("third assign should fail with no free slot, got %+v", third)
	}
}

func TestAssignPreferredSlot(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(2), true)

	result := cfg.Assign(SlotItem{ItemID: "chip-1", Category: SlotExpansion}, "expansion_2")
	if !result.Success || result.AssignedSlot != "expansion_2" {
		t.Fatalf("preferred assign = %+v", result)
	}

	if r := cfg.Assign(SlotItem{ItemID: "chip-2", Category: SlotExpansion}, "expansion_2"); r.Success {
		t.Fatalf("occupied preferred slot should fail, got %+v", r)
	}
	if r := cfg.Assign(SlotItem{ItemID: "part-1", Category: SlotHead}, "legs"); r.Success {
		t.Fatalf("category mismatch should fail, got %+v", r)
	}
	if r := cfg.Assign(SlotItem{ItemID: "part-2", Category: SlotHead}, "no_such_slot"); r.Success {
		t.Fatalf("unknown slot should fail, got %+v", r)
	}
}

func TestAssignRejectsDoubleAssignment(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(2), true)
	if r := cfg.Assign(SlotItem{ItemID: "chip-1", Category: SlotExpansion}, ""); !r.Success {
		t.Fatalf("setup assign failed: %+v", r)
	}
	if r := cfg.Assign(SlotItem{ItemID: "chip-1", Category: SlotExpansion}, ""); r.Success {
		t.Fatalf("item must occupy at most one slot")
	}
}

func TestRemoveAndReassignIdempotence(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(1), true)

	assigned := cfg.Assign(SlotItem{ItemID: "part-1", Category: SlotHead}, "")
	if !assigned.Success {
		t.Fatalf("assign failed: %+v", assigned)
	}
	if !cfg.Remove("part-1") {
		t.Fatalf("remove should succeed")
	}
	if cfg.Remove("part-1") {
		t.Fatalf("second remove should be a no-op")
	}

	// the freed slot accepts a different compatible item
	replacement := cfg.Assign(SlotItem{ItemID: "part-2", Category: SlotHead}, assigned.AssignedSlot)
	if !replacement.Success || replacement.AssignedSlot != assigned.AssignedSlot {
		t.Fatalf("reassign to freed slot = %+v", replacement)
	}
}

func TestValidateFlagsMissingRequiredSoulChip(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(0), true)
	report := cfg.Validate()
	if !report.Valid {
		t.Fatalf("missing soul chip is advisory, report should stay valid: %+v", report)
	}
	if len(report.UnassignedRequiredSlots) != 1 || report.UnassignedRequiredSlots[0] != SlotID(SlotSoulChip) {
		t.Fatalf("unassigned required = %+v, want soul_chip", report.UnassignedRequiredSlots)
	}
	if len(report.Warnings) == 0 {
		t.Fatalf("expected a warning for the empty soul chip slot")
	}

	cfg.Assign(SlotItem{ItemID: "soul-1", Category: SlotSoulChip}, "")
	report = cfg.Validate()
	if len(report.UnassignedRequiredSlots) != 0 {
		t.Fatalf("soul chip installed, still flagged: %+v", report)
	}
}

func TestValidateWithoutSoulChipRequirement(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(0), false)
	report := cfg.Validate()
	if !report.Valid || len(report.Warnings) != 0 {
		t.Fatalf("worker layout should validate clean: %+v", report)
	}
}

func TestVisualize(t *testing.T) {
	cfg := BuildSlotConfiguration(testSkeleton(1), true)
	cfg.Assign(SlotItem{ItemID: "part-1", Name: "optic array", Category: SlotHead}, "")

	views := cfg.Visualize()
	if len(views) != len(cfg.Descriptors()) {
		t.Fatalf("view count = %d, want %d", len(views), len(cfg.Descriptors()))
	}
	var headView *SlotView
	for i := range views {
		if views[i].Category == SlotHead {
			headView = &views[i]
		}
		if views[i].Category == SlotTorso && views[i].Occupied {
			t.Fatalf("torso should be empty")
		}
	}
	if headView == nil || !headView.Occupied || headView.Part == nil || headView.Part.Name != "optic array" {
		t.Fatalf("head view = %+v", headView)
	}
	if headView.Position != slotAnchors[SlotHead] {
		t.Fatalf("head position = %+v, want anchor %+v", headView.Position, slotAnchors[SlotHead])
	}
}
