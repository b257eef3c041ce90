package bot

import (
	"fmt"

	"github.com/pablohpsilva/Botking-sub000/internal/domain/item"
)

type SlotID string

type SlotCategory string

const (
	SlotSoulChip  SlotCategory = "soul_chip"
	SlotSkeleton  SlotCategory = "skeleton"
	SlotHead      SlotCategory = "head"
	SlotTorso     SlotCategory = "torso"
	SlotArmLeft   SlotCategory = "arm_left"
	SlotArmRight  SlotCategory = "arm_right"
	SlotLegs      SlotCategory = "legs"
	SlotExpansion SlotCategory = "expansion"
)

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type SlotDescriptor struct {
	ID       SlotID       `json:"id"`
	Category SlotCategory `json:"category"`
	Position Vector3      `json:"position"`
}

// SlotItem is the projection of an installed item the slot layer needs; the
// aggregate owns the full equipment values.
type SlotItem struct {
	ItemID   string       `json:"item_id"`
	Name     string       `json:"name"`
	Category SlotCategory `json:"category"`
}

type AssignResult struct {
	Success      bool   `json:"success"`
	AssignedSlot SlotID `json:"assigned_slot,omitempty"`
	Message      string `json:"message,omitempty"`
}

type SlotReport struct {
	Valid                   bool     `json:"valid"`
	Errors                  []string `json:"errors"`
	Warnings                []string `json:"warnings"`
	ConflictingSlots        []SlotID `json:"conflicting_slots"`
	UnassignedRequiredSlots []SlotID `json:"unassigned_required_slots"`
}

type SlotView struct {
	SlotID   SlotID       `json:"slot_id"`
	Category SlotCategory `json:"category"`
	Occupied bool         `json:"occupied"`
	Part     *SlotItem    `json:"part,omitempty"`
	Position Vector3      `json:"position"`
}

// anchor coordinates of each fixed slot on the rig
var slotAnchors = map[SlotCategory]Vector3{
	SlotSoulChip: {X: 0, Y: 1.2, Z: 0.3},
	SlotSkeleton: {X: 0, Y: 0, Z: 0},
	SlotHead:     {X: 0, Y: 1.6, Z: 0},
	SlotTorso:    {X: 0, Y: 0.8, Z: 0},
	SlotArmLeft:  {X: -0.6, Y: 0.9, Z: 0},
	SlotArmRight: {X: 0.6, Y: 0.9, Z: 0},
	SlotLegs:     {X: 0, Y: 0.2, Z: 0},
}

// SlotConfiguration maps a skeleton's declared layout onto addressable slots
// and tracks which item occupies which slot.
type SlotConfiguration struct {
	descriptors     []SlotDescriptor
	slotToItem      map[SlotID]SlotItem
	itemToSlot      map[string]SlotID
	requireSoulChip bool
}

// BuildSlotConfiguration derives the slot set from the skeleton: one soul
// chip slot, one skeleton slot, the fixed frame slots, then the expansion
// slots the frame declares.
func BuildSlotConfiguration(skeleton item.Skeleton, requireSoulChip bool) *SlotConfiguration {
	descriptors := []SlotDescriptor{
		{ID: SlotID(SlotSoulChip), Category: SlotSoulChip, Position: slotAnchors[SlotSoulChip]},
		{ID: SlotID(SlotSkeleton), Category: SlotSkeleton, Position: slotAnchors[SlotSkeleton]},
		{ID: SlotID(SlotHead), Category: SlotHead, Position: slotAnchors[SlotHead]},
		{ID: SlotID(SlotTorso), Category: SlotTorso, Position: slotAnchors[SlotTorso]},
		{ID: SlotID(SlotArmLeft), Category: SlotArmLeft, Position: slotAnchors[SlotArmLeft]},
		{ID: SlotID(SlotArmRight), Category: SlotArmRight, Position: slotAnchors[SlotArmRight]},
		{ID: SlotID(SlotLegs), Category: SlotLegs, Position: slotAnchors[SlotLegs]},
	}
	for i := 0; i < skeleton.ExpansionSlotCount(); i++ {
		descriptors = append(descriptors, SlotDescriptor{
			ID:       SlotID(fmt.Sprintf("expansion_%d", i+1)),
			Category: SlotExpansion,
			Position: Vector3{X: 0, Y: 0.8, Z: -0.3 - 0.2*float64(i)},
		})
	}

	return &SlotConfiguration{
		descriptors:     descriptors,
		slotToItem:      map[SlotID]SlotItem{},
		itemToSlot:      map[string]SlotID{},
		requireSoulChip: requireSoulChip,
	}
}

func (c *SlotConfiguration) Descriptors() []SlotDescriptor {
	return append([]SlotDescriptor{}, c.descriptors...)
}

func (c *SlotConfiguration) SlotFor(itemID string) (SlotID, bool) {
	id, ok := c.itemToSlot[itemID]
	return id, ok
}

// Assign places the item in the preferred slot when given, else in the first
// free compatible slot in descriptor order. Assignment failures are result
// values, never errors.
func (c *SlotConfiguration) Assign(slotItem SlotItem, preferred SlotID) AssignResult {
	if slotItem.ItemID == "" {
		return AssignResult{Message: "item has no id"}
	}
	if _, taken := c.itemToSlot[slotItem.ItemID]; taken {
		return AssignResult{Message: fmt.Sprintf("item %s is already assigned", slotItem.ItemID)}
	}

	if preferred != "" {
		descriptor, ok := c.descriptor(preferred)
		if !ok {
			return AssignResult{Message: fmt.Sprintf("slot %s does not exist", preferred)}
		}
		if descriptor.Category != slotItem.Category {
			return AssignResult{Message: fmt.Sprintf("slot %s accepts %s, not %s", preferred, descriptor.Category, slotItem.Category)}
		}
		if _, occupied := c.slotToItem[preferred]; occupied {
			return AssignResult{Message: fmt.Sprintf("slot %s is occupied", preferred)}
		}
		c.place(preferred, slotItem)
		return AssignResult{Success: true, AssignedSlot: preferred}
	}

	for _, descriptor := range c.descriptors {
		if descriptor.Category != slotItem.Category {
			continue
		}
		if _, occupied := c.slotToItem[descriptor.ID]; occupied {
			continue
		}
		c.place(descriptor.ID, slotItem)
		return AssignResult{Success: true, AssignedSlot: descriptor.ID}
	}
	return AssignResult{Message: fmt.Sprintf("no free %s slot", slotItem.Category)}
}

// Remove clears the slot holding itemID; false when the item is not assigned.
func (c *SlotConfiguration) Remove(itemID string) bool {
	slotID, ok := c.itemToSlot[itemID]
	if !ok {
		return false
	}
	delete(c.itemToSlot, itemID)
	delete(c.slotToItem, slotID)
	return true
}

// Validate reports occupancy problems without throwing: a missing required
// soul chip is advisory so partially equipped bots can exist transiently.
func (c *SlotConfiguration) Validate() SlotReport {
	report := SlotReport{
		Errors:                  []string{},
		Warnings:                []string{},
		ConflictingSlots:        []SlotID{},
		UnassignedRequiredSlots: []SlotID{},
	}

	// structurally impossible with the two maps, checked defensively
	seen := map[SlotID]string{}
	for itemID, slotID := range c.itemToSlot {
		if other, dup := seen[slotID]; dup {
			report.ConflictingSlots = append(report.ConflictingSlots, slotID)
			report.Errors = append(report.Errors, fmt.Sprintf("slot %s claimed by %s and %s", slotID, other, itemID))
			continue
		}
		seen[slotID] = itemID
	}

	if c.requireSoulChip {
		if _, occupied := c.slotToItem[SlotID(SlotSoulChip)]; !occupied {
			report.UnassignedRequiredSlots = append(report.UnassignedRequiredSlots, SlotID(SlotSoulChip))
			report.Warnings = append(report.Warnings, "required soul_chip slot is empty")
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// Visualize is a pure projection of every slot for presentation collaborators.
func (c *SlotConfiguration) Visualize() []SlotView {
	views := make([]SlotView, 0, len(c.descriptors))
	for _, descriptor := range c.descriptors {
		view := SlotView{
			SlotID:   descriptor.ID,
			Category: descriptor.Category,
			Position: descriptor.Position,
		}
		if slotItem, occupied := c.slotToItem[descriptor.ID]; occupied {
			copied := slotItem
			view.Occupied = true
			view.Part = &copied
		}
		views = append(views, view)
	}
	return views
}

func (c *SlotConfiguration) descriptor(id SlotID) (SlotDescriptor, bool) {
	for _, descriptor := range c.descriptors {
		if descriptor.ID == id {
			return descriptor, true
		}
	}
	return SlotDescriptor{}, false
}

func (c *SlotConfiguration) place(slotID SlotID, slotItem SlotItem) {
	c.slotToItem[slotID] = slotItem
	c.itemToSlot[slotItem.ItemID] = slotID
}

func slotCategoryForPart(category item.PartCategory) SlotCategory {
	return SlotCategory(category)
}
