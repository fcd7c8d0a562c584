package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SlotUsage answers the time slot catalog's in-use question from the entry store.
// Draft and archived entries never pin a slot.
type SlotUsage struct {
	Repo Repository
}

// SlotInUse reports whether any active entry of the current tenant references the slot.
func (u SlotUsage) SlotInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	entries, err := u.Repo.List(ctx, ListFilter{
		TimeSlotID: &id,
		Statuses:   []Status{StatusActive},
	})
	if err != nil {
		return false, fmt.Errorf("list entries for time slot: %w", err)
	}
	return len(entries) > 0, nil
}
