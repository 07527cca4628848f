package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRequest(t *testing.T) {
	tests := []struct {
		name       string
		available  int
		requested  int
		toConfirm  int
		toWaitlist int
	}{
		{"all fit", 5, 3, 3, 0},
		{"exact fit", 3, 3, 3, 0},
		{"partial", 2, 5, 2, 3},
		{"none fit", 0, 4, 0, 4},
		{"negative availability clamps to zero", -2, 3, 0, 3},
		{"zero requested", 5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirm, wait := SplitRequest(tt.available, tt.requested)
			assert.Equal(t, tt.toConfirm, confirm)
			assert.Equal(t, tt.toWaitlist, wait)
		})
	}
}

func entry(id string, createdAt time.Time, requested int) WaitlistEntry {
	return WaitlistEntry{
		ID:        id,
		SessionID: "s1",
		Kind:      WaitlistKindNewSpot,
		Requested: requested,
		CreatedAt: createdAt,
	}
}

func TestPlanPromotion_FIFO(t *testing.T) {
	base := time.Now()
	entries := []WaitlistEntry{
		entry("b", base.Add(time.Minute), 2),
		entry("a", base, 3),
	}

	report := PlanPromotion(4, entries)

	assert.Equal(t, 4, report.Promoted)
	require.Len(t, report.Conversions, 2)

	// "a" arrived first and fills completely.
	assert.Equal(t, "a", report.Conversions[0].Entry.ID)
	assert.Equal(t, 3, report.Conversions[0].Units)
	assert.Equal(t, 0, report.Conversions[0].Remaining)

	// "b" absorbs the one leftover spot and keeps a remainder.
	assert.Equal(t, "b", report.Conversions[1].Entry.ID)
	assert.Equal(t, 1, report.Conversions[1].Units)
	assert.Equal(t, 1, report.Conversions[1].Remaining)
}

func TestPlanPromotion_StopsAfterPartialFill(t *testing.T) {
	base := time.Now()
	entries := []WaitlistEntry{
		entry("a", base, 5),
		entry("b", base.Add(time.Second), 1),
	}

	report := PlanPromotion(3, entries)

	// The head entry soaks up everything; "b" must wait even though it
	// would fit into a hypothetical remainder.
	assert.Equal(t, 3, report.Promoted)
	require.Len(t, report.Conversions, 1)
	assert.Equal(t, "a", report.Conversions[0].Entry.ID)
	assert.Equal(t, 3, report.Conversions[0].Units)
	assert.Equal(t, 2, report.Conversions[0].Remaining)
}

func TestPlanPromotion_TieBreakByID(t *testing.T) {
	base := time.Now()
	entries := []WaitlistEntry{
		entry("z", base, 1),
		entry("a", base, 1),
	}

	report := PlanPromotion(1, entries)

	require.Len(t, report.Conversions, 1)
	assert.Equal(t, "a", report.Conversions[0].Entry.ID)
}

func TestPlanPromotion_NoCapacity(t *testing.T) {
	entries := []WaitlistEntry{entry("a", time.Now(), 2)}

	report := PlanPromotion(0, entries)

	assert.Equal(t, 0, report.Promoted)
	assert.Empty(t, report.Conversions)
}

func TestPlanPromotion_EmptyQueue(t *testing.T) {
	report := PlanPromotion(5, nil)

	assert.Equal(t, 0, report.Promoted)
	assert.Empty(t, report.Conversions)
}

func TestPlanPromotion_DoesNotMutateInput(t *testing.T) {
	base := time.Now()
	entries := []WaitlistEntry{
		entry("b", base.Add(time.Minute), 1),
		entry("a", base, 1),
	}

	PlanPromotion(2, entries)

	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}
