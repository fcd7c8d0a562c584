package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/repo"
	"github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

func tenantCtx() context.Context {
	return tenant.WithSpace(context.Background(), tenant.Space{TenantID: uuid.New()})
}

func strPtr(v string) *string { return &v }

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())

	tests := []struct {
		name   string
		input  service.CreateInput
		fields []string
	}{
		{
			name:   "missing everything",
			input:  service.CreateInput{},
			fields: []string{"name", "startTime", "endTime"},
		},
		{
			name:   "end before start",
			input:  service.CreateInput{Name: "P1", StartTime: "09:00", EndTime: "08:00"},
			fields: []string{"endTime"},
		},
		{
			name:   "equal times",
			input:  service.CreateInput{Name: "P1", StartTime: "09:00", EndTime: "09:00"},
			fields: []string{"endTime"},
		},
		{
			name:   "unknown kind and weekday",
			input:  service.CreateInput{Name: "P1", StartTime: "08:00", EndTime: "09:00", Kind: "siesta", Days: []int{1, 8}},
			fields: []string{"kind", "days[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tenantCtx(), tt.input)
			require.Error(t, err)

			var validationErr *service.ValidationError
			require.True(t, errors.As(err, &validationErr))
			for _, field := range tt.fields {
				require.Contains(t, validationErr.Fields, field)
			}
		})
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())

	slot, err := svc.Create(tenantCtx(), service.CreateInput{
		Name:      "  Period 1 ",
		StartTime: "08:00",
		EndTime:   "08:45",
		Code:      strPtr("  "),
	})
	require.NoError(t, err)
	require.Equal(t, "Period 1", slot.Name)
	require.Equal(t, service.KindClass, slot.Kind)
	require.Equal(t, []int{1, 2, 3, 4, 5}, slot.Days)
	require.Nil(t, slot.Code)
	require.Equal(t, 45, slot.DurationMinutes())
	require.True(t, slot.IsActive)
	require.True(t, slot.AppliesOn(3))
	require.False(t, slot.AppliesOn(6))
}

func TestCreateNormalizesDays(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())

	slot, err := svc.Create(tenantCtx(), service.CreateInput{
		Name:      "Saturday club",
		StartTime: "10:00",
		EndTime:   "11:30",
		Kind:      "free",
		Days:      []int{6, 1, 6, 3},
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 6}, slot.Days)
	require.Equal(t, 90, slot.DurationMinutes())
}

func TestListOrdersAndScopesByYear(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	svc := service.New(repo.NewMemoryRepository())

	create := func(name, start, end string, position int, year *string) service.TimeSlot {
		slot, err := svc.Create(ctx, service.CreateInput{Name: name, StartTime: start, EndTime: end, Position: position, AcademicYear: year})
		require.NoError(t, err)
		return slot
	}

	second := create("Period 2", "09:00", "09:45", 2, nil)
	first := create("Period 1", "08:00", "08:45", 1, strPtr("2025"))
	create("Legacy", "07:00", "07:45", 0, strPtr("2024"))
	breakSlot := create("Break", "08:45", "09:00", 1, nil)

	slots, err := svc.List(ctx, service.ListOptions{AcademicYear: strPtr(" 2025 ")})
	require.NoError(t, err)
	require.Len(t, slots, 3)
	require.Equal(t, first.ID, slots[0].ID)
	require.Equal(t, breakSlot.ID, slots[1].ID)
	require.Equal(t, second.ID, slots[2].ID)

	all, err := svc.List(ctx, service.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	other, err := svc.List(tenantCtx(), service.ListOptions{})
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestUpdateRevalidatesMergedTimes(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	svc := service.New(repo.NewMemoryRepository())

	slot, err := svc.Create(ctx, service.CreateInput{Name: "P1", StartTime: "08:00", EndTime: "08:45", Code: strPtr("P1")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, slot.ID, service.UpdateInput{StartTime: strPtr("09:00")})
	var validationErr *service.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "endTime")

	updated, err := svc.Update(ctx, slot.ID, service.UpdateInput{
		StartTime: strPtr("09:00"),
		EndTime:   strPtr("10:00"),
		Code:      strPtr(""),
	})
	require.NoError(t, err)
	require.Equal(t, 9*time.Hour, updated.StartTime)
	require.Nil(t, updated.Code)
	require.Equal(t, slot.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, slot.ID, service.UpdateInput{})
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "payload")

	_, err = svc.Update(ctx, slot.ID, service.UpdateInput{Name: strPtr(" ")})
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "name")
}

func TestDeactivateIsLogical(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	svc := service.New(repo.NewMemoryRepository())

	slot, err := svc.Create(ctx, service.CreateInput{Name: "P1", StartTime: "08:00", EndTime: "08:45"})
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(ctx, slot.ID)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	again, err := svc.Deactivate(ctx, slot.ID)
	require.NoError(t, err)
	require.False(t, again.IsActive)

	fetched, err := svc.Get(ctx, slot.ID)
	require.NoError(t, err)
	require.False(t, fetched.IsActive)

	active, err := svc.List(ctx, service.ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	require.Empty(t, active)
}

type usageFunc func(ctx context.Context, id uuid.UUID) (bool, error)

func (f usageFunc) SlotInUse(ctx context.Context, id uuid.UUID) (bool, error) {
	return f(ctx, id)
}

func TestDeactivateRefusesSlotInUse(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	used := map[uuid.UUID]bool{}
	svc := service.New(repo.NewMemoryRepository(), service.WithUsageChecker(usageFunc(func(_ context.Context, id uuid.UUID) (bool, error) {
		return used[id], nil
	})))

	slot, err := svc.Create(ctx, service.CreateInput{Name: "P1", StartTime: "08:00", EndTime: "08:45"})
	require.NoError(t, err)
	used[slot.ID] = true

	_, err = svc.Deactivate(ctx, slot.ID)
	require.ErrorIs(t, err, service.ErrInUse)

	inactive := false
	_, err = svc.Update(ctx, slot.ID, service.UpdateInput{IsActive: &inactive})
	require.ErrorIs(t, err, service.ErrInUse)

	fetched, err := svc.Get(ctx, slot.ID)
	require.NoError(t, err)
	require.True(t, fetched.IsActive)

	name := "Period 1"
	renamed, err := svc.Update(ctx, slot.ID, service.UpdateInput{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Period 1", renamed.Name)

	used[slot.ID] = false
	deactivated, err := svc.Deactivate(ctx, slot.ID)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)
}

func TestDeactivateSurfacesUsageErrors(t *testing.T) {
	t.Parallel()

	ctx := tenantCtx()
	boom := errors.New("entries unavailable")
	svc := service.New(repo.NewMemoryRepository(), service.WithUsageChecker(usageFunc(func(context.Context, uuid.UUID) (bool, error) {
		return false, boom
	})))

	slot, err := svc.Create(ctx, service.CreateInput{Name: "P1", StartTime: "08:00", EndTime: "08:45"})
	require.NoError(t, err)

	_, err = svc.Deactivate(ctx, slot.ID)
	require.ErrorIs(t, err, boom)
}

func TestGetUnknownSlot(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())
	_, err := svc.Get(tenantCtx(), uuid.New())
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Get(tenantCtx(), uuid.Nil)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestRequiresTenant(t *testing.T) {
	t.Parallel()

	svc := service.New(repo.NewMemoryRepository())
	_, err := svc.Create(context.Background(), service.CreateInput{Name: "P1", StartTime: "08:00", EndTime: "08:45"})
	require.ErrorIs(t, err, tenant.ErrMissingSpace)
}
