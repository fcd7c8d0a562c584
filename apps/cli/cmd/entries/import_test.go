package entries

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	roomsrepo "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/repo"
	roomsservice "github.com/zenGate-Global/palmyra-timetable/domains/rooms/be/service"
	timeslotsrepo "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/repo"
	timeslotsservice "github.com/zenGate-Global/palmyra-timetable/domains/timeslots/be/service"
	timetablerepo "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/repo"
	timetableservice "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

func TestParseImportFile(t *testing.T) {
	slotID := uuid.New()
	teacherID := uuid.New()

	inputs, err := parseImportFile([]byte(fmt.Sprintf(`
entries:
  - timeSlotId: %s
    weekday: 2
    subjectName: Biology
    teacherId: %s
    className: "9"
    section: B
    academicYear: 2025-2026
    effectiveFrom: 2025-09-01T00:00:00Z
  - timeSlotId: %s
    weekday: 3
    section: "  "
    status: draft
`, slotID, teacherID, slotID)))
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	first := inputs[0]
	require.Equal(t, slotID, first.TimeSlotID)
	require.Equal(t, 2, first.Weekday)
	require.Equal(t, "Biology", *first.SubjectName)
	require.Equal(t, teacherID, *first.TeacherID)
	require.Equal(t, "9", *first.ClassName)
	require.Equal(t, "2025-2026", *first.AcademicYear)
	require.NotNil(t, first.EffectiveFrom)
	require.Equal(t, 2025, first.EffectiveFrom.Year())
	require.Nil(t, first.RoomID)

	second := inputs[1]
	require.Nil(t, second.Section)
	require.Equal(t, "draft", second.Status)
}

func TestParseImportFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "not yaml", doc: "entries: [", wantErr: "parse import file"},
		{name: "empty", doc: "entries: []", wantErr: "no entries"},
		{name: "bad slot", doc: "entries:\n  - timeSlotId: nope\n    weekday: 1\n", wantErr: "entries[0]: timeSlotId"},
		{name: "bad teacher", doc: fmt.Sprintf("entries:\n  - timeSlotId: %s\n    weekday: 1\n    teacherId: x\n", uuid.New()), wantErr: "entries[0]: teacherId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseImportFile([]byte(tt.doc))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunImportReportsEachItem(t *testing.T) {
	tenantID := uuid.New()
	ctx := tenant.WithSpace(context.Background(), tenant.Space{TenantID: tenantID})

	slots := timeslotsservice.New(timeslotsrepo.NewMemoryRepository())
	slot, err := slots.Create(ctx, timeslotsservice.CreateInput{Name: "Period 2", StartTime: "09:00", EndTime: "09:45", Position: 2})
	require.NoError(t, err)

	svc := timetableservice.New(timetableservice.Dependencies{
		Repo:  timetablerepo.NewMemoryRepository(),
		Slots: slots,
		Rooms: roomsservice.New(roomsrepo.NewMemoryRepository()),
	})

	teacher := uuid.New()
	class := func(name string) *string { return &name }
	inputs := []timetableservice.CreateInput{
		{TimeSlotID: slot.ID, Weekday: 1, TeacherID: &teacher, ClassName: class("7")},
		{TimeSlotID: slot.ID, Weekday: 1, TeacherID: &teacher, ClassName: class("8")},
		{TimeSlotID: slot.ID, Weekday: 2, TeacherID: &teacher, ClassName: class("8")},
	}

	var out bytes.Buffer
	err = runImport(context.Background(), svc, tenantID, inputs, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 3 entries failed")

	report := out.String()
	lines := strings.Split(strings.TrimSpace(report), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[1], "created")
	require.Contains(t, lines[2], "failed")
	require.Contains(t, lines[3], "created")
	require.Contains(t, report, "created 2, failed 1")

	created, err := svc.List(ctx, timetableservice.ListFilter{TeacherID: &teacher})
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, entry := range created {
		require.NotNil(t, entry.CreatedBy)
		require.Equal(t, "system", *entry.CreatedBy)
	}
}

func TestRunImportRejectsWholeBatch(t *testing.T) {
	svc := timetableservice.New(timetableservice.Dependencies{
		Repo:  timetablerepo.NewMemoryRepository(),
		Slots: timeslotsservice.New(timeslotsrepo.NewMemoryRepository()),
		Rooms: roomsservice.New(roomsrepo.NewMemoryRepository()),
	})

	var out bytes.Buffer
	err := runImport(context.Background(), svc, uuid.New(), nil, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bulk create")
	require.Empty(t, out.String())
}
