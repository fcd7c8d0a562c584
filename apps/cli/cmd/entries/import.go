package entries

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	timetableservice "github.com/zenGate-Global/palmyra-timetable/domains/timetable/be/service"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/requesttrace"
	"github.com/zenGate-Global/palmyra-timetable/platform/go/tenant"
)

type importFile struct {
	Entries []importEntry `yaml:"entries"`
}

type importEntry struct {
	TimeSlotID     string     `yaml:"timeSlotId"`
	Weekday        int        `yaml:"weekday"`
	CourseID       string     `yaml:"courseId"`
	SubjectName    string     `yaml:"subjectName"`
	TeacherID      string     `yaml:"teacherId"`
	RoomID         string     `yaml:"roomId"`
	ClassName      string     `yaml:"className"`
	Section        string     `yaml:"section"`
	AcademicYear   string     `yaml:"academicYear"`
	Term           string     `yaml:"term"`
	EffectiveFrom  *time.Time `yaml:"effectiveFrom"`
	EffectiveUntil *time.Time `yaml:"effectiveUntil"`
	Status         string     `yaml:"status"`
	Notes          string     `yaml:"notes"`
}

// parseImportFile decodes the YAML document into create inputs. Malformed ids abort the
// whole import so that item indexes in the report line up with the file.
func parseImportFile(raw []byte) ([]timetableservice.CreateInput, error) {
	var doc importFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, errors.New("import file has no entries")
	}

	inputs := make([]timetableservice.CreateInput, 0, len(doc.Entries))
	for i, item := range doc.Entries {
		input, err := item.toInput()
		if err != nil {
			return nil, fmt.Errorf("entries[%d]: %w", i, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func (e importEntry) toInput() (timetableservice.CreateInput, error) {
	slotID, err := uuid.Parse(strings.TrimSpace(e.TimeSlotID))
	if err != nil {
		return timetableservice.CreateInput{}, fmt.Errorf("timeSlotId must be a valid UUID: %w", err)
	}

	input := timetableservice.CreateInput{
		TimeSlotID:     slotID,
		Weekday:        e.Weekday,
		SubjectName:    optional(e.SubjectName),
		ClassName:      optional(e.ClassName),
		Section:        optional(e.Section),
		AcademicYear:   optional(e.AcademicYear),
		Term:           optional(e.Term),
		EffectiveFrom:  e.EffectiveFrom,
		EffectiveUntil: e.EffectiveUntil,
		Status:         strings.TrimSpace(e.Status),
		Notes:          optional(e.Notes),
	}

	if input.CourseID, err = optionalUUID(e.CourseID, "courseId"); err != nil {
		return timetableservice.CreateInput{}, err
	}
	if input.TeacherID, err = optionalUUID(e.TeacherID, "teacherId"); err != nil {
		return timetableservice.CreateInput{}, err
	}
	if input.RoomID, err = optionalUUID(e.RoomID, "roomId"); err != nil {
		return timetableservice.CreateInput{}, err
	}
	return input, nil
}

// runImport submits the batch on behalf of the system actor and prints one line per item.
// It fails when any item was rejected so scripts can detect partial imports.
func runImport(ctx context.Context, svc timetableservice.Service, tenantID uuid.UUID, inputs []timetableservice.CreateInput, out io.Writer) error {
	ctx = tenant.WithSpace(ctx, tenant.Space{TenantID: tenantID})
	ctx = requesttrace.IntoContext(ctx, requesttrace.System("cli-entries-import"))

	result, err := svc.BulkCreate(ctx, inputs)
	if err != nil {
		return fmt.Errorf("bulk create: %s", describe(err))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tSTATUS\tENTRY_ID\tDETAIL")
	for _, item := range result.Items {
		if item.Err != nil {
			fmt.Fprintf(tw, "%d\tfailed\t-\t%s\n", item.Index, describe(item.Err))
			continue
		}
		fmt.Fprintf(tw, "%d\tcreated\t%s\t%s\n", item.Index, item.Entry.ID, item.Entry.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "created %d, failed %d\n", result.Created, result.Failed)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d entries failed", result.Failed, len(inputs))
	}
	return nil
}

func describe(err error) string {
	var conflictErr *timetableservice.ConflictError
	var validationErr *timetableservice.ValidationError
	switch {
	case errors.As(err, &conflictErr):
		messages := make([]string, 0, len(conflictErr.Conflicts))
		for _, c := range conflictErr.Conflicts {
			messages = append(messages, c.Message)
		}
		return strings.Join(messages, "; ")
	case errors.As(err, &validationErr):
		fields := make([]string, 0, len(validationErr.Fields))
		for field, issues := range validationErr.Fields {
			fields = append(fields, field+": "+strings.Join(issues, ", "))
		}
		sort.Strings(fields)
		return strings.Join(fields, "; ")
	default:
		return err.Error()
	}
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalUUID(value, field string) (*uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID: %w", field, err)
	}
	return &parsed, nil
}
