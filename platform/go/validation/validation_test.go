package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string  `json:"name" validate:"notblank,max=20"`
	StartTime string  `json:"startTime" validate:"timeofday"`
	Kind      string  `json:"kind" validate:"oneof=class break"`
	Days      []int16 `json:"days" validate:"dive,min=1,max=7"`
	Notes     *string `json:"notes" validate:"omitempty,notblank"`
}

func TestStructValid(t *testing.T) {
	fields := Struct(sample{Name: "Period 1", StartTime: "08:00", Kind: "class", Days: []int16{1, 5}})
	require.Nil(t, fields)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	blank := "   "
	fields := Struct(sample{Name: "  ", StartTime: "25:00", Kind: "lecture", Days: []int16{1, 9}, Notes: &blank})

	require.Contains(t, fields, "name")
	require.Contains(t, fields, "startTime")
	require.Contains(t, fields, "kind")
	require.Contains(t, fields, "days[1]")
	require.Contains(t, fields, "notes")
	require.Equal(t, []string{"startTime must be a time of day formatted as HH:MM"}, fields["startTime"])
}
