// Package contracts embeds the OpenAPI documents served by the API docs routes.
package contracts

import (
	_ "embed"
)

//go:embed timetable.yaml
var timetableYAML []byte

// TimetableYAML returns the raw timetable contract.
func TimetableYAML() []byte {
	return timetableYAML
}
