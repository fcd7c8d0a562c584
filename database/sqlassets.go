package sqlassets

import _ "embed"

//go:embed schema/timetable/time_slots.sql
var TimeSlotsSQL string

//go:embed schema/timetable/rooms.sql
var RoomsSQL string

//go:embed schema/timetable/timetable_entries.sql
var TimetableEntriesSQL string
