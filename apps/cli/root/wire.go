package root

import (
	"github.com/zenGate-Global/palmyra-timetable/apps/cli/cmd/auth"
	"github.com/zenGate-Global/palmyra-timetable/apps/cli/cmd/entries"
	"github.com/zenGate-Global/palmyra-timetable/apps/cli/cmd/migrate"
)

func init() {
	Root().AddCommand(auth.Command())
	Root().AddCommand(migrate.Command())
	Root().AddCommand(entries.Command())
}
