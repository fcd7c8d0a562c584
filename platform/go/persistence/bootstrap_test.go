package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"

	sqlassets "github.com/zenGate-Global/palmyra-timetable/database"
)

func TestSplitStatementsDropsCommentsAndBlanks(t *testing.T) {
	script := `
-- leading comment
CREATE TABLE a (id INT);

-- another comment
CREATE INDEX a_idx ON a (id);
;
`
	statements := splitStatements(script)
	require.Equal(t, []string{
		"CREATE TABLE a (id INT)",
		"CREATE INDEX a_idx ON a (id)",
	}, statements)
}

func TestEmbeddedScriptsDeclareActiveIndexes(t *testing.T) {
	statements := splitStatements(sqlassets.TimetableEntriesSQL)
	require.NotEmpty(t, statements)

	joined := ""
	for _, stmt := range statements {
		joined += stmt + "\n"
	}
	for _, index := range []string{TeacherActiveIndex, RoomActiveIndex, ClassActiveIndex} {
		require.Contains(t, joined, index)
	}

	require.NotEmpty(t, splitStatements(sqlassets.TimeSlotsSQL))
	require.NotEmpty(t, splitStatements(sqlassets.RoomsSQL))
}
