package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatplan/internal/importer"
)

func TestParseMembers(t *testing.T) {
	csv := "First Name,Last Name,Display Name,Room\n" +
		"Avi,Cohen,Avi C.,Side\n" +
		"Dana,Levi,Dana,\n" +
		"Noa,Bar,,main\n" // no display name, dropped

	members, err := importer.ParseMembers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "Avi", members[0].FirstName)
	assert.Equal(t, "Cohen", members[0].LastName)
	assert.Equal(t, "Avi C.", members[0].DisplayName)
	assert.Equal(t, "side", members[0].RoomID, "room is lower-cased")
	assert.NotEmpty(t, members[0].ID, "every parsed member gets an id")

	assert.Equal(t, "Dana", members[1].DisplayName)
	assert.Equal(t, "main", members[1].RoomID, "missing room falls back to the main room")

	assert.NotEqual(t, members[0].ID, members[1].ID)
}

func TestParseMembersStripsBOM(t *testing.T) {
	csv := "\ufeffFirst Name,Last Name,Display Name,Room\n" +
		"Avi,Cohen,Avi,main\n"

	members, err := importer.ParseMembers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Avi", members[0].FirstName, "BOM on the first header must not break column matching")
}

func TestParseMembersHeaderOnly(t *testing.T) {
	members, err := importer.ParseMembers(strings.NewReader("First Name,Last Name,Display Name,Room\n"))
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestParseMembersEmptyFile(t *testing.T) {
	_, err := importer.ParseMembers(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseMembersShortRecords(t *testing.T) {
	// Rows shorter than the header are tolerated; absent cells read as
	// empty.
	csv := "First Name,Last Name,Display Name,Room\n" +
		"Avi,Cohen,Avi\n"

	members, err := importer.ParseMembers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "main", members[0].RoomID)
}

func TestParseMembersUnknownHeadersIgnored(t *testing.T) {
	csv := "Display Name,Comment\n" +
		"Avi,ignore me\n"

	members, err := importer.ParseMembers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Avi", members[0].DisplayName)
	assert.Empty(t, members[0].FirstName)
}
