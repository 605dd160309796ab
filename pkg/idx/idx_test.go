package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesParsableIDs(t *testing.T) {
	t.Parallel()

	id := New()
	require.Len(t, id.String(), 26)

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestIDsSortByCreationTime(t *testing.T) {
	t.Parallel()

	earlier := NewAt(time.Now().Add(-time.Hour))
	later := NewAt(time.Now())
	require.Less(t, earlier.String(), later.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Parse("definitely-not-a-ulid")
	require.Error(t, err)
}
