package fieldset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/errs"
)

func TestTracker_SeeDistinctIDs(t *testing.T) {
	tr := NewTracker(4)

	require.NoError(t, tr.See(1))
	require.NoError(t, tr.See(2))
	require.NoError(t, tr.See(65535))
	require.Equal(t, 3, tr.Count())
}

func TestTracker_SeeDuplicate(t *testing.T) {
	tr := NewTracker(4)

	require.NoError(t, tr.See(7))
	err := tr.See(7)
	require.ErrorIs(t, err, errs.ErrDuplicateFieldID)
	require.Equal(t, 1, tr.Count())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(4)
	require.NoError(t, tr.See(1))
	require.NoError(t, tr.See(2))

	tr.Reset()
	require.Equal(t, 0, tr.Count())

	require.NoError(t, tr.See(1), "ids must be re-usable across records after Reset")
}
