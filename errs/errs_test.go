package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tephrocactus/lbs-go/errs"
)

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		errs.ErrInsufficientInput,
		errs.ErrInvalidUTF8,
		errs.ErrInvalidScalar,
		errs.ErrUnknownFieldID,
		errs.ErrUnknownVariantID,
		errs.ErrTooManyFields,
		errs.ErrDuplicateFieldID,
		errs.ErrDuplicateVariant,
		errs.ErrDuplicateFieldSpec,
		errs.ErrSinkError,
		errs.ErrSourceError,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "errors %v and %v must be distinct", a, b)
		}
	}
}

func TestWrappedSentinelIsMatchable(t *testing.T) {
	wrapped := fmt.Errorf("decode field 7: %w", errs.ErrUnknownFieldID)
	require.ErrorIs(t, wrapped, errs.ErrUnknownFieldID)
}
