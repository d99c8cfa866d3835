package items

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReviewPageDefaults(t *testing.T) {
	skip, limit := reviewPage(0, 0)
	require.EqualValues(t, 0, skip)
	require.EqualValues(t, 5, limit)
}

func TestReviewPageSkip(t *testing.T) {
	skip, limit := reviewPage(3, 5)
	require.EqualValues(t, 10, skip)
	require.EqualValues(t, 5, limit)
}

func TestReviewPageCapsSize(t *testing.T) {
	_, limit := reviewPage(1, 500)
	require.EqualValues(t, 50, limit)
}

func TestReviewPageNegativeInputs(t *testing.T) {
	skip, limit := reviewPage(-2, -7)
	require.EqualValues(t, 0, skip)
	require.EqualValues(t, 5, limit)
}
