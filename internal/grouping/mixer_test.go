package grouping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"groupify/internal/model"
	"groupify/internal/roster"
)

func TestMix(t *testing.T) {
	t.Run("single group takes everyone", func(t *testing.T) {
		bm := roster.Index([]string{"24CS001", "24CS002", "24EE001"})

		groups, err := Mix(bm, 1)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Equal(t, 2, groups[0].Count("CS"))
		require.Equal(t, 1, groups[0].Count("EE"))
		require.Equal(t, 3, groups[0].Total())
	})

	t.Run("branch and group cursors cycle independently", func(t *testing.T) {
		// CS:3 EE:1 ME:2, k=2
		// sweep 1: CS->g0 EE->g1 ME->g0
		// sweep 2: CS->g1 EE(empty) ME->g0
		// sweep 3: CS->g1
		bm := roster.Index([]string{"24CS001", "24CS002", "24CS003", "24EE001", "24ME001", "24ME002"})

		groups, err := Mix(bm, 2)

		require.NoError(t, err)
		require.Equal(t, []model.BranchCount{{Branch: "CS", Count: 1}, {Branch: "ME", Count: 2}}, groups[0].Counts)
		require.Equal(t, []model.BranchCount{{Branch: "EE", Count: 1}, {Branch: "CS", Count: 2}}, groups[1].Counts)
	})

	t.Run("more groups than students leaves empty groups", func(t *testing.T) {
		bm := roster.Index([]string{"24CS001", "24EE001"})

		groups, err := Mix(bm, 4)

		require.NoError(t, err)
		require.Len(t, groups, 4)
		require.Equal(t, 1, groups[0].Total())
		require.Equal(t, 1, groups[1].Total())
		require.Empty(t, groups[2].Counts)
		require.Empty(t, groups[3].Counts)
		require.Equal(t, 4, groups[3].Number)
	})

	t.Run("empty branch map yields k empty groups", func(t *testing.T) {
		groups, err := Mix(model.BranchMap{}, 3)

		require.NoError(t, err)
		require.Len(t, groups, 3)
		for _, g := range groups {
			require.Zero(t, g.Total())
		}
	})

	t.Run("rejects k below one", func(t *testing.T) {
		_, err := Mix(roster.Index([]string{"24CS001"}), 0)

		require.ErrorIs(t, err, ErrInvalidGroupCount)
	})
}
