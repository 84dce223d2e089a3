package grouping

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"groupify/internal/model"
	"groupify/internal/roster"
)

func randomRoster(r *rand.Rand) []string {
	branches := []string{"CS", "EE", "ME", "CE", "CH", "MM", "AI", "MC", "PHY"}
	n := r.Intn(120)
	rolls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := branches[r.Intn(len(branches))]
		rolls = append(rolls, fmt.Sprintf("2%d%s%03d", r.Intn(5), b, r.Intn(200)))
	}
	if r.Intn(4) == 0 {
		rolls = append(rolls, "0000")
	}
	return rolls
}

func requireSumInvariants(t *testing.T, bm model.BranchMap, groups []model.Group, k int) {
	t.Helper()

	require.Len(t, groups, k)
	total := 0
	perBranch := make(map[string]int)
	for i, g := range groups {
		require.Equal(t, i+1, g.Number)
		for _, c := range g.Counts {
			require.Positive(t, c.Count, "zero or negative count for %s", c.Branch)
			perBranch[c.Branch] += c.Count
			total += c.Count
		}
	}
	require.Equal(t, bm.Total(), total)
	for _, b := range bm.Branches {
		require.Equal(t, bm.Size(b), perBranch[b], "branch %s", b)
	}
}

func TestDistributionInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(20251019))

	for i := 0; i < 200; i++ {
		rolls := randomRoster(r)
		k := 1 + r.Intn(12)
		bm := roster.Index(rolls)

		mixed, err := Mix(bm, k)
		require.NoError(t, err)
		requireSumInvariants(t, bm, mixed, k)

		uniform, err := Allocate(bm, k)
		require.NoError(t, err)
		requireSumInvariants(t, bm, uniform, k)

		for _, b := range bm.Branches {
			lo, hi := bm.Size(b), 0
			for _, g := range uniform {
				c := g.Count(b)
				lo = min(lo, c)
				hi = max(hi, c)
			}
			require.LessOrEqual(t, hi-lo, 1, "branch %s spread across %d groups", b, k)
		}
	}
}

func TestRun(t *testing.T) {
	rolls := []string{"24CS001", "24CS002", "24EE001", "24ME002", "24CS003", "24EE004", "24MM005", "24CS006"}

	t.Run("full branchwise returns branch lists only", func(t *testing.T) {
		res, err := Run(Request{Rolls: rolls, Groups: 3, Method: model.MethodFullBranchwise})

		require.NoError(t, err)
		require.NotEmpty(t, res.ID)
		require.Nil(t, res.Groups)
		require.NotNil(t, res.Branches)
		require.Equal(t, []string{"CS", "EE", "ME", "MM"}, res.Branches.Branches)
	})

	t.Run("mixed fills summary", func(t *testing.T) {
		res, err := Run(Request{Rolls: rolls, Groups: 3, Method: model.MethodBranchwiseMixed})

		require.NoError(t, err)
		require.Nil(t, res.Branches)
		require.Len(t, res.Groups, 3)
		require.Equal(t, 8, res.Summary.TotalStudents)
		require.Equal(t, 2, res.Summary.StudentsPerGroup)
		require.Equal(t, model.BranchTotal{Branch: "CS", Total: 4}, res.Summary.BranchTotals[0])
	})

	t.Run("uniform", func(t *testing.T) {
		res, err := Run(Request{Rolls: rolls, Groups: 2, Method: model.MethodBranchwiseUniform})

		require.NoError(t, err)
		require.Equal(t, 2, res.Groups[0].Count("CS"))
		require.Equal(t, 2, res.Groups[1].Count("CS"))
		require.Equal(t, 1, res.Groups[0].Count("MM"))
		require.Zero(t, res.Groups[1].Count("MM"))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := Run(Request{Groups: 2, Method: model.MethodBranchwiseMixed})
		require.ErrorIs(t, err, ErrEmptyRoster)

		_, err = Run(Request{Rolls: rolls, Groups: 0, Method: model.MethodBranchwiseMixed})
		require.ErrorIs(t, err, ErrInvalidGroupCount)

		_, err = Run(Request{Rolls: rolls, Groups: 1, Method: "random"})
		require.Error(t, err)
	})
}
