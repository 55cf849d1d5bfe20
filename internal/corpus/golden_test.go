package corpus

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/lumiseven/jsonrepair-go/internal/repair"
)

// TestScenariosMatchGolden pins Repair's output for every fixed
// scenario to testdata/golden/<name>.golden. Run with -update to
// regenerate a fixture after an intentional behavior change.
func TestScenariosMatchGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, sc := range Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			got, err := repair.Repair(sc.Input)
			require.NoError(t, err)
			g.Assert(t, sc.Name, []byte(got))
		})
	}
}
