package corpus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiseven/jsonrepair-go/internal/repair"
)

// TestRepairedOutputIsStrictJSON checks that every scenario's repaired
// output parses under the standard library decoder, since Repair's
// entire contract is producing something strict JSON tooling accepts.
func TestRepairedOutputIsStrictJSON(t *testing.T) {
	for _, sc := range Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			got, err := repair.Repair(sc.Input)
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(got)), "output is not valid JSON: %q", got)
		})
	}
}

// TestRepairIsIdempotent checks that repairing an already-repaired
// value produces the identical bytes: once a scenario is strict JSON,
// a second pass should be a no-op rather than reformatting it.
func TestRepairIsIdempotent(t *testing.T) {
	for _, sc := range Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			once, err := repair.Repair(sc.Input)
			require.NoError(t, err)

			twice, err := repair.Repair(once)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
		})
	}
}

// TestStrictJSONPassesThroughUnchanged checks that inputs that are
// already strict JSON come back byte-for-byte identical, so Repair
// never reformats input it has no reason to touch.
func TestStrictJSONPassesThroughUnchanged(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[1,2,3],"c":null,"d":true,"e":"text"}`,
		`[]`,
		`{}`,
		`"just a string"`,
		`42`,
		`-3.14`,
	}
	for _, in := range inputs {
		got, err := repair.Repair(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}
