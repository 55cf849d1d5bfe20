package cache

import (
	"context"
	"fmt"

	"github.com/lumiseven/jsonrepair-go/internal/repair"
)

// Mismatch describes a logged record whose stored outcome no longer
// matches what Repair produces today.
type Mismatch struct {
	Record   Record
	NowOk    bool
	NowValue string // repaired output, or the new error message
}

// Verify re-runs Repair against the preview stored for every logged
// record and reports any whose outcome changed. Since a record's
// preview may be truncated, Verify can only catch drift that is
// visible within the stored preview; it errs on the side of a cheap
// operational sanity check, not a byte-for-byte replay guarantee.
func Verify(ctx context.Context, s *Store) ([]Mismatch, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cache: verify: %w", err)
	}

	var mismatches []Mismatch
	for _, rec := range records {
		output, err := repair.Repair(rec.InputPreview)

		nowOk := err == nil
		if nowOk != rec.Ok {
			mismatches = append(mismatches, mismatchFor(rec, nowOk, output, err))
			continue
		}
		if nowOk && output != rec.Output {
			mismatches = append(mismatches, mismatchFor(rec, nowOk, output, err))
		}
	}

	return mismatches, nil
}

func mismatchFor(rec Record, nowOk bool, output string, err error) Mismatch {
	if nowOk {
		return Mismatch{Record: rec, NowOk: true, NowValue: output}
	}
	return Mismatch{Record: rec, NowOk: false, NowValue: err.Error()}
}
