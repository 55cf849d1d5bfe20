package cache

import (
	"context"
	"fmt"

	"github.com/lumiseven/jsonrepair-go/internal/canon"
	"github.com/lumiseven/jsonrepair-go/internal/repair"
)

// Put runs Repair on input, logs the outcome keyed by the input's
// content hash, and returns the record it wrote. A second Put for an
// input already seen overwrites the prior record's output rather than
// growing the log, since only the latest outcome for a given input is
// useful for "cache verify".
//
// The input is hashed as raw text, not canonicalized JSON: most inputs
// worth repairing are not valid JSON yet, so canon.Canonicalize would
// reject them before the cache ever got a chance to remember them.
func (s *Store) Put(ctx context.Context, input string) (Record, error) {
	hash := canon.Hash([]byte(input))
	key := canon.CacheKey(hash)

	output, repairErr := repair.Repair(input)

	rec := Record{
		ID:           key.String(),
		InputHash:    hash,
		InputPreview: preview(input),
		Seq:          s.nextSeq(),
	}

	if repairErr != nil {
		rec.Ok = false
		if code, ok := repair.CodeOf(repairErr); ok {
			rec.ErrorCode = string(code)
		}
		rec.ErrorMessage = repairErr.Error()
		if re, ok := repairErr.(*repair.Error); ok {
			rec.ErrorPosition = re.Position
		}
	} else {
		rec.Ok = true
		rec.Output = output
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO repairs
		(id, input_hash, input_preview, output, error_code, error_message, error_position, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(input_hash) DO UPDATE SET
			output = excluded.output,
			error_code = excluded.error_code,
			error_message = excluded.error_message,
			error_position = excluded.error_position,
			seq = excluded.seq
	`,
		rec.ID, rec.InputHash, rec.InputPreview,
		nullableString(rec.Output), nullableString(rec.ErrorCode), nullableString(rec.ErrorMessage),
		nullableInt(rec.ErrorPosition, rec.Ok), rec.Seq,
	)
	if err != nil {
		return Record{}, fmt.Errorf("cache: put: %w", err)
	}

	return rec, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(n int, ok bool) any {
	if ok {
		return nil
	}
	return n
}
