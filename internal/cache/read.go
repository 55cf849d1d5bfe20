package cache

import (
	"context"
	"database/sql"
	"fmt"
)

// List returns every logged repair call, ordered oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_hash, input_preview, output, error_code, error_message, error_position, seq, created_at
		FROM repairs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("cache: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("cache: list: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cache: list: %w", err)
	}
	return out, nil
}

// Get returns the logged record for the given input hash, if any.
func (s *Store) Get(ctx context.Context, inputHash string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, input_hash, input_preview, output, error_code, error_message, error_position, seq, created_at
		FROM repairs
		WHERE input_hash = ?
	`, inputHash)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("cache: get: %w", err)
	}
	return rec, true, nil
}

// Clear removes every logged record and resets the sequence counter.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM repairs"); err != nil {
		return fmt.Errorf("cache: clear: %w", err)
	}
	s.mu.Lock()
	s.seq = 0
	s.mu.Unlock()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var output, errorCode, errorMessage sql.NullString
	var errorPosition sql.NullInt64

	err := row.Scan(
		&rec.ID, &rec.InputHash, &rec.InputPreview, &output,
		&errorCode, &errorMessage, &errorPosition, &rec.Seq, &rec.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	rec.Output = output.String
	rec.ErrorCode = errorCode.String
	rec.ErrorMessage = errorMessage.String
	rec.ErrorPosition = int(errorPosition.Int64)
	rec.Ok = !errorCode.Valid

	return rec, nil
}
