package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordActivation stores a new activation of label at index.
func (db *DB) RecordActivation(label string, index int, at time.Time) (*Activation, error) {
	a := &Activation{
		ID:          uuid.NewString(),
		Label:       label,
		Index:       index,
		ActivatedAt: at.UTC(),
	}
	_, err := db.Exec(`
		INSERT INTO activations (id, label, item_index, activated_at)
		VALUES (?, ?, ?, ?)`,
		a.ID, a.Label, a.Index, a.ActivatedAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("record activation: %w", err)
	}
	return a, nil
}

// RecentActivations returns the newest activations first.
func (db *DB) RecentActivations(limit int) ([]Activation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT id, label, item_index, activated_at
		FROM activations
		ORDER BY activated_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Activation
	for rows.Next() {
		var a Activation
		var ms int64
		if err := rows.Scan(&a.ID, &a.Label, &a.Index, &ms); err != nil {
			return nil, err
		}
		a.ActivatedAt = time.UnixMilli(ms).UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

// ActivationStats returns per-label counts, most activated first.
func (db *DB) ActivationStats() ([]LabelStats, error) {
	rows, err := db.Query(`
		SELECT label, COUNT(*) AS n, MAX(activated_at)
		FROM activations
		GROUP BY label
		ORDER BY n DESC, label ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []LabelStats
	for rows.Next() {
		var s LabelStats
		var ms int64
		if err := rows.Scan(&s.Label, &s.Count, &ms); err != nil {
			return nil, err
		}
		s.Last = time.UnixMilli(ms).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}
