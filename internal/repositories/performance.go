package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/bottles/internal/models"
	"github.com/desertthunder/bottles/internal/shared"
)

// PerformanceRepository implements models.Repository[*models.Performance].
type PerformanceRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.Performance] = &PerformanceRepository{}

// NewPerformanceRepository creates a new PerformanceRepository with the given database connection
func NewPerformanceRepository(db *sql.DB) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// Create inserts a new performance with generated ID and sequence. Zero
// timestamps are filled with the current time.
func (r *PerformanceRepository) Create(p *models.Performance) error {
	sequence, err := NextSequence(r.db, "performances")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	p.Identifier = shared.GenerateID()
	p.Sequence = sequence

	now := time.Now()
	if p.SungAt.IsZero() {
		p.SungAt = now
	}
	p.Created = now
	p.Updated = now

	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO performances (id, sequence, start_verse, end_verse, verse_count, source, sung_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		p.Identifier,
		p.Sequence,
		p.StartVerse,
		p.EndVerse,
		p.VerseCount,
		p.Source,
		p.SungAt,
		p.Created,
		p.Updated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert performance: %w", err)
	}

	return nil
}

// Get retrieves a performance by ID
func (r *PerformanceRepository) Get(id string) (*models.Performance, error) {
	query := `
		SELECT id, sequence, start_verse, end_verse, verse_count, source, sung_at, created_at, updated_at
		FROM performances
		WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing performance in the database
func (r *PerformanceRepository) Update(p *models.Performance) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	p.Updated = now

	query := `
		UPDATE performances
		SET start_verse = ?, end_verse = ?, verse_count = ?, source = ?, sung_at = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		p.StartVerse,
		p.EndVerse,
		p.VerseCount,
		p.Source,
		p.SungAt,
		now,
		p.Identifier,
	)
	if err != nil {
		return fmt.Errorf("failed to update performance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPerformanceNotFound, p.Identifier)
	}

	return nil
}

// Delete removes a performance from the database by its ID
func (r *PerformanceRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM performances WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete performance: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrPerformanceNotFound, id)
	}

	return nil
}

// List retrieves performances matching the given criteria, newest first.
// Supported criteria: "source" (string), "limit" (int).
func (r *PerformanceRepository) List(criteria map[string]any) ([]*models.Performance, error) {
	query := `
		SELECT id, sequence, start_verse, end_verse, verse_count, source, sung_at, created_at, updated_at
		FROM performances
	`
	var args []any

	if source, ok := criteria["source"].(string); ok && source != "" {
		query += " WHERE source = ?"
		args = append(args, source)
	}

	query += " ORDER BY sung_at DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performances: %w", err)
	}
	defer rows.Close()

	var performances []*models.Performance
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		performances = append(performances, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return performances, nil
}

// Clear removes all performances and resets the sequence counter.
func (r *PerformanceRepository) Clear() (int64, error) {
	result, err := r.db.Exec("DELETE FROM performances")
	if err != nil {
		return 0, fmt.Errorf("failed to clear performances: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	if _, err := r.db.Exec("UPDATE performances_sequence SET value = 0 WHERE id = 1"); err != nil {
		return removed, fmt.Errorf("failed to reset sequence: %w", err)
	}

	return removed, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *PerformanceRepository) scanOne(row *sql.Row) (*models.Performance, error) {
	p, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, shared.ErrPerformanceNotFound
	}
	return p, err
}

func (r *PerformanceRepository) scanRow(row scannable) (*models.Performance, error) {
	var p models.Performance
	err := row.Scan(
		&p.Identifier,
		&p.Sequence,
		&p.StartVerse,
		&p.EndVerse,
		&p.VerseCount,
		&p.Source,
		&p.SungAt,
		&p.Created,
		&p.Updated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan performance: %w", err)
	}
	return &p, nil
}
