// package models defines the data model for performance history
package models

import (
	"fmt"
	"time"
)

// Model defines the base interface for all persistent models.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// PerformanceSource identifies which surface recorded a performance.
const (
	SourceCLI = "cli"
	SourceTUI = "tui"
)

// Performance records one sung range of the song.
type Performance struct {
	Identifier string    `json:"id"`
	Sequence   int       `json:"sequence"` // human-readable ordering, assigned on insert
	StartVerse uint      `json:"start_verse"`
	EndVerse   uint      `json:"end_verse"`
	VerseCount uint      `json:"verse_count"`
	Source     string    `json:"source"`
	SungAt     time.Time `json:"sung_at"`
	Created    time.Time `json:"created_at"`
	Updated    time.Time `json:"updated_at"`
}

var _ Model = &Performance{}

func (p *Performance) ID() string           { return p.Identifier }
func (p *Performance) CreatedAt() time.Time { return p.Created }
func (p *Performance) UpdatedAt() time.Time { return p.Updated }

// Validate checks the range invariant the rest of the application maintains:
// both bounds in [0, 99] with start at or above end.
func (p *Performance) Validate() error {
	if p.Identifier == "" {
		return fmt.Errorf("performance missing id")
	}
	if p.StartVerse > 99 || p.EndVerse > 99 {
		return fmt.Errorf("verse out of range: %d..%d", p.StartVerse, p.EndVerse)
	}
	if p.EndVerse > p.StartVerse {
		return fmt.Errorf("inverted range: %d..%d", p.StartVerse, p.EndVerse)
	}
	if p.Source != SourceCLI && p.Source != SourceTUI {
		return fmt.Errorf("unknown performance source: %q", p.Source)
	}
	return nil
}
