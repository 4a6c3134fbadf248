package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Fizik0/MarketUnitCalc/internal/entity"
)

// ErrNotFound is returned when no calculation exists for an ID.
var ErrNotFound = errors.New("calculation not found")

// CalculationRepository handles the interactions with the saved calculations
// database. The input record and completed steps are stored as JSON columns
// so the save format round-trips verbatim.
type CalculationRepository struct {
	db *sql.DB
}

// NewCalculationRepository creates a new instance of CalculationRepository.
func NewCalculationRepository(db *sql.DB) *CalculationRepository {
	return &CalculationRepository{db}
}

// CreateCalculation stores a new saved calculation.
func (r *CalculationRepository) CreateCalculation(ctx context.Context, calc *entity.Calculation) error {
	record, err := json.Marshal(calc.Record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}
	steps, err := json.Marshal(calc.CompletedSteps)
	if err != nil {
		return fmt.Errorf("could not marshal completed steps: %w", err)
	}

	query := `INSERT INTO calculations (id, name, record, saved_at, version, current_step, completed_steps)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, calc.ID, calc.Name, record, calc.SavedAt, calc.Version, calc.CurrentStep, steps)
	return err
}

// GetCalculation fetches a saved calculation by ID.
func (r *CalculationRepository) GetCalculation(ctx context.Context, id string) (*entity.Calculation, error) {
	query := `SELECT id, name, record, saved_at, version, current_step, completed_steps
		FROM calculations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var calc entity.Calculation
	var record, steps []byte
	err := row.Scan(&calc.ID, &calc.Name, &record, &calc.SavedAt, &calc.Version, &calc.CurrentStep, &steps)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(record, &calc.Record); err != nil {
		return nil, fmt.Errorf("could not unmarshal record: %w", err)
	}
	if err := json.Unmarshal(steps, &calc.CompletedSteps); err != nil {
		return nil, fmt.Errorf("could not unmarshal completed steps: %w", err)
	}
	return &calc, nil
}

// ListCalculations returns saved calculations, newest first.
func (r *CalculationRepository) ListCalculations(ctx context.Context) ([]entity.Calculation, error) {
	query := `SELECT id, name, record, saved_at, version, current_step, completed_steps
		FROM calculations ORDER BY saved_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []entity.Calculation
	for rows.Next() {
		var calc entity.Calculation
		var record, steps []byte
		if err := rows.Scan(&calc.ID, &calc.Name, &record, &calc.SavedAt, &calc.Version, &calc.CurrentStep, &steps); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(record, &calc.Record); err != nil {
			return nil, fmt.Errorf("could not unmarshal record: %w", err)
		}
		if err := json.Unmarshal(steps, &calc.CompletedSteps); err != nil {
			return nil, fmt.Errorf("could not unmarshal completed steps: %w", err)
		}
		calcs = append(calcs, calc)
	}
	return calcs, rows.Err()
}

// UpdateCalculation overwrites an existing saved calculation.
func (r *CalculationRepository) UpdateCalculation(ctx context.Context, calc *entity.Calculation) error {
	record, err := json.Marshal(calc.Record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}
	steps, err := json.Marshal(calc.CompletedSteps)
	if err != nil {
		return fmt.Errorf("could not marshal completed steps: %w", err)
	}

	query := `UPDATE calculations SET name = ?, record = ?, saved_at = ?, version = ?, current_step = ?, completed_steps = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, calc.Name, record, calc.SavedAt, calc.Version, calc.CurrentStep, steps, calc.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCalculation removes a saved calculation.
func (r *CalculationRepository) DeleteCalculation(ctx context.Context, id string) error {
	query := `DELETE FROM calculations WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
