package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type partyRepo struct {
	db *sqlx.DB
}

// NewPartyRepo creates a new PostgreSQL-backed PartyRepository.
func NewPartyRepo(db *sqlx.DB) port.PartyRepository {
	return &partyRepo{db: db}
}

func (r *partyRepo) Create(ctx context.Context, party *domain.Party) error {
	now := time.Now().UTC()
	party.CreatedAt = now
	party.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parties (id, kind, name, gstin, state_of_supply, email, phone, address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		party.ID, party.Kind, party.Name, party.GSTIN, party.StateOfSupply,
		party.Email, party.Phone, party.Address, party.CreatedAt, party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("partyRepo.Create: %w", err)
	}
	return nil
}

func (r *partyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Party, error) {
	var party domain.Party
	err := r.db.GetContext(ctx, &party, "SELECT * FROM parties WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("partyRepo.GetByID: %w", err)
	}
	return &party, nil
}

func (r *partyRepo) List(ctx context.Context, kind *domain.PartyKind, offset, limit int) ([]domain.Party, int, error) {
	where := ""
	args := []interface{}{}
	if kind != nil {
		where = "WHERE kind = $1"
		args = append(args, *kind)
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM parties "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("partyRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM parties %s ORDER BY name ASC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var parties []domain.Party
	if err := r.db.SelectContext(ctx, &parties, query, args...); err != nil {
		return nil, 0, fmt.Errorf("partyRepo.List: %w", err)
	}
	return parties, total, nil
}

func (r *partyRepo) Update(ctx context.Context, party *domain.Party) error {
	party.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE parties SET
			kind = $1, name = $2, gstin = $3, state_of_supply = $4,
			email = $5, phone = $6, address = $7, updated_at = $8
		 WHERE id = $9`,
		party.Kind, party.Name, party.GSTIN, party.StateOfSupply,
		party.Email, party.Phone, party.Address, party.UpdatedAt, party.ID)
	if err != nil {
		return fmt.Errorf("partyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

func (r *partyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM parties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("partyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}
