package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"re_deals/internal/domain"
	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/value"
	"re_deals/pkg/lox"
)

type DealRepository struct {
	db *sqlx.DB
}

func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Internal(err, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal(err, "failed to commit")
	}
	return nil
}

func (r *DealRepository) Create(ctx context.Context, deal entity.Deal) error {
	schema, err := fromDeal(deal)
	if err != nil {
		return domain.Internal(err, "failed to encode deal")
	}

	query := `
		INSERT INTO deals (
			id, owner_id, title, kind, status,
			purchase_price, monthly_cash_flow, cap_rate_pct, coc_return_pct,
			inputs, snapshot, created_at, updated_at
		) VALUES (
			:id, :owner_id, :title, :kind, :status,
			:purchase_price, :monthly_cash_flow, :cap_rate_pct, :coc_return_pct,
			:inputs, :snapshot, :created_at, :updated_at
		)`

	if _, err = r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.Internal(err, "failed to create deal")
	}

	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id value.DealID) (entity.Deal, error) {
	query := `SELECT * FROM deals WHERE id = $1`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, uuid.UUID(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Deal{}, domain.ErrDealNotFound
		}
		return entity.Deal{}, domain.Internal(err, "failed to get deal")
	}

	deal, err := schema.toDomain()
	if err != nil {
		return entity.Deal{}, domain.Internal(err, "failed to decode deal")
	}

	return deal, nil
}

// Update полностью перезаписывает изменяемые поля сделки.
func (r *DealRepository) Update(ctx context.Context, deal entity.Deal) error {
	schema, err := fromDeal(deal)
	if err != nil {
		return domain.Internal(err, "failed to encode deal")
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE deals SET
				title = :title,
				kind = :kind,
				status = :status,
				purchase_price = :purchase_price,
				monthly_cash_flow = :monthly_cash_flow,
				cap_rate_pct = :cap_rate_pct,
				coc_return_pct = :coc_return_pct,
				inputs = :inputs,
				snapshot = :snapshot,
				updated_at = :updated_at
			WHERE id = :id`

		res, err := tx.NamedExecContext(ctx, query, schema)
		if err != nil {
			return domain.Internal(err, "failed to update deal")
		}

		rows, _ := res.RowsAffected()
		if rows == 0 {
			return domain.ErrDealNotFound
		}
		return nil
	})
}

func (r *DealRepository) Delete(ctx context.Context, id value.DealID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, uuid.UUID(id))
	if err != nil {
		return domain.Internal(err, "failed to delete deal")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "failed to check rows")
	}

	if rows == 0 {
		return domain.ErrDealNotFound
	}

	return nil
}

func (r *DealRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]entity.Deal, error) {
	query := `
		SELECT * FROM deals
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	return r.list(ctx, query, ownerID, limit, offset)
}

// ListPublished сначала недавно обновлённые.
func (r *DealRepository) ListPublished(ctx context.Context, limit, offset int) ([]entity.Deal, error) {
	query := `
		SELECT * FROM deals
		WHERE status = 'published'
		ORDER BY updated_at DESC, id
		LIMIT $1 OFFSET $2`

	return r.list(ctx, query, limit, offset)
}

func (r *DealRepository) list(ctx context.Context, query string, args ...any) ([]entity.Deal, error) {
	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, args...); err != nil {
		return nil, domain.Internal(err, "failed to list deals")
	}

	deals, err := lox.MapErr(schemas, func(s dealSchema) (entity.Deal, error) {
		return s.toDomain()
	})
	if err != nil {
		return nil, domain.Internal(err, "failed to decode deals")
	}

	return deals, nil
}
