package shop

import (
	"context"
	"database/sql"

	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Shop, error)
	GetByUserID(ctx context.Context, userID int) (*Shop, error)
	SetState(ctx context.Context, userID int, state bool) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// List returns every shop regardless of state; a fresh import must be
// visible before the partner confirms its toggle.
func (r *repository) List(ctx context.Context) ([]*Shop, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Shop"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, user_id, state
		FROM shops
		ORDER BY id ASC
	`)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	shops := []*Shop{}
	for rows.Next() {
		var s Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.UserID, &s.State); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		shops = append(shops, &s)
	}

	return shops, rows.Err()
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*Shop, error) {
	var s Shop
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, user_id, state
		FROM shops
		WHERE user_id = $1
	`, userID).Scan(&s.ID, &s.Name, &s.UserID, &s.State)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) SetState(ctx context.Context, userID int, state bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shops
		SET state = $1
		WHERE user_id = $2
	`, state, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
