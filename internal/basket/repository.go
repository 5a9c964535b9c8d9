package basket

import (
	"context"
	"database/sql"

	"marketflow-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const statusBasket = "basket"

type Repository interface {
	GetOrCreateOpenBasket(ctx context.Context, userID int) (int, error)
	GetLineByProductInfo(ctx context.Context, basketID, productInfoID int) (int, bool, error)
	CreateLine(ctx context.Context, basketID, productInfoID, quantity int) error
	SetLineQuantity(ctx context.Context, lineID, quantity int) error
	UpdateLineQuantity(ctx context.Context, userID, lineID, quantity int) (bool, error)
	DeleteLines(ctx context.Context, userID int, ids []int) (int, error)
	GetRows(ctx context.Context, userID int) ([]lineRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetOrCreateOpenBasket returns the id of the user's open basket,
// creating the row if none exists. The partial unique index on
// orders(user_id) WHERE status='basket' keeps this to one row even
// under concurrent requests.
func (r *repository) GetOrCreateOpenBasket(ctx context.Context, userID int) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Basket"),
		zap.String("method", "GetOrCreateOpenBasket"),
		zap.Int("user_id", userID),
	)

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, status)
		VALUES ($1, $2)
		ON CONFLICT (user_id) WHERE status = 'basket'
		DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id
	`, userID, statusBasket).Scan(&id)

	if err != nil {
		log.Error("failed to get or create basket", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *repository) GetLineByProductInfo(ctx context.Context, basketID, productInfoID int) (int, bool, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		SELECT id FROM order_items
		WHERE order_id = $1 AND product_info_id = $2
	`, basketID, productInfoID).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *repository) CreateLine(ctx context.Context, basketID, productInfoID, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Basket"),
		zap.String("method", "CreateLine"),
		zap.Int("order_id", basketID),
		zap.Int("product_info_id", productInfoID),
	)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (order_id, product_info_id, quantity)
		VALUES ($1, $2, $3)
	`, basketID, productInfoID, quantity)

	if err != nil {
		log.Error("failed to create basket line", zap.Error(err))
	}
	return err
}

func (r *repository) SetLineQuantity(ctx context.Context, lineID, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE order_items SET quantity = $1 WHERE id = $2
	`, quantity, lineID)
	return err
}

// UpdateLineQuantity touches a line only while its order is still an
// open basket owned by the user; placed orders stay frozen.
func (r *repository) UpdateLineQuantity(ctx context.Context, userID, lineID, quantity int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE order_items oi
		SET quantity = $1
		FROM orders o
		WHERE oi.id = $2
		  AND oi.order_id = o.id
		  AND o.user_id = $3
		  AND o.status = $4
	`, quantity, lineID, userID, statusBasket)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) DeleteLines(ctx context.Context, userID int, ids []int) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM order_items oi
		USING orders o
		WHERE oi.id = ANY($1)
		  AND oi.order_id = o.id
		  AND o.user_id = $2
		  AND o.status = $3
	`, pq.Array(ids), userID, statusBasket)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func (r *repository) GetRows(ctx context.Context, userID int) ([]lineRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Basket"),
		zap.String("method", "GetRows"),
		zap.Int("user_id", userID),
	)

	query := `
	SELECT
		oi.id,
		oi.order_id,
		oi.quantity,

		pi.id,
		pi.price,
		pi.shop_id,

		p.name,

		o.created_at
	FROM order_items oi
	JOIN orders o ON oi.order_id = o.id
	JOIN product_infos pi ON oi.product_info_id = pi.id
	JOIN products p ON pi.product_id = p.id
	WHERE o.user_id = $1 AND o.status = $2
	ORDER BY oi.id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, statusBasket)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []lineRow{}

	for rows.Next() {
		var row lineRow
		if err := rows.Scan(
			&row.LineID,
			&row.BasketID,
			&row.Quantity,
			&row.ProductInfoID,
			&row.Price,
			&row.ShopID,
			&row.ProductName,
			&row.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
