package order

import (
	"context"
	"database/sql"
	"time"

	"marketflow-be/internal/contact"
	"marketflow-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	PlaceTx(ctx context.Context, params PlaceParams) error
	GetOrders(ctx context.Context, userID int) ([]*Order, error)
	GetPartnerOrders(ctx context.Context, shopUserID int) ([]*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// PlaceTx flips the basket to `new` and attaches the contact inside a
// single transaction. Either both writes land or neither does.
func (r *repository) PlaceTx(ctx context.Context, params PlaceParams) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "PlaceTx"),
		zap.Int("user_id", params.UserID),
		zap.Int("order_id", params.BasketID),
		zap.Int("contact_id", params.ContactID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var contactOwner int
	err = tx.QueryRowContext(ctx, `
		SELECT user_id FROM contacts WHERE id = $1
	`, params.ContactID).Scan(&contactOwner)
	if err == sql.ErrNoRows || (err == nil && contactOwner != params.UserID) {
		return ErrContactNotOwned
	}
	if err != nil {
		log.Error("contact lookup failed", zap.Error(err))
		return err
	}

	var itemCount int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM order_items WHERE order_id = $1
	`, params.BasketID).Scan(&itemCount)
	if err != nil {
		log.Error("item count failed", zap.Error(err))
		return err
	}
	if itemCount == 0 {
		return ErrOrderEmpty
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, contact_id = $2, created_at = NOW()
		WHERE id = $3 AND user_id = $4 AND status = $5
	`, StatusNew, params.ContactID, params.BasketID, params.UserID, StatusBasket)
	if err != nil {
		log.Error("status transition failed", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return err
	}

	log.Info("order placed")
	return nil
}

func (r *repository) GetOrders(ctx context.Context, userID int) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "GetOrders"),
		zap.Int("user_id", userID),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			o.id, o.user_id, o.status, o.created_at,
			c.id, c.user_id, c.city, c.street, c.house,
			c.structure, c.building, c.apartment, c.phone
		FROM orders o
		LEFT JOIN contacts c ON o.contact_id = c.id
		WHERE o.user_id = $1 AND o.status <> $2
		ORDER BY o.created_at DESC
	`, userID, StatusBasket)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		log.Error("scan failed", zap.Error(err))
		return nil, err
	}

	if err := r.attachItems(ctx, orders, nil); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("orders", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)

	return orders, nil
}

// GetPartnerOrders returns placed orders containing at least one line
// from the shop owned by shopUserID; nested items are limited to that
// shop's lines.
func (r *repository) GetPartnerOrders(ctx context.Context, shopUserID int) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "GetPartnerOrders"),
		zap.Int("shop_user_id", shopUserID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT
			o.id, o.user_id, o.status, o.created_at,
			c.id, c.user_id, c.city, c.street, c.house,
			c.structure, c.building, c.apartment, c.phone
		FROM orders o
		LEFT JOIN contacts c ON o.contact_id = c.id
		JOIN order_items oi ON oi.order_id = o.id
		JOIN product_infos pi ON oi.product_info_id = pi.id
		JOIN shops s ON pi.shop_id = s.id
		WHERE s.user_id = $1 AND o.status <> $2
		ORDER BY o.created_at DESC
	`, shopUserID, StatusBasket)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		log.Error("scan failed", zap.Error(err))
		return nil, err
	}

	if err := r.attachItems(ctx, orders, &shopUserID); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrders(rows *sql.Rows) ([]*Order, error) {
	orders := []*Order{}

	for rows.Next() {
		var o Order
		var cID, cUserID sql.NullInt64
		var city, street, house, structure, building, apartment, phone sql.NullString

		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Status, &o.CreatedAt,
			&cID, &cUserID, &city, &street, &house,
			&structure, &building, &apartment, &phone,
		); err != nil {
			return nil, err
		}

		if cID.Valid {
			o.Contact = &contact.Contact{
				ID:        int(cID.Int64),
				UserID:    int(cUserID.Int64),
				City:      city.String,
				Street:    street.String,
				House:     house.String,
				Structure: structure.String,
				Building:  building.String,
				Apartment: apartment.String,
				Phone:     phone.String,
			}
		}

		o.Items = []*Item{}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}

func (r *repository) attachItems(ctx context.Context, orders []*Order, shopUserID *int) error {
	if len(orders) == 0 {
		return nil
	}

	byID := map[int]*Order{}
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query := `
		SELECT
			oi.order_id, oi.id, oi.quantity,
			pi.id, pi.price, pi.shop_id,
			p.name
		FROM order_items oi
		JOIN product_infos pi ON oi.product_info_id = pi.id
		JOIN products p ON pi.product_id = p.id
	`
	args := []any{pq.Array(ids)}
	where := " WHERE oi.order_id = ANY($1)"

	if shopUserID != nil {
		query += " JOIN shops s ON pi.shop_id = s.id"
		where += " AND s.user_id = $2"
		args = append(args, *shopUserID)
	}

	rows, err := r.db.QueryContext(ctx, query+where+" ORDER BY oi.id ASC", args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int
		var item Item
		if err := rows.Scan(
			&orderID, &item.ID, &item.Quantity,
			&item.ProductInfoID, &item.Price, &item.ShopID,
			&item.ProductName,
		); err != nil {
			return err
		}

		item.Sum = item.Price * float64(item.Quantity)
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, &item)
			o.Total += item.Sum
		}
	}

	return rows.Err()
}
