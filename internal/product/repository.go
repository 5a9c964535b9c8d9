package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"marketflow-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetProducts(ctx context.Context, filter Filter) ([]*ProductInfo, error)
	FilterExisting(ctx context.Context, ids []int) (map[int]bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProducts(ctx context.Context, filter Filter) ([]*ProductInfo, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Product"),
		zap.String("method", "GetProducts"),
	)

	start := time.Now()

	// ---------- where ----------
	// Listings of switched-off shops never show up.
	where := []string{"s.state = true"}
	args := []any{}

	if filter.ShopID != nil {
		log = log.With(zap.Int("filter_shop_id", *filter.ShopID))
		where = append(where, fmt.Sprintf("pi.shop_id = $%d", len(args)+1))
		args = append(args, *filter.ShopID)
	}

	if filter.CategoryID != nil {
		log = log.With(zap.Int("filter_category_id", *filter.CategoryID))
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *filter.CategoryID)
	}

	// ---------- query ----------
	query := `
	SELECT
		pi.id,
		pi.model,
		pi.external_id,
		pi.quantity,
		pi.price,
		pi.price_rrc,

		p.id,
		p.name,

		c.id,
		c.name,

		s.id,
		s.name
	FROM product_infos pi
	JOIN products p ON pi.product_id = p.id
	JOIN categories c ON p.category_id = c.id
	JOIN shops s ON pi.shop_id = s.id
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY pi.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	infos := []*ProductInfo{}
	byID := map[int]*ProductInfo{}

	for rows.Next() {
		var info ProductInfo
		if err := rows.Scan(
			&info.ID,
			&info.Model,
			&info.ExternalID,
			&info.Quantity,
			&info.Price,
			&info.PriceRRC,

			&info.ProductID,
			&info.ProductName,

			&info.CategoryID,
			&info.CategoryName,

			&info.ShopID,
			&info.ShopName,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}

		info.Parameters = []*Parameter{}
		infos = append(infos, &info)
		byID[info.ID] = &info
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	if err := r.attachParameters(ctx, byID); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(infos)),
		zap.Duration("duration", time.Since(start)),
	)

	return infos, nil
}

func (r *repository) attachParameters(ctx context.Context, byID map[int]*ProductInfo) error {
	if len(byID) == 0 {
		return nil
	}

	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT pp.product_info_id, pr.name, pp.value
		FROM product_parameters pp
		JOIN parameters pr ON pp.parameter_id = pr.id
		WHERE pp.product_info_id = ANY($1)
		ORDER BY pr.name ASC
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var infoID int
		var p Parameter
		if err := rows.Scan(&infoID, &p.Name, &p.Value); err != nil {
			return err
		}
		if info, ok := byID[infoID]; ok {
			info.Parameters = append(info.Parameters, &p)
		}
	}

	return rows.Err()
}

// FilterExisting reports which of the given product_info ids exist.
func (r *repository) FilterExisting(ctx context.Context, ids []int) (map[int]bool, error) {
	existing := map[int]bool{}
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id FROM product_infos WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = true
	}

	return existing, rows.Err()
}
