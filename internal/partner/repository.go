package partner

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ImportPriceList(ctx context.Context, userID int, pl *PriceList) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ImportPriceList replaces the shop's catalog in one transaction. The
// shop upsert takes the row lock first, so two imports for the same
// shop serialize and readers never see a half-written price list.
func (r *repository) ImportPriceList(ctx context.Context, userID int, pl *PriceList) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Partner"),
		zap.String("method", "ImportPriceList"),
		zap.Int("user_id", userID),
		zap.String("shop", pl.Shop),
	)

	start := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var shopID, shopOwner int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO shops (name, user_id)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, user_id
	`, pl.Shop, userID).Scan(&shopID, &shopOwner)
	if err != nil {
		log.Error("shop upsert failed", zap.Error(err))
		return err
	}
	if shopOwner != userID {
		return ErrShopTaken
	}

	categoryIDs := map[int]bool{}
	for _, c := range pl.Categories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		`, c.ID, c.Name); err != nil {
			log.Error("category upsert failed", zap.Int("category_id", c.ID), zap.Error(err))
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO category_shops (category_id, shop_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, c.ID, shopID); err != nil {
			return err
		}

		categoryIDs[c.ID] = true
	}

	// Old listings go away wholesale; product_parameters cascade.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM product_infos WHERE shop_id = $1
	`, shopID); err != nil {
		log.Error("failed to clear old listings", zap.Error(err))
		return err
	}

	for _, g := range pl.Goods {
		if !categoryIDs[g.Category] {
			return fmt.Errorf("%w: good %d, category %d", ErrUnknownGoodCat, g.ID, g.Category)
		}

		var productID int
		err = tx.QueryRowContext(ctx, `
			INSERT INTO products (name, category_id)
			VALUES ($1, $2)
			ON CONFLICT (name, category_id) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, g.Name, g.Category).Scan(&productID)
		if err != nil {
			log.Error("product upsert failed", zap.String("name", g.Name), zap.Error(err))
			return err
		}

		var infoID int
		err = tx.QueryRowContext(ctx, `
			INSERT INTO product_infos
				(product_id, shop_id, external_id, model, price, price_rrc, quantity)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, productID, shopID, g.ID, g.Model, g.Price, g.PriceRRC, g.Quantity).Scan(&infoID)
		if err != nil {
			log.Error("listing insert failed", zap.Int("external_id", g.ID), zap.Error(err))
			return err
		}

		for name, value := range g.Parameters {
			var paramID int
			err = tx.QueryRowContext(ctx, `
				INSERT INTO parameters (name)
				VALUES ($1)
				ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				RETURNING id
			`, name).Scan(&paramID)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO product_parameters (product_info_id, parameter_id, value)
				VALUES ($1, $2, $3)
			`, infoID, paramID, fmt.Sprint(value)); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", zap.Error(err))
		return err
	}

	log.Info("price list imported",
		zap.Int("shop_id", shopID),
		zap.Int("goods", len(pl.Goods)),
		zap.Duration("duration", time.Since(start)),
	)

	return nil
}
