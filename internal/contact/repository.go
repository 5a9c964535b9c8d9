package contact

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"marketflow-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID int) ([]*Contact, error)
	GetByIDAndUser(ctx context.Context, id, userID int) (*Contact, error)
	Create(ctx context.Context, input CreateContactInput) (*Contact, error)
	Update(ctx context.Context, input UpdateContactInput) (bool, error)
	DeleteByIDs(ctx context.Context, userID int, ids []int) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(ctx context.Context, userID int) ([]*Contact, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Contact"),
		zap.String("method", "GetByUserID"),
		zap.Int("user_id", userID),
	)

	const q = `
		SELECT id, user_id, city, street, house, structure, building, apartment, phone
		FROM contacts
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	contacts := []*Contact{}

	for rows.Next() {
		var c Contact
		if err := rows.Scan(
			&c.ID, &c.UserID,
			&c.City, &c.Street, &c.House,
			&c.Structure, &c.Building, &c.Apartment, &c.Phone,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		contacts = append(contacts, &c)
	}

	return contacts, rows.Err()
}

func (r *repository) GetByIDAndUser(ctx context.Context, id, userID int) (*Contact, error) {
	const q = `
		SELECT id, user_id, city, street, house, structure, building, apartment, phone
		FROM contacts
		WHERE id = $1 AND user_id = $2
	`

	var c Contact
	err := r.db.QueryRowContext(ctx, q, id, userID).Scan(
		&c.ID, &c.UserID,
		&c.City, &c.Street, &c.House,
		&c.Structure, &c.Building, &c.Apartment, &c.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, input CreateContactInput) (*Contact, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Contact"),
		zap.String("method", "Create"),
		zap.Int("user_id", input.UserID),
	)

	const q = `
		INSERT INTO contacts (user_id, city, street, house, structure, building, apartment, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, city, street, house, structure, building, apartment, phone
	`

	var c Contact
	err := r.db.QueryRowContext(ctx, q,
		input.UserID, input.City, input.Street, input.House,
		input.Structure, input.Building, input.Apartment, input.Phone,
	).Scan(
		&c.ID, &c.UserID,
		&c.City, &c.Street, &c.House,
		&c.Structure, &c.Building, &c.Apartment, &c.Phone,
	)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return nil, err
	}

	log.Info("contact created", zap.Int("contact_id", c.ID))
	return &c, nil
}

func (r *repository) Update(ctx context.Context, input UpdateContactInput) (bool, error) {
	set := []string{}
	args := []any{}

	add := func(column string, value *string) {
		if value != nil {
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
			args = append(args, *value)
		}
	}

	add("city", input.City)
	add("street", input.Street)
	add("house", input.House)
	add("structure", input.Structure)
	add("building", input.Building)
	add("apartment", input.Apartment)
	add("phone", input.Phone)

	if len(set) == 0 {
		return false, nil
	}

	args = append(args, input.ContactID, input.UserID)
	query := fmt.Sprintf(
		"UPDATE contacts SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) DeleteByIDs(ctx context.Context, userID int, ids []int) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM contacts
		WHERE user_id = $1 AND id = ANY($2)
	`, userID, pq.Array(ids))
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
