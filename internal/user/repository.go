package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"marketflow-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params RegisterParams, hashedPassword string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	Update(ctx context.Context, params UpdateParams) error
	SaveConfirmToken(ctx context.Context, userID int, key string) error
	Activate(ctx context.Context, email, key string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params RegisterParams, hashedPassword string) (User, error) {
	log := logger.FromCtx(ctx)

	role := params.Type
	if role == "" {
		role = string(RoleBuyer)
	}

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (first_name, last_name, email, password, company, position, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, first_name, last_name, email, password, company, position, type, is_active
	`,
		params.FirstName, params.LastName, params.Email, hashedPassword,
		params.Company, params.Position, role,
	).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.Company, &u.Position, &u.Type, &u.IsActive,
	)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password, company, position, type, is_active
		FROM users
		WHERE email = $1
	`, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.Company, &u.Position, &u.Type, &u.IsActive,
	)
	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, password, company, position, type, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password,
		&u.Company, &u.Position, &u.Type, &u.IsActive,
	)
	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) Update(ctx context.Context, params UpdateParams) error {
	set := []string{}
	args := []any{}

	add := func(column string, value *string) {
		if value != nil {
			set = append(set, fmt.Sprintf("%s = $%d", column, len(args)+1))
			args = append(args, *value)
		}
	}

	add("first_name", params.FirstName)
	add("last_name", params.LastName)
	add("email", params.Email)
	add("password", params.Password)
	add("company", params.Company)
	add("position", params.Position)

	if len(set) == 0 {
		return nil
	}

	args = append(args, params.UserID)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args),
	)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) SaveConfirmToken(ctx context.Context, userID int, key string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO confirm_tokens (user_id, key)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET key = EXCLUDED.key, created_at = NOW()
	`, userID, key)
	return err
}

// Activate flips is_active when email+key match a stored token and
// burns the token. Returns false when nothing matched.
func (r *repository) Activate(ctx context.Context, email, key string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users u
		SET is_active = true
		FROM confirm_tokens t
		WHERE t.user_id = u.id AND u.email = $1 AND t.key = $2
	`, email, key)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx, `
		DELETE FROM confirm_tokens t
		USING users u
		WHERE t.user_id = u.id AND u.email = $1
	`, email)
	return true, err
}
