package shop

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, user_id, state")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "state"}).
				AddRow(1, "Связной", 7, true).
				AddRow(2, "Евросеть", 8, false))

		shops, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, shops, 2)
		assert.Equal(t, "Связной", shops[0].Name)
		assert.False(t, shops[1].State)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, user_id, state")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "state"}))

		shops, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, shops)
		assert.NotNil(t, shops)
	})
}

func TestRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shops")).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "state"}).
				AddRow(1, "Связной", 7, true))

		s, err := repo.GetByUserID(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, "Связной", s.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shops")).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "state"}))

		s, err := repo.GetByUserID(context.Background(), 9)
		require.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestRepository_SetState(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE shops")).
			WithArgs(false, 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.SetState(context.Background(), 7, false)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NoShop", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE shops")).
			WithArgs(true, 9).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.SetState(context.Background(), 9, true)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
