package category

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Defaults", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM categories c")).
			WithArgs(int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow(224, "Смартфоны").
				AddRow(15, "Аксессуары"))

		categories, err := repo.GetCategories(context.Background(), nil, nil)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, 224, categories[0].ID)
		assert.Equal(t, "Смартфоны", categories[0].Name)
	})

	t.Run("SecondPage", func(t *testing.T) {
		limit := int32(10)
		page := int32(2)

		mock.ExpectQuery(regexp.QuoteMeta("FROM categories c")).
			WithArgs(limit, int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		categories, err := repo.GetCategories(context.Background(), &limit, &page)
		require.NoError(t, err)
		assert.Empty(t, categories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
