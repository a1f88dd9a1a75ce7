package postgres

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgresBookStore(t *testing.T) {
	t.Run("nil db panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPostgresBookStore(nil, nil)
		})
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		s := NewPostgresBookStore(&sql.DB{}, nil)
		assert.NotNil(t, s.logger)
	})
}

func TestBookStoreWithTx(t *testing.T) {
	original := NewPostgresBookStore(&sql.DB{}, nil)

	txStore := original.WithTx(&sql.Tx{})

	impl, ok := txStore.(*PostgresBookStore)
	assert.True(t, ok)
	assert.NotSame(t, original, impl)
}
