package pg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/integration/database/pg"
)

func TestConnectValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty connection string", func(t *testing.T) {
		_, err := pg.Connect(ctx, pg.Config{})
		assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)
	})

	t.Run("malformed connection string", func(t *testing.T) {
		_, err := pg.Connect(ctx, pg.Config{ConnectionString: "://not-a-url"})
		assert.ErrorIs(t, err, pg.ErrFailedToParseConnStr)
	})
}
