// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	for _, schema := range []Schema{Vault, Gateway} {
		t.Run(schema.dir, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			// no expectations: goose's first query fails
			err = Migrate(db, schema)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "migration error")
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, Vault)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestEmbeddedSchemas(t *testing.T) {
	for _, dir := range []string{"vault", "gateway"} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		require.NoError(t, err)
		assert.NotEmpty(t, files, dir)
	}
}
