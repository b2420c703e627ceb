package db_test

import (
	"testing"

	"github.com/2beens/gymanalytics/internal/db"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"postgres://postgres@localhost:5432/gymstats?sslmode=disable",
		db.DSN("localhost", "5432", "gymstats"),
	)
}
