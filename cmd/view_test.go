package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchRowsReturnsFetchedRows(t *testing.T) {
	rows, err := fetchRows(context.Background(), func(_ context.Context) ([]string, error) {
		return []string{"FLT-001", "GSK-014"}, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"FLT-001", "GSK-014"}, rows)
}

func TestFetchRowsPropagatesFetchError(t *testing.T) {
	rows, err := fetchRows(context.Background(), func(_ context.Context) ([]string, error) {
		return nil, errors.New("connection refused")
	})

	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, rows)
}
