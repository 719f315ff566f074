package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/storage"
)

func TestStore_WritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewLocalStore(dir, "http://localhost:8080/")

	url, err := store.Store(context.Background(), "reports/transactions_20240315.xlsx", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/storage/reports/transactions_20240315.xlsx", url)

	content, err := os.ReadFile(filepath.Join(dir, "reports", "transactions_20240315.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), content)
}

func TestStore_RejectsPathEscape(t *testing.T) {
	store := storage.NewLocalStore(t.TempDir(), "http://localhost:8080")

	_, err := store.Store(context.Background(), "../outside.txt", []byte("x"))
	require.Error(t, err)

	_, err = store.Store(context.Background(), "reports/../../outside.txt", []byte("x"))
	require.Error(t, err)

	_, err = store.Store(context.Background(), "/etc/passwd", []byte("x"))
	require.Error(t, err)
}
