package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

func TestCategoryIDsUnmarshal_Array(t *testing.T) {
	var ids domain.CategoryIDs
	err := json.Unmarshal([]byte(`["cat-1", "cat-2", " cat-3 "]`), &ids)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryIDs{"cat-1", "cat-2", "cat-3"}, ids)
}

func TestCategoryIDsUnmarshal_CommaString(t *testing.T) {
	var ids domain.CategoryIDs
	err := json.Unmarshal([]byte(`"cat-1,cat-2, cat-3"`), &ids)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryIDs{"cat-1", "cat-2", "cat-3"}, ids)
}

func TestCategoryIDsUnmarshal_DropsEmptyParts(t *testing.T) {
	var ids domain.CategoryIDs
	err := json.Unmarshal([]byte(`"cat-1,,  ,cat-2,"`), &ids)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryIDs{"cat-1", "cat-2"}, ids)
}

func TestCategoryIDsUnmarshal_RejectsOtherTypes(t *testing.T) {
	var ids domain.CategoryIDs
	err := json.Unmarshal([]byte(`42`), &ids)
	assert.Error(t, err)
}

func TestParseCategoryIDs(t *testing.T) {
	assert.Equal(t, domain.CategoryIDs{"a", "b"}, domain.ParseCategoryIDs("a, b"))
	assert.Empty(t, domain.ParseCategoryIDs(""))
	assert.Empty(t, domain.ParseCategoryIDs(" , ,"))
}

func TestReportFilterToTransactionFilter(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	filter := domain.ReportFilter{
		Type:      domain.TransactionTypeExpense,
		StartDate: &start,
		EndDate:   &end,
	}.ToTransactionFilter()

	assert.Equal(t, domain.TransactionTypeExpense, filter.Type)
	assert.Equal(t, &start, filter.DateFrom)
	assert.Equal(t, &end, filter.DateTo)
	// Report queries run unpaginated over the full range.
	assert.Zero(t, filter.Page)
}

func TestNotificationIsRead(t *testing.T) {
	n := domain.Notification{}
	assert.False(t, n.IsRead())

	now := time.Now()
	n.ReadAt = &now
	assert.True(t, n.IsRead())
}
