package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/models"
)

func newTestStorage(t *testing.T) interfaces.StorageManager {
	t.Helper()

	manager, err := NewManager(common.GetLogger(), &common.BadgerConfig{
		Path: t.TempDir(),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		manager.Close()
	})
	return manager
}

func TestDocumentStorage_SaveAndGet(t *testing.T) {
	storage := newTestStorage(t).DocumentStorage()

	doc := &models.Document{
		ID:       "doc_test",
		Title:    "Test Topic",
		Category: "general",
		Keywords: []string{"test"},
		Content:  "Test content.",
		Position: 0,
	}
	require.NoError(t, storage.SaveDocument(doc))
	assert.False(t, doc.CreatedAt.IsZero())
	assert.False(t, doc.UpdatedAt.IsZero())

	got, err := storage.GetDocument("doc_test")
	require.NoError(t, err)
	assert.Equal(t, "Test Topic", got.Title)
	assert.Equal(t, []string{"test"}, got.Keywords)
}

func TestDocumentStorage_SaveRequiresID(t *testing.T) {
	storage := newTestStorage(t).DocumentStorage()

	err := storage.SaveDocument(&models.Document{Title: "No ID"})
	assert.Error(t, err)
}

func TestDocumentStorage_GetMissing(t *testing.T) {
	storage := newTestStorage(t).DocumentStorage()

	_, err := storage.GetDocument("doc_missing")
	assert.Error(t, err)
}

func TestDocumentStorage_ListInCorpusOrder(t *testing.T) {
	storage := newTestStorage(t).DocumentStorage()

	docs := []*models.Document{
		{ID: "doc_c", Title: "Third", Position: 2},
		{ID: "doc_a", Title: "First", Position: 0},
		{ID: "doc_b", Title: "Second", Position: 1},
	}
	require.NoError(t, storage.SaveDocuments(docs))

	listed, err := storage.ListDocuments()
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "First", listed[0].Title)
	assert.Equal(t, "Second", listed[1].Title)
	assert.Equal(t, "Third", listed[2].Title)
}

func TestDocumentStorage_UpsertOverwrites(t *testing.T) {
	storage := newTestStorage(t).DocumentStorage()

	require.NoError(t, storage.SaveDocument(&models.Document{ID: "doc_x", Title: "Original"}))
	require.NoError(t, storage.SaveDocument(&models.Document{ID: "doc_x", Title: "Updated"}))

	count, err := storage.CountDocuments()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := storage.GetDocument("doc_x")
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
}

func TestDocumentStorage_DeleteAll(t *testing.T) {
	storage := newTestStorage(t).DocumentStorage()

	require.NoError(t, storage.SaveDocuments([]*models.Document{
		{ID: "doc_1", Title: "One"},
		{ID: "doc_2", Title: "Two"},
	}))
	require.NoError(t, storage.DeleteAll())

	count, err := storage.CountDocuments()
	require.NoError(t, err)
	assert.Zero(t, count)
}
