package interfaces

import (
	"github.com/crictourney/pavilion/internal/models"
)

// DocumentStorage persists corpus documents
type DocumentStorage interface {
	SaveDocument(doc *models.Document) error
	SaveDocuments(docs []*models.Document) error
	GetDocument(id string) (*models.Document, error)
	ListDocuments() ([]*models.Document, error)
	CountDocuments() (int, error)
	DeleteAll() error
}

// StorageManager provides access to all storage backends
type StorageManager interface {
	DocumentStorage() DocumentStorage
	Close() error
}
