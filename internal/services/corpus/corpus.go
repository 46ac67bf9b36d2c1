package corpus

import (
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"
	"gopkg.in/yaml.v3"

	"github.com/crictourney/pavilion/internal/common"
	"github.com/crictourney/pavilion/internal/interfaces"
	"github.com/crictourney/pavilion/internal/models"
)

// Service holds the immutable knowledge corpus. Documents are loaded once at
// construction and the snapshot is never mutated afterwards, so concurrent
// reads from any number of conversations are safe without locking.
type Service struct {
	documents []models.Document
	loadedAt  time.Time
	logger    arbor.ILogger
}

// corpusFile is the on-disk corpus format (corpus.yaml)
type corpusFile struct {
	Documents []models.Document `yaml:"documents"`
}

// NewService loads the corpus and seeds it into document storage. When path is
// empty the built-in CricTourney corpus is used. Storage may be nil in tests.
func NewService(path string, storage interfaces.DocumentStorage, logger arbor.ILogger) (*Service, error) {
	docs, err := loadDocuments(path)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		docs[i].Position = i
	}

	s := &Service{
		documents: docs,
		loadedAt:  time.Now(),
		logger:    logger,
	}

	if storage != nil {
		if err := s.seed(storage); err != nil {
			return nil, fmt.Errorf("failed to seed corpus storage: %w", err)
		}
	}

	logger.Info().
		Int("documents", len(docs)).
		Str("source", sourceName(path)).
		Msg("Knowledge corpus loaded")

	return s, nil
}

func loadDocuments(path string) ([]models.Document, error) {
	if path == "" {
		return defaultDocuments(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}
	if len(file.Documents) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no documents", path)
	}

	for i, doc := range file.Documents {
		if doc.Title == "" {
			return nil, fmt.Errorf("corpus file %s: document %d has no title", path, i)
		}
		if file.Documents[i].ID == "" {
			file.Documents[i].ID = common.NewDocumentID()
		}
	}

	return file.Documents, nil
}

// seed replaces the stored corpus with the freshly loaded one
func (s *Service) seed(storage interfaces.DocumentStorage) error {
	if err := storage.DeleteAll(); err != nil {
		return err
	}

	docs := make([]*models.Document, len(s.documents))
	for i := range s.documents {
		doc := s.documents[i]
		docs[i] = &doc
	}
	return storage.SaveDocuments(docs)
}

// Documents returns the corpus snapshot in corpus order. Callers must not
// modify the returned slice.
func (s *Service) Documents() []models.Document {
	return s.documents
}

// Topics returns the metadata view of every document
func (s *Service) Topics() []models.Topic {
	topics := make([]models.Topic, 0, len(s.documents))
	for _, doc := range s.documents {
		topics = append(topics, models.Topic{
			Title:    doc.Title,
			Category: doc.Category,
			Keywords: doc.Keywords,
		})
	}
	return topics
}

// Stats summarises the loaded corpus
func (s *Service) Stats() models.CorpusStats {
	byCategory := make(map[string]int)
	totalLength := 0
	for _, doc := range s.documents {
		byCategory[doc.Category]++
		totalLength += len(doc.Content)
	}

	avg := 0
	if len(s.documents) > 0 {
		avg = totalLength / len(s.documents)
	}

	return models.CorpusStats{
		TotalDocuments:       len(s.documents),
		DocumentsByCategory:  byCategory,
		AverageContentLength: avg,
		LoadedAt:             s.loadedAt,
	}
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
