package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"voltrent/internal/db"
	"voltrent/internal/entities"
	"voltrent/internal/repository"
)

// DocumentService stores uploaded driver documents on disk and tracks their
// review status. Uploaded documents start pending until staff approve them.
type DocumentService struct {
	Repo      *repository.DocumentRepository
	UploadDir string
}

func NewDocumentService(repo *repository.DocumentRepository, uploadDir string) *DocumentService {
	return &DocumentService{Repo: repo, UploadDir: uploadDir}
}

func (s *DocumentService) Upload(customerID int, kind, fileName string, file io.Reader) (*entities.DocumentResponse, error) {
	id := uuid.NewString()
	path := filepath.Join(s.UploadDir, id+filepath.Ext(fileName))

	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not store document: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, file); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("could not store document: %w", err)
	}

	doc := &db.Document{
		ID:         id,
		CustomerID: customerID,
		Kind:       kind,
		FileName:   fileName,
		Path:       path,
		Status:     "pending",
	}
	if err := s.Repo.CreateDocument(doc); err != nil {
		os.Remove(path)
		return nil, err
	}
	return &entities.DocumentResponse{
		ID:        doc.ID,
		Kind:      doc.Kind,
		FileName:  doc.FileName,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (s *DocumentService) List(customerID int) ([]entities.DocumentResponse, error) {
	return s.Repo.ListByCustomer(customerID)
}
