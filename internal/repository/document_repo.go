package repository

import (
	"database/sql"

	"voltrent/internal/db"
	"voltrent/internal/entities"
)

type DocumentRepository struct {
	DB *sql.DB
}

func NewDocumentRepository(database *sql.DB) *DocumentRepository {
	return &DocumentRepository{DB: database}
}

func (r *DocumentRepository) CreateDocument(doc *db.Document) error {
	query := `
	INSERT INTO documents (id, customer_id, kind, file_name, path, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	RETURNING created_at`
	return r.DB.QueryRow(query,
		doc.ID, doc.CustomerID, doc.Kind, doc.FileName, doc.Path, doc.Status,
	).Scan(&doc.CreatedAt)
}

func (r *DocumentRepository) ListByCustomer(customerID int) ([]entities.DocumentResponse, error) {
	rows, err := r.DB.Query(
		`SELECT id, kind, file_name, status, created_at
		 FROM documents WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []entities.DocumentResponse
	for rows.Next() {
		var d entities.DocumentResponse
		if err := rows.Scan(&d.ID, &d.Kind, &d.FileName, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// HasApprovedDocument is the staff pickup gate: the customer must have at
// least one approved driver document on file.
func (r *DocumentRepository) HasApprovedDocument(customerID int) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(id) FROM documents WHERE customer_id = $1 AND status = 'approved'`,
		customerID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
