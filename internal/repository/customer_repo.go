package repository

import (
	"database/sql"
	"errors"

	"voltrent/internal/db"
)

type CustomerRepository interface {
	GetByEmail(email string) (*db.Customer, error)
	GetByID(id int) (*db.Customer, error)
	Create(c *db.Customer) error
	UpdatePersonalInfo(id int, fullName, phone, licenseNumber string) error
}

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(database *sql.DB) CustomerRepository {
	return &customerRepository{db: database}
}

func (r *customerRepository) GetByEmail(email string) (*db.Customer, error) {
	var c db.Customer
	err := r.db.QueryRow(
		`SELECT id, full_name, email, phone, license_number, password_hash, role, created_at, updated_at
		 FROM customers WHERE email = $1`,
		email,
	).Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.LicenseNumber, &c.PasswordHash, &c.Role, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) GetByID(id int) (*db.Customer, error) {
	var c db.Customer
	err := r.db.QueryRow(
		`SELECT id, full_name, email, phone, license_number, password_hash, role, created_at, updated_at
		 FROM customers WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.FullName, &c.Email, &c.Phone, &c.LicenseNumber, &c.PasswordHash, &c.Role, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(c *db.Customer) error {
	query := `
	INSERT INTO customers (full_name, email, phone, license_number, password_hash, role, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING id, created_at, updated_at`
	return r.db.QueryRow(query,
		c.FullName, c.Email, c.Phone, c.LicenseNumber, c.PasswordHash, c.Role,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *customerRepository) UpdatePersonalInfo(id int, fullName, phone, licenseNumber string) error {
	_, err := r.db.Exec(
		`UPDATE customers SET full_name = $1, phone = $2, license_number = $3, updated_at = NOW() WHERE id = $4`,
		fullName, phone, licenseNumber, id,
	)
	return err
}
