package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dealflow/apiserver/types"
)

// CompanyRepository handles persistence for company listings.
type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int) (types.Company, error) {
	const query = `
		SELECT id, name, industry, status, location, revenue, ebitda, employees,
			founded_year, asking_price, description, owner_id,
			views_this_month, inquiries_this_month
		FROM companies
		WHERE id = $1`
	var company types.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.Industry,
		&company.Status,
		&company.Location,
		&company.Revenue,
		&company.Ebitda,
		&company.Employees,
		&company.FoundedYear,
		&company.AskingPrice,
		&company.Description,
		&company.OwnerID,
		&company.ViewsThisMonth,
		&company.InquiriesThisMonth,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Company{}, ErrNotFound
		}
		return types.Company{}, err
	}
	return company, nil
}

// List returns every listing in insertion order.
func (r *CompanyRepository) List(ctx context.Context) ([]types.Company, error) {
	const query = `
		SELECT id, name, industry, status, location, revenue, ebitda, employees,
			founded_year, asking_price, description, owner_id,
			views_this_month, inquiries_this_month
		FROM companies
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]types.Company, 0)
	for rows.Next() {
		var company types.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Industry,
			&company.Status,
			&company.Location,
			&company.Revenue,
			&company.Ebitda,
			&company.Employees,
			&company.FoundedYear,
			&company.AskingPrice,
			&company.Description,
			&company.OwnerID,
			&company.ViewsThisMonth,
			&company.InquiriesThisMonth,
		); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company types.Company) (types.Company, error) {
	const query = `
		INSERT INTO companies (
			name, industry, status, location, revenue, ebitda, employees,
			founded_year, asking_price, description, owner_id,
			views_this_month, inquiries_this_month
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		company.Name,
		company.Industry,
		company.Status,
		company.Location,
		company.Revenue,
		company.Ebitda,
		company.Employees,
		company.FoundedYear,
		company.AskingPrice,
		company.Description,
		company.OwnerID,
		company.ViewsThisMonth,
		company.InquiriesThisMonth,
	).Scan(&company.ID); err != nil {
		return types.Company{}, err
	}
	return company, nil
}
