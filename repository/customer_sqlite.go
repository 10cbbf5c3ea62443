package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nagraajm/bls-exportpro/models"
)

type CustomerSQLiteRepo struct {
	DB *sqlx.DB
}

func NewCustomerSQLiteRepo(db *sqlx.DB) *CustomerSQLiteRepo {
	return &CustomerSQLiteRepo{DB: db}
}

const customerColumns = `id, company_name, contact_person, email, phone, address, city,
	country, payment_terms, bank_name, bank_account, licenses, created_at, updated_at`

func (r *CustomerSQLiteRepo) FindAll() ([]*models.Customer, error) {
	var customers []*models.Customer
	err := r.DB.Select(&customers, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	return customers, err
}

func (r *CustomerSQLiteRepo) FindByID(id string) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.Get(&c, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerSQLiteRepo) Find(pred Predicate[*models.Customer]) ([]*models.Customer, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := []*models.Customer{}
	for _, c := range all {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerSQLiteRepo) FindOne(pred Predicate[*models.Customer]) (*models.Customer, error) {
	matches, err := r.Find(pred)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *CustomerSQLiteRepo) Create(c *models.Customer) (*models.Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.StampCreated(time.Now().UTC())

	_, err := r.DB.NamedExec(`
		INSERT INTO customers (`+customerColumns+`)
		VALUES (:id, :company_name, :contact_person, :email, :phone, :address, :city,
			:country, :payment_terms, :bank_name, :bank_account, :licenses, :created_at, :updated_at)
	`, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerSQLiteRepo) Update(id string, mutate func(*models.Customer)) (*models.Customer, error) {
	c, err := r.FindByID(id)
	if err != nil || c == nil {
		return nil, err
	}

	mutate(c)
	c.StampUpdated(time.Now().UTC())

	_, err = r.DB.NamedExec(`
		UPDATE customers SET
			company_name=:company_name, contact_person=:contact_person, email=:email,
			phone=:phone, address=:address, city=:city, country=:country,
			payment_terms=:payment_terms, bank_name=:bank_name, bank_account=:bank_account,
			licenses=:licenses, updated_at=:updated_at
		WHERE id=:id
	`, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerSQLiteRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *CustomerSQLiteRepo) Count(pred Predicate[*models.Customer]) (int, error) {
	if pred == nil {
		var n int
		err := r.DB.Get(&n, `SELECT COUNT(*) FROM customers`)
		return n, err
	}
	matches, err := r.Find(pred)
	return len(matches), err
}

func (r *CustomerSQLiteRepo) Paginate(page, limit int, pred Predicate[*models.Customer]) (Page[*models.Customer], error) {
	if pred == nil {
		var total int
		if err := r.DB.Get(&total, `SELECT COUNT(*) FROM customers`); err != nil {
			return Page[*models.Customer]{}, err
		}
		data := []*models.Customer{}
		err := r.DB.Select(&data, `
			SELECT `+customerColumns+` FROM customers
			ORDER BY created_at DESC LIMIT ? OFFSET ?
		`, limit, (page-1)*limit)
		if err != nil {
			return Page[*models.Customer]{}, err
		}
		return Page[*models.Customer]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
	}

	matches, err := r.Find(pred)
	if err != nil {
		return Page[*models.Customer]{}, err
	}
	data, total := paginateSlice(matches, page, limit)
	return Page[*models.Customer]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
}
