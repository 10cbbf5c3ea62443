package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nagraajm/bls-exportpro/models"
)

type InvoiceSQLiteRepo struct {
	DB *sqlx.DB
}

func NewInvoiceSQLiteRepo(db *sqlx.DB) *InvoiceSQLiteRepo {
	return &InvoiceSQLiteRepo{DB: db}
}

const invoiceColumns = `id, order_id, invoice_number, invoice_type, invoice_date, due_date,
	subtotal, igst, drawback, rodtep, total_amount, currency, exchange_rate,
	bank_details, terms_and_conditions, created_at, updated_at`

func (r *InvoiceSQLiteRepo) FindAll() ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	err := r.DB.Select(&invoices, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
	return invoices, err
}

func (r *InvoiceSQLiteRepo) FindByID(id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.DB.Get(&inv, `SELECT `+invoiceColumns+` FROM invoices WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceSQLiteRepo) Find(pred Predicate[*models.Invoice]) ([]*models.Invoice, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := []*models.Invoice{}
	for _, inv := range all {
		if pred(inv) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *InvoiceSQLiteRepo) FindOne(pred Predicate[*models.Invoice]) (*models.Invoice, error) {
	matches, err := r.Find(pred)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *InvoiceSQLiteRepo) Create(inv *models.Invoice) (*models.Invoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	inv.StampCreated(time.Now().UTC())

	_, err := r.DB.NamedExec(`
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES (:id, :order_id, :invoice_number, :invoice_type, :invoice_date, :due_date,
			:subtotal, :igst, :drawback, :rodtep, :total_amount, :currency, :exchange_rate,
			:bank_details, :terms_and_conditions, :created_at, :updated_at)
	`, inv)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceSQLiteRepo) Update(id string, mutate func(*models.Invoice)) (*models.Invoice, error) {
	inv, err := r.FindByID(id)
	if err != nil || inv == nil {
		return nil, err
	}

	mutate(inv)
	inv.StampUpdated(time.Now().UTC())

	_, err = r.DB.NamedExec(`
		UPDATE invoices SET
			order_id=:order_id, invoice_number=:invoice_number, invoice_type=:invoice_type,
			invoice_date=:invoice_date, due_date=:due_date, subtotal=:subtotal, igst=:igst,
			drawback=:drawback, rodtep=:rodtep, total_amount=:total_amount,
			currency=:currency, exchange_rate=:exchange_rate, bank_details=:bank_details,
			terms_and_conditions=:terms_and_conditions, updated_at=:updated_at
		WHERE id=:id
	`, inv)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceSQLiteRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM invoices WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *InvoiceSQLiteRepo) Count(pred Predicate[*models.Invoice]) (int, error) {
	if pred == nil {
		var n int
		err := r.DB.Get(&n, `SELECT COUNT(*) FROM invoices`)
		return n, err
	}
	matches, err := r.Find(pred)
	return len(matches), err
}

func (r *InvoiceSQLiteRepo) Paginate(page, limit int, pred Predicate[*models.Invoice]) (Page[*models.Invoice], error) {
	if pred == nil {
		var total int
		if err := r.DB.Get(&total, `SELECT COUNT(*) FROM invoices`); err != nil {
			return Page[*models.Invoice]{}, err
		}
		data := []*models.Invoice{}
		err := r.DB.Select(&data, `
			SELECT `+invoiceColumns+` FROM invoices
			ORDER BY created_at DESC LIMIT ? OFFSET ?
		`, limit, (page-1)*limit)
		if err != nil {
			return Page[*models.Invoice]{}, err
		}
		return Page[*models.Invoice]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
	}

	matches, err := r.Find(pred)
	if err != nil {
		return Page[*models.Invoice]{}, err
	}
	data, total := paginateSlice(matches, page, limit)
	return Page[*models.Invoice]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
}
