package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nagraajm/bls-exportpro/models"
)

type ProductSQLiteRepo struct {
	DB *sqlx.DB
}

func NewProductSQLiteRepo(db *sqlx.DB) *ProductSQLiteRepo {
	return &ProductSQLiteRepo{DB: db}
}

const productColumns = `id, product_code, brand_name, generic_name, strength, dosage_form,
	pack_size, manufacturer, hsn_code, therapeutic_category, shelf_life, is_scheduled_drug,
	unit_price, currency, approval_status, approved_by, approval_date, rejection_reason,
	created_by, created_at, updated_at`

func (r *ProductSQLiteRepo) FindAll() ([]*models.Product, error) {
	var products []*models.Product
	err := r.DB.Select(&products, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	return products, err
}

func (r *ProductSQLiteRepo) FindByID(id string) (*models.Product, error) {
	var p models.Product
	err := r.DB.Get(&p, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Find filters in memory over the loaded set so that predicates behave the
// same as on the flat-file backing.
func (r *ProductSQLiteRepo) Find(pred Predicate[*models.Product]) ([]*models.Product, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := []*models.Product{}
	for _, p := range all {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductSQLiteRepo) FindOne(pred Predicate[*models.Product]) (*models.Product, error) {
	matches, err := r.Find(pred)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *ProductSQLiteRepo) Create(p *models.Product) (*models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.StampCreated(time.Now().UTC())

	_, err := r.DB.NamedExec(`
		INSERT INTO products (`+productColumns+`)
		VALUES (:id, :product_code, :brand_name, :generic_name, :strength, :dosage_form,
			:pack_size, :manufacturer, :hsn_code, :therapeutic_category, :shelf_life, :is_scheduled_drug,
			:unit_price, :currency, :approval_status, :approved_by, :approval_date, :rejection_reason,
			:created_by, :created_at, :updated_at)
	`, p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductSQLiteRepo) Update(id string, mutate func(*models.Product)) (*models.Product, error) {
	p, err := r.FindByID(id)
	if err != nil || p == nil {
		return nil, err
	}

	mutate(p)
	p.StampUpdated(time.Now().UTC())

	_, err = r.DB.NamedExec(`
		UPDATE products SET
			product_code=:product_code, brand_name=:brand_name, generic_name=:generic_name,
			strength=:strength, dosage_form=:dosage_form, pack_size=:pack_size,
			manufacturer=:manufacturer, hsn_code=:hsn_code, therapeutic_category=:therapeutic_category,
			shelf_life=:shelf_life, is_scheduled_drug=:is_scheduled_drug, unit_price=:unit_price,
			currency=:currency, approval_status=:approval_status, approved_by=:approved_by,
			approval_date=:approval_date, rejection_reason=:rejection_reason,
			created_by=:created_by, updated_at=:updated_at
		WHERE id=:id
	`, p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductSQLiteRepo) Delete(id string) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ProductSQLiteRepo) Count(pred Predicate[*models.Product]) (int, error) {
	if pred == nil {
		var n int
		err := r.DB.Get(&n, `SELECT COUNT(*) FROM products`)
		return n, err
	}
	matches, err := r.Find(pred)
	return len(matches), err
}

func (r *ProductSQLiteRepo) Paginate(page, limit int, pred Predicate[*models.Product]) (Page[*models.Product], error) {
	if pred == nil {
		var total int
		if err := r.DB.Get(&total, `SELECT COUNT(*) FROM products`); err != nil {
			return Page[*models.Product]{}, err
		}
		data := []*models.Product{}
		err := r.DB.Select(&data, `
			SELECT `+productColumns+` FROM products
			ORDER BY created_at DESC LIMIT ? OFFSET ?
		`, limit, (page-1)*limit)
		if err != nil {
			return Page[*models.Product]{}, err
		}
		return Page[*models.Product]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
	}

	matches, err := r.Find(pred)
	if err != nil {
		return Page[*models.Product]{}, err
	}
	data, total := paginateSlice(matches, page, limit)
	return Page[*models.Product]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
}
