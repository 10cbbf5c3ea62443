package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nagraajm/bls-exportpro/models"
)

type OrderSQLiteRepo struct {
	DB *sqlx.DB
}

func NewOrderSQLiteRepo(db *sqlx.DB) *OrderSQLiteRepo {
	return &OrderSQLiteRepo{DB: db}
}

const orderColumns = `id, customer_id, order_number, order_date, estimated_shipment_date,
	status, subtotal, igst, drawback, rodtep, total_amount, currency, exchange_rate,
	created_at, updated_at`

const orderItemColumns = `id, order_id, product_id, quantity, rate, amount,
	batch_number, mfg_date, exp_date`

func (r *OrderSQLiteRepo) FindAll() ([]*models.Order, error) {
	var orders []*models.Order
	if err := r.DB.Select(&orders, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	if err := r.loadItems(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderSQLiteRepo) FindByID(id string) (*models.Order, error) {
	var o models.Order
	err := r.DB.Get(&o, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems([]*models.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// loadItems attaches items to all orders in one query to avoid N+1.
func (r *OrderSQLiteRepo) loadItems(orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args, err := sqlx.In(`SELECT `+orderItemColumns+` FROM order_items WHERE order_id IN (?)`, ids)
	if err != nil {
		return err
	}

	var items []models.OrderItem
	if err := r.DB.Select(&items, r.DB.Rebind(query), args...); err != nil {
		return err
	}

	itemMap := make(map[string][]models.OrderItem)
	for _, item := range items {
		itemMap[item.OrderID] = append(itemMap[item.OrderID], item)
	}
	for _, o := range orders {
		o.Items = itemMap[o.ID]
	}
	return nil
}

func (r *OrderSQLiteRepo) Find(pred Predicate[*models.Order]) ([]*models.Order, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := []*models.Order{}
	for _, o := range all {
		if pred(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderSQLiteRepo) FindOne(pred Predicate[*models.Order]) (*models.Order, error) {
	matches, err := r.Find(pred)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *OrderSQLiteRepo) FindByOrderNumber(orderNumber string) (*models.Order, error) {
	var o models.Order
	err := r.DB.Get(&o, `SELECT `+orderColumns+` FROM orders WHERE order_number = ?`, orderNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems([]*models.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the order and its items in one transaction.
func (r *OrderSQLiteRepo) Create(o *models.Order) (*models.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.StampCreated(time.Now().UTC())

	tx, err := r.DB.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		INSERT INTO orders (`+orderColumns+`)
		VALUES (:id, :customer_id, :order_number, :order_date, :estimated_shipment_date,
			:status, :subtotal, :igst, :drawback, :rodtep, :total_amount, :currency,
			:exchange_rate, :created_at, :updated_at)
	`, o)
	if err != nil {
		return nil, err
	}

	if err := insertOrderItems(tx, o); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func insertOrderItems(tx *sqlx.Tx, o *models.Order) error {
	for i := range o.Items {
		item := &o.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.OrderID = o.ID
		if _, err := tx.NamedExec(`
			INSERT INTO order_items (`+orderItemColumns+`)
			VALUES (:id, :order_id, :product_id, :quantity, :rate, :amount,
				:batch_number, :mfg_date, :exp_date)
		`, item); err != nil {
			return err
		}
	}
	return nil
}

// Update rewrites the order row and, when items were touched, refreshes the
// item rows wholesale (delete + reinsert, same as the source system).
func (r *OrderSQLiteRepo) Update(id string, mutate func(*models.Order)) (*models.Order, error) {
	o, err := r.FindByID(id)
	if err != nil || o == nil {
		return nil, err
	}

	mutate(o)
	o.StampUpdated(time.Now().UTC())

	tx, err := r.DB.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		UPDATE orders SET
			customer_id=:customer_id, order_number=:order_number, order_date=:order_date,
			estimated_shipment_date=:estimated_shipment_date, status=:status,
			subtotal=:subtotal, igst=:igst, drawback=:drawback, rodtep=:rodtep,
			total_amount=:total_amount, currency=:currency, exchange_rate=:exchange_rate,
			updated_at=:updated_at
		WHERE id=:id
	`, o)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
		return nil, err
	}
	if err := insertOrderItems(tx, o); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderSQLiteRepo) Delete(id string) (bool, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		return false, err
	}
	res, err := tx.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *OrderSQLiteRepo) Count(pred Predicate[*models.Order]) (int, error) {
	if pred == nil {
		var n int
		err := r.DB.Get(&n, `SELECT COUNT(*) FROM orders`)
		return n, err
	}
	matches, err := r.Find(pred)
	return len(matches), err
}

func (r *OrderSQLiteRepo) Paginate(page, limit int, pred Predicate[*models.Order]) (Page[*models.Order], error) {
	if pred == nil {
		var total int
		if err := r.DB.Get(&total, `SELECT COUNT(*) FROM orders`); err != nil {
			return Page[*models.Order]{}, err
		}
		data := []*models.Order{}
		err := r.DB.Select(&data, `
			SELECT `+orderColumns+` FROM orders
			ORDER BY created_at DESC LIMIT ? OFFSET ?
		`, limit, (page-1)*limit)
		if err != nil {
			return Page[*models.Order]{}, err
		}
		if err := r.loadItems(data); err != nil {
			return Page[*models.Order]{}, err
		}
		return Page[*models.Order]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
	}

	matches, err := r.Find(pred)
	if err != nil {
		return Page[*models.Order]{}, err
	}
	data, total := paginateSlice(matches, page, limit)
	return Page[*models.Order]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
}
