package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nagraajm/bls-exportpro/models"
)

type PackingListSQLiteRepo struct {
	DB *sqlx.DB
}

func NewPackingListSQLiteRepo(db *sqlx.DB) *PackingListSQLiteRepo {
	return &PackingListSQLiteRepo{DB: db}
}

const packingListColumns = `id, invoice_id, total_cartons, total_gross_weight,
	total_net_weight, created_at, updated_at`

const packingItemColumns = `id, packing_list_id, product_id, batch_number, mfg_date,
	exp_date, cartons_quantity, gross_weight, net_weight, quantity`

func (r *PackingListSQLiteRepo) FindAll() ([]*models.PackingList, error) {
	var lists []*models.PackingList
	if err := r.DB.Select(&lists, `SELECT `+packingListColumns+` FROM packing_lists ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	if err := r.loadItems(lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *PackingListSQLiteRepo) FindByID(id string) (*models.PackingList, error) {
	var pl models.PackingList
	err := r.DB.Get(&pl, `SELECT `+packingListColumns+` FROM packing_lists WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems([]*models.PackingList{&pl}); err != nil {
		return nil, err
	}
	return &pl, nil
}

func (r *PackingListSQLiteRepo) loadItems(lists []*models.PackingList) error {
	if len(lists) == 0 {
		return nil
	}

	ids := make([]string, len(lists))
	for i, pl := range lists {
		ids[i] = pl.ID
	}

	query, args, err := sqlx.In(`SELECT `+packingItemColumns+` FROM packing_list_items WHERE packing_list_id IN (?)`, ids)
	if err != nil {
		return err
	}

	var items []models.PackingListItem
	if err := r.DB.Select(&items, r.DB.Rebind(query), args...); err != nil {
		return err
	}

	itemMap := make(map[string][]models.PackingListItem)
	for _, item := range items {
		itemMap[item.PackingListID] = append(itemMap[item.PackingListID], item)
	}
	for _, pl := range lists {
		pl.Items = itemMap[pl.ID]
	}
	return nil
}

func (r *PackingListSQLiteRepo) Find(pred Predicate[*models.PackingList]) ([]*models.PackingList, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := []*models.PackingList{}
	for _, pl := range all {
		if pred(pl) {
			out = append(out, pl)
		}
	}
	return out, nil
}

func (r *PackingListSQLiteRepo) FindOne(pred Predicate[*models.PackingList]) (*models.PackingList, error) {
	matches, err := r.Find(pred)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *PackingListSQLiteRepo) FindByInvoiceID(invoiceID string) (*models.PackingList, error) {
	var pl models.PackingList
	err := r.DB.Get(&pl, `SELECT `+packingListColumns+` FROM packing_lists WHERE invoice_id = ?`, invoiceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadItems([]*models.PackingList{&pl}); err != nil {
		return nil, err
	}
	return &pl, nil
}

func (r *PackingListSQLiteRepo) Create(pl *models.PackingList) (*models.PackingList, error) {
	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}
	pl.StampCreated(time.Now().UTC())

	tx, err := r.DB.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		INSERT INTO packing_lists (`+packingListColumns+`)
		VALUES (:id, :invoice_id, :total_cartons, :total_gross_weight,
			:total_net_weight, :created_at, :updated_at)
	`, pl)
	if err != nil {
		return nil, err
	}

	if err := insertPackingItems(tx, pl); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return pl, nil
}

func insertPackingItems(tx *sqlx.Tx, pl *models.PackingList) error {
	for i := range pl.Items {
		item := &pl.Items[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		item.PackingListID = pl.ID
		if _, err := tx.NamedExec(`
			INSERT INTO packing_list_items (`+packingItemColumns+`)
			VALUES (:id, :packing_list_id, :product_id, :batch_number, :mfg_date,
				:exp_date, :cartons_quantity, :gross_weight, :net_weight, :quantity)
		`, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *PackingListSQLiteRepo) Update(id string, mutate func(*models.PackingList)) (*models.PackingList, error) {
	pl, err := r.FindByID(id)
	if err != nil || pl == nil {
		return nil, err
	}

	mutate(pl)
	pl.StampUpdated(time.Now().UTC())

	tx, err := r.DB.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		UPDATE packing_lists SET
			invoice_id=:invoice_id, total_cartons=:total_cartons,
			total_gross_weight=:total_gross_weight, total_net_weight=:total_net_weight,
			updated_at=:updated_at
		WHERE id=:id
	`, pl)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`DELETE FROM packing_list_items WHERE packing_list_id = ?`, pl.ID); err != nil {
		return nil, err
	}
	if err := insertPackingItems(tx, pl); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return pl, nil
}

func (r *PackingListSQLiteRepo) Delete(id string) (bool, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM packing_list_items WHERE packing_list_id = ?`, id); err != nil {
		return false, err
	}
	res, err := tx.Exec(`DELETE FROM packing_lists WHERE id = ?`, id)
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

func (r *PackingListSQLiteRepo) Count(pred Predicate[*models.PackingList]) (int, error) {
	if pred == nil {
		var n int
		err := r.DB.Get(&n, `SELECT COUNT(*) FROM packing_lists`)
		return n, err
	}
	matches, err := r.Find(pred)
	return len(matches), err
}

func (r *PackingListSQLiteRepo) Paginate(page, limit int, pred Predicate[*models.PackingList]) (Page[*models.PackingList], error) {
	if pred == nil {
		var total int
		if err := r.DB.Get(&total, `SELECT COUNT(*) FROM packing_lists`); err != nil {
			return Page[*models.PackingList]{}, err
		}
		data := []*models.PackingList{}
		err := r.DB.Select(&data, `
			SELECT `+packingListColumns+` FROM packing_lists
			ORDER BY created_at DESC LIMIT ? OFFSET ?
		`, limit, (page-1)*limit)
		if err != nil {
			return Page[*models.PackingList]{}, err
		}
		if err := r.loadItems(data); err != nil {
			return Page[*models.PackingList]{}, err
		}
		return Page[*models.PackingList]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
	}

	matches, err := r.Find(pred)
	if err != nil {
		return Page[*models.PackingList]{}, err
	}
	data, total := paginateSlice(matches, page, limit)
	return Page[*models.PackingList]{Data: data, Total: total, Page: page, TotalPages: totalPages(total, limit)}, nil
}
