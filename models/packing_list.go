package models

import "time"

type PackingList struct {
	Base
	InvoiceID        string  `json:"invoiceId" db:"invoice_id"`
	TotalCartons     int     `json:"totalCartons" db:"total_cartons"`
	TotalGrossWeight float64 `json:"totalGrossWeight" db:"total_gross_weight"`
	TotalNetWeight   float64 `json:"totalNetWeight" db:"total_net_weight"`

	Items []PackingListItem `json:"items,omitempty" db:"-"`
}

type PackingListItem struct {
	ID              string     `json:"id" db:"id"`
	PackingListID   string     `json:"packingListId" db:"packing_list_id"`
	ProductID       string     `json:"productId" db:"product_id"`
	BatchNumber     string     `json:"batchNumber" db:"batch_number"`
	MfgDate         *time.Time `json:"mfgDate,omitempty" db:"mfg_date"`
	ExpDate         *time.Time `json:"expDate,omitempty" db:"exp_date"`
	CartonsQuantity int        `json:"cartonsQuantity" db:"cartons_quantity"`
	GrossWeight     float64    `json:"grossWeight" db:"gross_weight"`
	NetWeight       float64    `json:"netWeight" db:"net_weight"`
	Quantity        int        `json:"quantity" db:"quantity"`

	Product *Product `json:"product,omitempty" db:"-"`
}
