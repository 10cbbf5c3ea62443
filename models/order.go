package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	Base
	CustomerID            string          `json:"customerId" db:"customer_id"`
	OrderNumber           string          `json:"orderNumber" db:"order_number"`
	OrderDate             time.Time       `json:"orderDate" db:"order_date"`
	EstimatedShipmentDate *time.Time      `json:"estimatedShipmentDate,omitempty" db:"estimated_shipment_date"`
	Status                OrderStatus     `json:"status" db:"status"`
	Subtotal              decimal.Decimal `json:"subtotal" db:"subtotal"`
	IGST                  decimal.Decimal `json:"igst" db:"igst"`
	Drawback              decimal.Decimal `json:"drawback" db:"drawback"`
	RODTEP                decimal.Decimal `json:"rodtep" db:"rodtep"`
	TotalAmount           decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Currency              string          `json:"currency" db:"currency"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate" db:"exchange_rate"`

	// Nested objects for responses (denormalized)
	Items    []OrderItem `json:"items,omitempty" db:"-"`
	Customer *Customer   `json:"customer,omitempty" db:"-"`
}

type OrderItem struct {
	ID          string          `json:"id" db:"id"`
	OrderID     string          `json:"orderId" db:"order_id"`
	ProductID   string          `json:"productId" db:"product_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Rate        decimal.Decimal `json:"rate" db:"rate"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	BatchNumber string          `json:"batchNumber" db:"batch_number"`
	MfgDate     *time.Time      `json:"mfgDate,omitempty" db:"mfg_date"`
	ExpDate     *time.Time      `json:"expDate,omitempty" db:"exp_date"`

	Product *Product `json:"product,omitempty" db:"-"`
}
