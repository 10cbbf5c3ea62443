package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceType string

const (
	InvoiceProforma     InvoiceType = "proforma"
	InvoicePreShipment  InvoiceType = "pre-shipment"
	InvoicePostShipment InvoiceType = "post-shipment"
)

func ValidInvoiceType(s string) bool {
	switch InvoiceType(s) {
	case InvoiceProforma, InvoicePreShipment, InvoicePostShipment:
		return true
	}
	return false
}

// BankDetails is embedded on the invoice as a JSON text column.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	SwiftCode     string `json:"swiftCode"`
	IFSCCode      string `json:"ifscCode"`
	Branch        string `json:"branch"`
}

func (b BankDetails) Value() (driver.Value, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (b *BankDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = BankDetails{}
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into BankDetails", src)
	}
}

type Invoice struct {
	Base
	OrderID            string          `json:"orderId" db:"order_id"`
	InvoiceNumber      string          `json:"invoiceNumber" db:"invoice_number"`
	InvoiceType        InvoiceType     `json:"invoiceType" db:"invoice_type"`
	InvoiceDate        time.Time       `json:"invoiceDate" db:"invoice_date"`
	DueDate            *time.Time      `json:"dueDate,omitempty" db:"due_date"`
	Subtotal           decimal.Decimal `json:"subtotal" db:"subtotal"`
	IGST               decimal.Decimal `json:"igst" db:"igst"`
	Drawback           decimal.Decimal `json:"drawback" db:"drawback"`
	RODTEP             decimal.Decimal `json:"rodtep" db:"rodtep"`
	TotalAmount        decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Currency           string          `json:"currency" db:"currency"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate" db:"exchange_rate"`
	BankDetails        BankDetails     `json:"bankDetails" db:"bank_details"`
	TermsAndConditions string          `json:"termsAndConditions" db:"terms_and_conditions"`

	Order *Order `json:"order,omitempty" db:"-"`
}
