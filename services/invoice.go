package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

type InvoiceService struct {
	Invoices  repository.InvoiceRepository
	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) *InvoiceService {
	return &InvoiceService{Invoices: invoices, Orders: orders, Customers: customers, Products: products}
}

// defaultBankDetails go on every invoice unless the caller supplies their own.
var defaultBankDetails = models.BankDetails{
	BankName:      "State Bank of India",
	AccountNumber: "00000041234567890",
	SwiftCode:     "SBININBB104",
	IFSCCode:      "SBIN0004567",
	Branch:        "Overseas Branch, Mumbai",
}

var invoicePrefixes = map[models.InvoiceType]string{
	models.InvoiceProforma:     "PI",
	models.InvoicePreShipment:  "PSI",
	models.InvoicePostShipment: "CI",
}

func defaultTerms(invoiceType models.InvoiceType) string {
	switch invoiceType {
	case models.InvoiceProforma:
		return "1. This proforma invoice is valid for 30 days from the date of issue.\n" +
			"2. Payment: 100% advance by wire transfer to the bank account stated above.\n" +
			"3. Shipment within 45 days of receipt of payment.\n" +
			"4. Prices are CIF unless stated otherwise."
	case models.InvoicePreShipment:
		return "1. Goods once sold will not be taken back.\n" +
			"2. Payment against documents through bank.\n" +
			"3. Interest at 18% per annum will be charged on overdue payments.\n" +
			"4. Subject to Mumbai jurisdiction."
	case models.InvoicePostShipment:
		return "1. Payment within 30 days of bill of lading date.\n" +
			"2. Drawback and RODTEP claims as per shipping bill.\n" +
			"3. Any discrepancy must be reported within 7 days of receipt.\n" +
			"4. Subject to Mumbai jurisdiction."
	default:
		return ""
	}
}

type GenerateInvoiceInput struct {
	OrderID     string              `json:"orderId" validate:"required"`
	InvoiceType string              `json:"invoiceType" validate:"required,oneof=proforma pre-shipment post-shipment"`
	InvoiceDate *time.Time          `json:"invoiceDate"`
	DueDate     *time.Time          `json:"dueDate"`
	BankDetails *models.BankDetails `json:"bankDetails"`
	Terms       *string             `json:"termsAndConditions"`
}

// Generate creates an invoice for an order, snapshotting the order's amounts
// so later order edits do not rewrite issued paperwork. One invoice per type
// per order.
func (s *InvoiceService) Generate(in GenerateInvoiceInput) (*models.Invoice, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}
	invoiceType := models.InvoiceType(in.InvoiceType)

	order, err := s.Orders.FindByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NotFound("Order not found")
	}

	duplicate, err := s.Invoices.FindOne(func(inv *models.Invoice) bool {
		return inv.OrderID == in.OrderID && inv.InvoiceType == invoiceType
	})
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return nil, Conflict(fmt.Sprintf("A %s invoice already exists for this order", invoiceType))
	}

	invoiceDate := time.Now().UTC()
	if in.InvoiceDate != nil {
		invoiceDate = *in.InvoiceDate
	}

	number, err := s.nextInvoiceNumber(invoiceType, invoiceDate.Year())
	if err != nil {
		return nil, err
	}

	bank := defaultBankDetails
	if in.BankDetails != nil {
		bank = *in.BankDetails
	}
	terms := defaultTerms(invoiceType)
	if in.Terms != nil {
		terms = *in.Terms
	}

	invoice := &models.Invoice{
		OrderID:            order.ID,
		InvoiceNumber:      number,
		InvoiceType:        invoiceType,
		InvoiceDate:        invoiceDate,
		DueDate:            in.DueDate,
		Subtotal:           order.Subtotal,
		IGST:               order.IGST,
		Drawback:           order.Drawback,
		RODTEP:             order.RODTEP,
		TotalAmount:        order.TotalAmount,
		Currency:           order.Currency,
		ExchangeRate:       order.ExchangeRate,
		BankDetails:        bank,
		TermsAndConditions: terms,
	}
	return s.Invoices.Create(invoice)
}

// nextInvoiceNumber scans existing numbers with the same prefix and year and
// takes the next zero-padded sequence, e.g. PI-2026-00042.
func (s *InvoiceService) nextInvoiceNumber(invoiceType models.InvoiceType, year int) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", invoicePrefixes[invoiceType], year)

	existing, err := s.Invoices.Find(func(inv *models.Invoice) bool {
		return strings.HasPrefix(inv.InvoiceNumber, prefix)
	})
	if err != nil {
		return "", err
	}

	maxSeq := 0
	for _, inv := range existing {
		var seq int
		if _, err := fmt.Sscanf(inv.InvoiceNumber[len(prefix):], "%d", &seq); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s%05d", prefix, maxSeq+1), nil
}

// Get returns the invoice with its order, customer and item products attached.
// Hydration is best-effort: a deleted customer or product leaves the field nil
// rather than failing the read.
func (s *InvoiceService) Get(id string) (*models.Invoice, error) {
	invoice, err := s.Invoices.FindByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, NotFound("Invoice not found")
	}
	if err := s.hydrate(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) hydrate(invoice *models.Invoice) error {
	order, err := s.Orders.FindByID(invoice.OrderID)
	if err != nil || order == nil {
		return err
	}

	if customer, err := s.Customers.FindByID(order.CustomerID); err != nil {
		return err
	} else if customer != nil {
		order.Customer = customer
	}

	for i := range order.Items {
		product, err := s.Products.FindByID(order.Items[i].ProductID)
		if err != nil {
			return err
		}
		order.Items[i].Product = product
	}

	invoice.Order = order
	return nil
}

type InvoiceFilter struct {
	InvoiceType string
	OrderID     string
}

func (s *InvoiceService) List(page, limit int, filter InvoiceFilter) (repository.Page[*models.Invoice], error) {
	if filter.InvoiceType != "" && !models.ValidInvoiceType(filter.InvoiceType) {
		return repository.Page[*models.Invoice]{}, Invalid("Invalid invoice type")
	}
	return s.Invoices.Paginate(page, limit, func(inv *models.Invoice) bool {
		if filter.InvoiceType != "" && string(inv.InvoiceType) != filter.InvoiceType {
			return false
		}
		if filter.OrderID != "" && inv.OrderID != filter.OrderID {
			return false
		}
		return true
	})
}

type UpdateInvoiceInput struct {
	DueDate     *time.Time          `json:"dueDate"`
	BankDetails *models.BankDetails `json:"bankDetails"`
	Terms       *string             `json:"termsAndConditions"`
}

func (s *InvoiceService) Update(id string, in UpdateInvoiceInput) (*models.Invoice, error) {
	invoice, err := s.Invoices.Update(id, func(inv *models.Invoice) {
		if in.DueDate != nil {
			inv.DueDate = in.DueDate
		}
		if in.BankDetails != nil {
			inv.BankDetails = *in.BankDetails
		}
		if in.Terms != nil {
			inv.TermsAndConditions = *in.Terms
		}
	})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, NotFound("Invoice not found")
	}
	return invoice, nil
}

func (s *InvoiceService) Delete(id string) error {
	deleted, err := s.Invoices.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("Invoice not found")
	}
	return nil
}
