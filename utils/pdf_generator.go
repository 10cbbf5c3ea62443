package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/nagraajm/bls-exportpro/models"
)

var invoiceTitles = map[models.InvoiceType]string{
	models.InvoiceProforma:     "PROFORMA INVOICE",
	models.InvoicePreShipment:  "PRE-SHIPMENT INVOICE",
	models.InvoicePostShipment: "COMMERCIAL INVOICE",
}

type invoicePDFData struct {
	Title       string
	Invoice     *models.Invoice
	Order       *models.Order
	Customer    *models.Customer
	Items       []models.OrderItem
	InvoiceDate string
	DueDate     string
	TotalWords  string
	TermsLines  []string
}

// GenerateInvoicePDF renders the invoice template to HTML and prints it to an
// A4 PDF with headless Chrome. The invoice must be hydrated (order, customer
// and item products attached).
func GenerateInvoicePDF(invoice *models.Invoice) ([]byte, error) {
	tmpl, err := template.New("invoice.html").
		Funcs(template.FuncMap{"add": func(a, b int) int { return a + b }}).
		ParseFiles("templates/invoice.html")
	if err != nil {
		return nil, err
	}

	data := invoicePDFData{
		Title:       invoiceTitles[invoice.InvoiceType],
		Invoice:     invoice,
		Order:       invoice.Order,
		InvoiceDate: invoice.InvoiceDate.Format("02-Jan-2006"),
		TotalWords:  AmountInWords(invoice.TotalAmount, invoice.Currency),
		TermsLines:  strings.Split(invoice.TermsAndConditions, "\n"),
	}
	if invoice.DueDate != nil {
		data.DueDate = invoice.DueDate.Format("02-Jan-2006")
	}
	if invoice.Order != nil {
		data.Customer = invoice.Order.Customer
		data.Items = invoice.Order.Items
	}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, err
	}

	tmpHTML := filepath.Join(os.TempDir(), "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, html.Bytes(), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate("file://"+tmpHTML),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
