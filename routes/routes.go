package routes

import (
	"net/http"
	"strings"

	"github.com/nagraajm/bls-exportpro/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Actor-Id, X-Actor-Name, X-Actor-Role")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(pattern string, fn http.HandlerFunc) {
	http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn))))
}

func SetupRoutes(
	productHandler *handlers.ProductHandler,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	packingListHandler *handlers.PackingListHandler,
	pricingHandler *handlers.PricingHandler,
	brandHandler *handlers.BrandHandler,
	statusUploadHandler *handlers.StatusUploadHandler,
	configHandler *handlers.ConfigHandler,
	exportHandler *handlers.ExportHandler,
	importHandler *handlers.ImportHandler,
) {
	// Product routes
	handle("/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			productHandler.List(w, r)
		case http.MethodPost:
			productHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/products/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(r.URL.Path[len("/products/"):], "/")
		switch rest {
		case "pending-approvals":
			productHandler.PendingApprovals(w, r)
			return
		case "import":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			importHandler.ProductsXLSX(w, r)
			return
		}
		parts := strings.SplitN(rest, "/", 2)
		id := parts[0]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if len(parts) == 2 {
			switch parts[1] {
			case "approve":
				productHandler.Approve(w, r, id)
			case "reject":
				productHandler.Reject(w, r, id)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
			return
		}
		switch r.Method {
		case http.MethodGet:
			productHandler.Get(w, r, id)
		case http.MethodPut:
			productHandler.Update(w, r, id)
		case http.MethodDelete:
			productHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Customer routes
	handle("/customers", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			customerHandler.List(w, r)
		case http.MethodPost:
			customerHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/customers/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(r.URL.Path[len("/customers/"):], "/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			customerHandler.Get(w, r, id)
		case http.MethodPut:
			customerHandler.Update(w, r, id)
		case http.MethodDelete:
			customerHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Order routes
	handle("/orders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			orderHandler.List(w, r)
		case http.MethodPost:
			orderHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/orders/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(r.URL.Path[len("/orders/"):], "/")
		parts := strings.SplitN(rest, "/", 2)
		id := parts[0]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if len(parts) == 2 {
			if parts[1] == "status" {
				switch r.Method {
				case http.MethodPut, http.MethodPatch:
					orderHandler.UpdateStatus(w, r, id)
				default:
					w.WriteHeader(http.StatusMethodNotAllowed)
				}
				return
			}
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			orderHandler.Get(w, r, id)
		case http.MethodPut:
			orderHandler.Update(w, r, id)
		case http.MethodDelete:
			orderHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Invoice routes
	handle("/invoices", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			invoiceHandler.List(w, r)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	handle("/invoices/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(r.URL.Path[len("/invoices/"):], "/")
		if rest == "generate" {
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			invoiceHandler.Generate(w, r)
			return
		}
		parts := strings.SplitN(rest, "/", 2)
		id := parts[0]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if len(parts) == 2 {
			if parts[1] == "pdf" {
				invoiceHandler.PDF(w, r, id)
				return
			}
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			invoiceHandler.Get(w, r, id)
		case http.MethodPut:
			invoiceHandler.Update(w, r, id)
		case http.MethodDelete:
			invoiceHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Packing list routes
	handle("/packing-lists", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			packingListHandler.List(w, r)
		case http.MethodPost:
			packingListHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/packing-lists/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.Trim(r.URL.Path[len("/packing-lists/"):], "/")
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			packingListHandler.Get(w, r, id)
		case http.MethodPut:
			packingListHandler.Update(w, r, id)
		case http.MethodDelete:
			packingListHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Pricing routes
	handle("/product-pricing", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			pricingHandler.Create(w, r)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	handle("/product-pricing/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(r.URL.Path[len("/product-pricing/"):], "/")
		parts := strings.SplitN(rest, "/", 2)
		if parts[0] == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if parts[0] == "product" {
			if len(parts) != 2 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			sub := strings.SplitN(parts[1], "/", 2)
			productID := sub[0]
			if len(sub) == 2 && sub[1] == "active" {
				pricingHandler.Active(w, r, productID)
				return
			}
			pricingHandler.History(w, r, productID)
			return
		}
		id := parts[0]
		if len(parts) == 2 && parts[1] == "approve" {
			pricingHandler.Approve(w, r, id)
			return
		}
		switch r.Method {
		case http.MethodPut:
			pricingHandler.Update(w, r, id)
		case http.MethodDelete:
			pricingHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Brand registration routes
	handle("/brand-registrations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			brandHandler.List(w, r)
		case http.MethodPost:
			brandHandler.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	handle("/brand-registrations/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(r.URL.Path[len("/brand-registrations/"):], "/")
		switch rest {
		case "search":
			brandHandler.Search(w, r)
			return
		case "fps/sync-all":
			if r.Method != http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			brandHandler.SyncAllPending(w, r)
			return
		}
		parts := strings.SplitN(rest, "/", 2)
		id := parts[0]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if len(parts) == 2 {
			switch parts[1] {
			case "approve":
				brandHandler.Approve(w, r, id)
			case "reject":
				brandHandler.Reject(w, r, id)
			case "fps/status":
				brandHandler.FPSStatus(w, r, id)
			case "fps/sync":
				brandHandler.SyncFPS(w, r, id)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
			return
		}
		switch r.Method {
		case http.MethodGet:
			brandHandler.Get(w, r, id)
		case http.MethodPut:
			brandHandler.Update(w, r, id)
		case http.MethodDelete:
			brandHandler.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Status upload routes
	handle("/status-upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			statusUploadHandler.Upload(w, r)
			return
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	handle("/status-upload/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(r.URL.Path[len("/status-upload/"):], "/")
		switch {
		case rest == "summary":
			statusUploadHandler.Summary(w, r)
		case rest == "data":
			statusUploadHandler.Data(w, r)
		case rest == "dashboard":
			statusUploadHandler.Dashboard(w, r)
		case strings.HasPrefix(rest, "sheet/"):
			statusUploadHandler.Sheet(w, r, rest[len("sheet/"):])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	// Static export configuration, reachable both under /config/ and at the
	// bare top-level names older clients use.
	handle("/config/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.Trim(r.URL.Path[len("/config/"):], "/")
		configHandler.Serve(w, r, name)
	})
	for _, name := range []string{"ports", "shipping-methods", "incoterms", "exchange-rates", "payment-terms"} {
		handle("/"+name, func(w http.ResponseWriter, r *http.Request) {
			configHandler.Serve(w, r, name)
		})
	}

	// Spreadsheet export
	handle("/export/products.xlsx", exportHandler.ProductsXLSX)
}
