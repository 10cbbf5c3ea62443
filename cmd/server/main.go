package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nagraajm/bls-exportpro/config"
	"github.com/nagraajm/bls-exportpro/db"
	"github.com/nagraajm/bls-exportpro/db/sqlite"
	"github.com/nagraajm/bls-exportpro/handlers"
	"github.com/nagraajm/bls-exportpro/ingest"
	"github.com/nagraajm/bls-exportpro/repository"
	"github.com/nagraajm/bls-exportpro/routes"
	"github.com/nagraajm/bls-exportpro/services"
)

func main() {
	// Load config from .env or system environment
	cfg := config.LoadConfig()

	var productRepo repository.ProductRepository
	var customerRepo repository.CustomerRepository
	var orderRepo repository.OrderRepository
	var invoiceRepo repository.InvoiceRepository
	var packingRepo repository.PackingListRepository

	switch db.StoreType(cfg.StoreType) {
	case db.SQLite:
		db.RunMigrations(cfg.SQLitePath)

		sq := sqlite.NewSQLiteDB(cfg.SQLitePath)
		if err := sq.Connect(); err != nil {
			logrus.Fatalf("sqlite connect: %v", err)
		}
		defer sq.Disconnect()

		productRepo = repository.NewProductSQLiteRepo(sq.Conn)
		customerRepo = repository.NewCustomerSQLiteRepo(sq.Conn)
		orderRepo = repository.NewOrderSQLiteRepo(sq.Conn)
		invoiceRepo = repository.NewInvoiceSQLiteRepo(sq.Conn)
		packingRepo = repository.NewPackingListSQLiteRepo(sq.Conn)

	case db.JSONFile:
		productRepo = repository.NewProductJSONRepo(cfg.DataDir)
		customerRepo = repository.NewCustomerJSONRepo(cfg.DataDir)
		orderRepo = repository.NewOrderJSONRepo(cfg.DataDir)
		invoiceRepo = repository.NewInvoiceJSONRepo(cfg.DataDir)
		packingRepo = repository.NewPackingListJSONRepo(cfg.DataDir)

	default:
		logrus.Fatalf("STORE_TYPE not supported: %s", cfg.StoreType)
	}

	// Registration tracking and pricing always live in flat files; they are
	// shared with the regulatory tooling that reads the data dir directly.
	brandRepo := repository.NewBrandRegistrationJSONRepo(cfg.DataDir)
	fpsRepo := repository.NewFPSIntegrationJSONRepo(cfg.DataDir)
	pricingRepo := repository.NewPricingJSONRepo(cfg.DataDir)

	// Services
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo, productRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, orderRepo, customerRepo, productRepo)
	packingService := services.NewPackingListService(packingRepo, invoiceRepo, productRepo)
	pricingService := services.NewPricingService(pricingRepo, productRepo)
	brandService := services.NewBrandService(brandRepo, fpsRepo)
	ingestService := ingest.NewService(cfg.DataDir)

	// Handlers
	productHandler := &handlers.ProductHandler{Service: productService, Repo: productRepo}
	customerHandler := &handlers.CustomerHandler{Repo: customerRepo}
	orderHandler := &handlers.OrderHandler{Service: orderService}
	invoiceHandler := &handlers.InvoiceHandler{Service: invoiceService, PDFDir: cfg.PDFDir}
	packingHandler := &handlers.PackingListHandler{Service: packingService}
	pricingHandler := &handlers.PricingHandler{Service: pricingService}
	brandHandler := &handlers.BrandHandler{Service: brandService}
	statusUploadHandler := &handlers.StatusUploadHandler{Service: ingestService, UploadDir: cfg.UploadDir}
	configHandler := &handlers.ConfigHandler{DataDir: cfg.DataDir}
	exportHandler := &handlers.ExportHandler{Products: productRepo}
	importHandler := &handlers.ImportHandler{Service: productService, UploadDir: cfg.UploadDir}

	routes.SetupRoutes(
		productHandler,
		customerHandler,
		orderHandler,
		invoiceHandler,
		packingHandler,
		pricingHandler,
		brandHandler,
		statusUploadHandler,
		configHandler,
		exportHandler,
		importHandler,
	)

	logrus.Infof("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logrus.Fatal(err)
	}
}
