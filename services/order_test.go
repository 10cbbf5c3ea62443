package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

type orderFixture struct {
	svc      *OrderService
	customer *models.Customer
	product  *models.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	dir := t.TempDir()

	orders := repository.NewOrderJSONRepo(dir)
	customers := repository.NewCustomerJSONRepo(dir)
	products := repository.NewProductJSONRepo(dir)

	customer, err := customers.Create(&models.Customer{CompanyName: "Medex Trading"})
	if err != nil {
		t.Fatal(err)
	}
	unitPrice := decimal.NewFromInt(7)
	product, err := products.Create(&models.Product{BrandName: "Paracet-500", GenericName: "Paracetamol", UnitPrice: &unitPrice})
	if err != nil {
		t.Fatal(err)
	}

	return &orderFixture{
		svc:      NewOrderService(orders, customers, products),
		customer: customer,
		product:  product,
	}
}

func TestOrderCreateComputesAmounts(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-001",
		IGST:        decimal.NewFromInt(36),
		Items: []OrderItemInput{
			{ProductID: f.product.ID, Quantity: 10, Rate: decimal.NewFromInt(10)},
			{ProductID: f.product.ID, Quantity: 5, Rate: decimal.NewFromInt(20)},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !order.Items[0].Amount.Equal(decimal.NewFromInt(100)) || !order.Items[1].Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("line amounts wrong: %v / %v", order.Items[0].Amount, order.Items[1].Amount)
	}
	if !order.Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("subtotal = %v, want 200", order.Subtotal)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(236)) {
		t.Fatalf("totalAmount = %v, want 236", order.TotalAmount)
	}
	if order.Status != models.OrderPending {
		t.Fatalf("status = %s, want pending", order.Status)
	}
}

func TestOrderCreateFallsBackToProductUnitPrice(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-002",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 3}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !order.Items[0].Rate.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("rate = %v, want the product unit price", order.Items[0].Rate)
	}
	if !order.Subtotal.Equal(decimal.NewFromInt(21)) {
		t.Fatalf("subtotal = %v, want 21", order.Subtotal)
	}
}

func TestOrderCreateDuplicateNumberConflict(t *testing.T) {
	f := newOrderFixture(t)
	in := CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-003",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 1}},
	}

	if _, err := f.svc.Create(in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := f.svc.Create(in)
	assertAppError(t, err, 400)
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Create(CreateOrderInput{
		CustomerID:  "missing",
		OrderNumber: "ORD-004",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 1}},
	})
	assertAppError(t, err, 404)
}

func TestOrderCreateRejectsInvalidStatus(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Create(CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-005",
		Status:      "teleported",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 1}},
	})
	assertAppError(t, err, 400)
}

func TestOrderUpdateItemsRecomputesTotals(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.Create(CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-006",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 10, Rate: decimal.NewFromInt(10)}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := f.svc.Update(order.ID, UpdateOrderInput{
		Items: []OrderItemInput{{ProductID: f.product.ID, Quantity: 2, Rate: decimal.NewFromInt(50)}},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Subtotal.Equal(decimal.NewFromInt(100)) || !updated.TotalAmount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("totals not recomputed: %v / %v", updated.Subtotal, updated.TotalAmount)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.Create(CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-008",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := f.svc.UpdateStatus(order.ID, "shipped")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.OrderShipped {
		t.Fatalf("status = %s, want shipped", updated.Status)
	}

	_, err = f.svc.UpdateStatus(order.ID, "teleported")
	assertAppError(t, err, 400)

	_, err = f.svc.UpdateStatus("missing", "shipped")
	assertAppError(t, err, 404)
}

func TestOrderGetHydratesCustomerAndProducts(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.Create(CreateOrderInput{
		CustomerID:  f.customer.ID,
		OrderNumber: "ORD-007",
		Items:       []OrderItemInput{{ProductID: f.product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := f.svc.Get(order.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Customer == nil || got.Customer.CompanyName != "Medex Trading" {
		t.Fatal("customer not attached")
	}
	if got.Items[0].Product == nil || got.Items[0].Product.BrandName != "Paracet-500" {
		t.Fatal("item product not attached")
	}
}
