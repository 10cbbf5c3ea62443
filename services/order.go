package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nagraajm/bls-exportpro/models"
	"github.com/nagraajm/bls-exportpro/repository"
)

type OrderService struct {
	Orders    repository.OrderRepository
	Customers repository.CustomerRepository
	Products  repository.ProductRepository
}

func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
) *OrderService {
	return &OrderService{Orders: orders, Customers: customers, Products: products}
}

type OrderItemInput struct {
	ProductID   string          `json:"productId" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	Rate        decimal.Decimal `json:"rate"`
	BatchNumber string          `json:"batchNumber"`
	MfgDate     *time.Time      `json:"mfgDate"`
	ExpDate     *time.Time      `json:"expDate"`
}

type CreateOrderInput struct {
	CustomerID            string           `json:"customerId" validate:"required"`
	OrderNumber           string           `json:"orderNumber" validate:"required"`
	OrderDate             *time.Time       `json:"orderDate"`
	EstimatedShipmentDate *time.Time       `json:"estimatedShipmentDate"`
	Status                string           `json:"status" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	Items                 []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	IGST                  decimal.Decimal  `json:"igst"`
	Drawback              decimal.Decimal  `json:"drawback"`
	RODTEP                decimal.Decimal  `json:"rodtep"`
	Currency              string           `json:"currency" validate:"omitempty,oneof=INR USD"`
	ExchangeRate          decimal.Decimal  `json:"exchangeRate"`
}

// Create builds the order with computed line amounts and totals. Each item's
// amount is quantity x rate; the client-sent amounts are ignored.
func (s *OrderService) Create(in CreateOrderInput) (*models.Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	customer, err := s.Customers.FindByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, NotFound("Customer not found")
	}

	existing, err := s.Orders.FindByOrderNumber(in.OrderNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, Conflict("Order number already exists")
	}

	items, subtotal, err := s.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	status := models.OrderStatus(in.Status)
	if status == "" {
		status = models.OrderPending
	}
	orderDate := time.Now().UTC()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	exchangeRate := in.ExchangeRate
	if exchangeRate.IsZero() {
		exchangeRate = decimal.NewFromInt(1)
	}

	order := &models.Order{
		CustomerID:            in.CustomerID,
		OrderNumber:           in.OrderNumber,
		OrderDate:             orderDate,
		EstimatedShipmentDate: in.EstimatedShipmentDate,
		Status:                status,
		Subtotal:              subtotal,
		IGST:                  in.IGST,
		Drawback:              in.Drawback,
		RODTEP:                in.RODTEP,
		TotalAmount:           subtotal.Add(in.IGST),
		Currency:              currency,
		ExchangeRate:          exchangeRate,
		Items:                 items,
	}
	return s.Orders.Create(order)
}

func (s *OrderService) buildItems(inputs []OrderItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	subtotal := decimal.Zero
	for _, in := range inputs {
		product, err := s.Products.FindByID(in.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, NotFound("Product not found: " + in.ProductID)
		}

		rate := in.Rate
		if rate.IsZero() && product.UnitPrice != nil {
			rate = *product.UnitPrice
		}
		amount := rate.Mul(decimal.NewFromInt(int64(in.Quantity)))
		subtotal = subtotal.Add(amount)

		items = append(items, models.OrderItem{
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			Rate:        rate,
			Amount:      amount,
			BatchNumber: in.BatchNumber,
			MfgDate:     in.MfgDate,
			ExpDate:     in.ExpDate,
		})
	}
	return items, subtotal, nil
}

type UpdateOrderInput struct {
	EstimatedShipmentDate *time.Time       `json:"estimatedShipmentDate"`
	Status                *string          `json:"status" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	Items                 []OrderItemInput `json:"items" validate:"omitempty,min=1,dive"`
	IGST                  *decimal.Decimal `json:"igst"`
	Drawback              *decimal.Decimal `json:"drawback"`
	RODTEP                *decimal.Decimal `json:"rodtep"`
	ExchangeRate          *decimal.Decimal `json:"exchangeRate"`
}

// Update applies the partial input; replacing items recomputes the totals.
func (s *OrderService) Update(id string, in UpdateOrderInput) (*models.Order, error) {
	if err := validate.Struct(in); err != nil {
		return nil, Invalid(err.Error())
	}

	var items []models.OrderItem
	var subtotal decimal.Decimal
	if in.Items != nil {
		var err error
		items, subtotal, err = s.buildItems(in.Items)
		if err != nil {
			return nil, err
		}
	}

	order, err := s.Orders.Update(id, func(o *models.Order) {
		if in.EstimatedShipmentDate != nil {
			o.EstimatedShipmentDate = in.EstimatedShipmentDate
		}
		if in.Status != nil {
			o.Status = models.OrderStatus(*in.Status)
		}
		if in.IGST != nil {
			o.IGST = *in.IGST
		}
		if in.Drawback != nil {
			o.Drawback = *in.Drawback
		}
		if in.RODTEP != nil {
			o.RODTEP = *in.RODTEP
		}
		if in.ExchangeRate != nil {
			o.ExchangeRate = *in.ExchangeRate
		}
		if in.Items != nil {
			o.Items = items
			o.Subtotal = subtotal
		}
		o.TotalAmount = o.Subtotal.Add(o.IGST)
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NotFound("Order not found")
	}
	return order, nil
}

// UpdateStatus moves the order to a new status. Any of the known statuses is
// reachable from any other; the back office corrects mistakes this way.
func (s *OrderService) UpdateStatus(id, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, Invalid("Invalid order status")
	}
	order, err := s.Orders.Update(id, func(o *models.Order) {
		o.Status = models.OrderStatus(status)
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NotFound("Order not found")
	}
	return order, nil
}

// Get returns the order with its customer and item products attached.
func (s *OrderService) Get(id string) (*models.Order, error) {
	order, err := s.Orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, NotFound("Order not found")
	}
	if err := s.hydrate(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) hydrate(order *models.Order) error {
	customer, err := s.Customers.FindByID(order.CustomerID)
	if err != nil {
		return err
	}
	order.Customer = customer

	for i := range order.Items {
		product, err := s.Products.FindByID(order.Items[i].ProductID)
		if err != nil {
			return err
		}
		order.Items[i].Product = product
	}
	return nil
}

type OrderFilter struct {
	Status     string
	CustomerID string
}

func (s *OrderService) List(page, limit int, filter OrderFilter) (repository.Page[*models.Order], error) {
	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return repository.Page[*models.Order]{}, Invalid("Invalid order status")
	}
	return s.Orders.Paginate(page, limit, func(o *models.Order) bool {
		if filter.Status != "" && string(o.Status) != filter.Status {
			return false
		}
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			return false
		}
		return true
	})
}

func (s *OrderService) Delete(id string) error {
	deleted, err := s.Orders.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFound("Order not found")
	}
	return nil
}
