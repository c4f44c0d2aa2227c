// Handles order CRUD and status transitions.

package handlers

import (
	"context"
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// OrderHandler handles order requests.
type OrderHandler struct {
	svc *Services
	cfg *Config
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc *Services, cfg *Config) *OrderHandler {
	return &OrderHandler{svc: svc, cfg: cfg}
}

// List returns a filtered, ranked, paginated order page.
func (h *OrderHandler) List(ctx context.Context, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	filters := catalog.OrderFilters{
		Status:  req.Status,
		Payment: req.Payment,
		From:    req.From,
		To:      req.To,
	}
	page := h.svc.Orders.ResolveQuery(listToQuery(req.ListQuery, filters))
	return &dto.ListOrdersResponse{
		Data: ordersToResponse(page.Items),
		Meta: pageMeta(page),
	}, nil
}

// Get returns a single order.
func (h *OrderHandler) Get(ctx context.Context, req *dto.GetOrderRequest) (*dto.OrderResponse, error) {
	o, err := h.svc.Orders.Get(req.ID)
	if err != nil {
		return nil, mapCatalogError(err, "Order")
	}
	resp := orderToResponse(o)
	return &resp, nil
}

// buildItems converts request line items, linking customers where known.
func buildItems(inputs []dto.OrderItemInput) []catalog.OrderItem {
	items := make([]catalog.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, catalog.OrderItem{
			ProductID: in.ProductID,
			Name:      in.Name,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
			Price:     in.Price,
		})
	}
	return items
}

// Create creates an order with the next sequential id and computed totals.
func (h *OrderHandler) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := checkRowQuota(h.svc.Orders.Len(), h.cfg.Quotas.MaxRowsPerTable); err != nil {
		return nil, err
	}
	taxPercent := h.svc.Settings.Business().TaxPercent
	o, err := h.svc.Orders.Create(func(id string) *catalog.Order {
		o := &catalog.Order{
			ID:            id,
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Items:         buildItems(req.Items),
			Shipping:      req.Shipping,
			Status:        catalog.OrderPending,
			Payment:       catalog.PaymentPending,
			PaymentMethod: req.PaymentMethod,
			Created:       time.Now(),
		}
		if req.Payment != "" {
			o.Payment = req.Payment
		}
		o.ComputeTotals(taxPercent)
		return o
	})
	if err != nil {
		return nil, mapCatalogError(err, "Order")
	}
	h.recordCustomerPurchase(o)
	resp := orderToResponse(o)
	return &resp, nil
}

// Update replaces all mutable order fields and recomputes totals.
func (h *OrderHandler) Update(ctx context.Context, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	taxPercent := h.svc.Settings.Business().TaxPercent
	o, err := h.svc.Orders.Update(req.ID, func(o *catalog.Order) error {
		o.CustomerID = req.CustomerID
		o.CustomerName = req.CustomerName
		o.CustomerPhone = req.CustomerPhone
		o.Items = buildItems(req.Items)
		o.Shipping = req.Shipping
		if req.Status != "" {
			o.Status = req.Status
		}
		if req.Payment != "" {
			o.Payment = req.Payment
		}
		o.PaymentMethod = req.PaymentMethod
		o.Modified = time.Now()
		o.ComputeTotals(taxPercent)
		return nil
	})
	if err != nil {
		return nil, mapCatalogError(err, "Order")
	}
	resp := orderToResponse(o)
	return &resp, nil
}

// PatchStatus changes only the order or payment status.
func (h *OrderHandler) PatchStatus(ctx context.Context, req *dto.PatchOrderStatusRequest) (*dto.OrderResponse, error) {
	if req.Status != "" && !validOrderStatus(req.Status) {
		return nil, dto.BadRequest("Unknown order status: " + req.Status)
	}
	if req.Payment != "" && !validPaymentStatus(req.Payment) {
		return nil, dto.BadRequest("Unknown payment status: " + req.Payment)
	}
	o, err := h.svc.Orders.Update(req.ID, func(o *catalog.Order) error {
		if req.Status != "" {
			o.Status = req.Status
		}
		if req.Payment != "" {
			o.Payment = req.Payment
		}
		o.Modified = time.Now()
		return nil
	})
	if err != nil {
		return nil, mapCatalogError(err, "Order")
	}
	resp := orderToResponse(o)
	return &resp, nil
}

// Delete removes an order.
func (h *OrderHandler) Delete(ctx context.Context, req *dto.DeleteOrderRequest) (*dto.OkResponse, error) {
	if err := h.svc.Orders.Delete(req.ID); err != nil {
		return nil, mapCatalogError(err, "Order")
	}
	return &dto.OkResponse{Ok: true}, nil
}

// recordCustomerPurchase updates the customer's aggregates after a new
// order. Best effort: unknown customer ids are ignored.
func (h *OrderHandler) recordCustomerPurchase(o *catalog.Order) {
	if o.CustomerID == "" {
		return
	}
	_, _ = h.svc.Customers.Update(o.CustomerID, func(c *catalog.Customer) error {
		c.TotalOrders++
		c.TotalSpent += o.TotalAmount
		c.LastOrder = o.Created
		return nil
	})
}

func validOrderStatus(s string) bool {
	switch s {
	case catalog.OrderPending, catalog.OrderProcessing, catalog.OrderShipped, catalog.OrderDelivered, catalog.OrderCancelled:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch s {
	case catalog.PaymentPaid, catalog.PaymentPending, catalog.PaymentFailed:
		return true
	}
	return false
}
