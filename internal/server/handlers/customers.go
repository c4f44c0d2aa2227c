// Handles customer CRUD.

package handlers

import (
	"context"
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// CustomerHandler handles customer requests.
type CustomerHandler struct {
	svc *Services
	cfg *Config
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(svc *Services, cfg *Config) *CustomerHandler {
	return &CustomerHandler{svc: svc, cfg: cfg}
}

// List returns a filtered, ranked, paginated customer page.
func (h *CustomerHandler) List(ctx context.Context, req *dto.ListCustomersRequest) (*dto.ListCustomersResponse, error) {
	page := h.svc.Customers.ResolveQuery(listToQuery(req.ListQuery, catalog.CustomerFilters{Status: req.Status}))
	data := make([]dto.CustomerResponse, 0, len(page.Items))
	for _, c := range page.Items {
		data = append(data, customerToResponse(c))
	}
	return &dto.ListCustomersResponse{Data: data, Meta: pageMeta(page)}, nil
}

// Get returns a single customer.
func (h *CustomerHandler) Get(ctx context.Context, req *dto.GetCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := h.svc.Customers.Get(req.ID)
	if err != nil {
		return nil, mapCatalogError(err, "Customer")
	}
	resp := customerToResponse(c)
	return &resp, nil
}

// Create creates a customer with the next sequential id.
func (h *CustomerHandler) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := checkRowQuota(h.svc.Customers.Len(), h.cfg.Quotas.MaxRowsPerTable); err != nil {
		return nil, err
	}
	c, err := h.svc.Customers.Create(func(id string) *catalog.Customer {
		return &catalog.Customer{
			ID:      id,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
			Address: req.Address,
			Status:  catalog.CustomerActive,
			Joined:  time.Now(),
		}
	})
	if err != nil {
		return nil, mapCatalogError(err, "Customer")
	}
	resp := customerToResponse(c)
	return &resp, nil
}

// Update replaces all mutable customer fields.
func (h *CustomerHandler) Update(ctx context.Context, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := h.svc.Customers.Update(req.ID, func(c *catalog.Customer) error {
		c.Name = req.Name
		c.Email = req.Email
		c.Phone = req.Phone
		c.Company = req.Company
		c.Address = req.Address
		if req.Status != "" {
			c.Status = req.Status
		}
		return nil
	})
	if err != nil {
		return nil, mapCatalogError(err, "Customer")
	}
	resp := customerToResponse(c)
	return &resp, nil
}

// Patch updates the fields present in the request.
func (h *CustomerHandler) Patch(ctx context.Context, req *dto.PatchCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := h.svc.Customers.Update(req.ID, func(c *catalog.Customer) error {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Company != nil {
			c.Company = *req.Company
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		return nil
	})
	if err != nil {
		return nil, mapCatalogError(err, "Customer")
	}
	resp := customerToResponse(c)
	return &resp, nil
}

// Delete removes a customer.
func (h *CustomerHandler) Delete(ctx context.Context, req *dto.DeleteCustomerRequest) (*dto.OkResponse, error) {
	if err := h.svc.Customers.Delete(req.ID); err != nil {
		return nil, mapCatalogError(err, "Customer")
	}
	return &dto.OkResponse{Ok: true}, nil
}
