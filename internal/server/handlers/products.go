// Handles product CRUD and inventory sync.

package handlers

import (
	"context"
	"time"

	"github.com/chembot/admin/internal/catalog"
	"github.com/chembot/admin/internal/server/dto"
)

// ProductHandler handles product requests.
type ProductHandler struct {
	svc *Services
	cfg *Config
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc *Services, cfg *Config) *ProductHandler {
	return &ProductHandler{svc: svc, cfg: cfg}
}

// lowStockThreshold returns the configured low stock boundary.
func (h *ProductHandler) lowStockThreshold() int {
	return h.svc.Settings.Business().LowStockThreshold
}

// List returns a filtered, ranked, paginated product page.
func (h *ProductHandler) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	filters := catalog.ProductFilters{
		Status:         req.Status,
		HideOutOfStock: req.InStock == "true",
	}
	page := h.svc.Products.ResolveQuery(listToQuery(req.ListQuery, filters))
	return &dto.ListProductsResponse{
		Data: productsToResponse(page.Items),
		Meta: pageMeta(page),
	}, nil
}

// Get returns a single product.
func (h *ProductHandler) Get(ctx context.Context, req *dto.GetProductRequest) (*dto.ProductResponse, error) {
	p, err := h.svc.Products.Get(req.ID)
	if err != nil {
		return nil, mapCatalogError(err, "Product")
	}
	resp := productToResponse(p)
	return &resp, nil
}

// Create creates a product with the next sequential id.
func (h *ProductHandler) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := checkRowQuota(h.svc.Products.Len(), h.cfg.Quotas.MaxRowsPerTable); err != nil {
		return nil, err
	}
	threshold := h.lowStockThreshold()
	p, err := h.svc.Products.Create(func(id string) *catalog.Product {
		return &catalog.Product{
			ID:      id,
			Name:    req.Name,
			Formula: req.Formula,
			Stock:   req.Stock,
			Unit:    req.Unit,
			Price:   req.Price,
			Status:  catalog.StatusForStock(req.Stock, threshold),
			Created: time.Now(),
		}
	})
	if err != nil {
		return nil, mapCatalogError(err, "Product")
	}
	resp := productToResponse(p)
	return &resp, nil
}

// Update replaces all mutable product fields.
func (h *ProductHandler) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	threshold := h.lowStockThreshold()
	var prevStatus string
	p, err := h.svc.Products.Update(req.ID, func(p *catalog.Product) error {
		prevStatus = p.Status
		p.Name = req.Name
		p.Formula = req.Formula
		p.Stock = req.Stock
		p.Unit = req.Unit
		p.Price = req.Price
		p.Status = catalog.StatusForStock(req.Stock, threshold)
		p.Modified = time.Now()
		return nil
	})
	if err != nil {
		return nil, mapCatalogError(err, "Product")
	}
	h.notifyStock(ctx, p, prevStatus)
	resp := productToResponse(p)
	return &resp, nil
}

// Patch updates the fields present in the request.
func (h *ProductHandler) Patch(ctx context.Context, req *dto.PatchProductRequest) (*dto.ProductResponse, error) {
	threshold := h.lowStockThreshold()
	var prevStatus string
	p, err := h.svc.Products.Update(req.ID, func(p *catalog.Product) error {
		prevStatus = p.Status
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Formula != nil {
			p.Formula = *req.Formula
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
			p.Status = catalog.StatusForStock(p.Stock, threshold)
		}
		p.Modified = time.Now()
		return nil
	})
	if err != nil {
		return nil, mapCatalogError(err, "Product")
	}
	h.notifyStock(ctx, p, prevStatus)
	resp := productToResponse(p)
	return &resp, nil
}

// Delete removes a product.
func (h *ProductHandler) Delete(ctx context.Context, req *dto.DeleteProductRequest) (*dto.OkResponse, error) {
	if err := h.svc.Products.Delete(req.ID); err != nil {
		return nil, mapCatalogError(err, "Product")
	}
	return &dto.OkResponse{Ok: true}, nil
}

// Sync restores the product table to the upstream seed list.
func (h *ProductHandler) Sync(ctx context.Context, req *dto.SyncProductsRequest) (*dto.SyncProductsResponse, error) {
	seed := catalog.SeedProducts()
	if err := h.svc.ProductTable.Replace(seed); err != nil {
		return nil, dto.InternalWithError("Failed to sync products", err)
	}
	return &dto.SyncProductsResponse{Synced: len(seed)}, nil
}

// notifyStock fires a push alert when the stock status worsened.
func (h *ProductHandler) notifyStock(ctx context.Context, p *catalog.Product, prevStatus string) {
	if h.svc.Notifier != nil && p.Status != prevStatus {
		h.svc.Notifier.ProductStockChanged(ctx, p, prevStatus)
	}
}
