package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/chembot/admin/internal/server/dto"
)

// --- Products ---

// ProductListOptions filters a product listing.
type ProductListOptions struct {
	ListOptions
	Status  string
	InStock bool
}

// ListProducts returns a page of products.
func (c *Client) ListProducts(ctx context.Context, opts ProductListOptions) (*dto.ListProductsResponse, error) {
	v := opts.values()
	if opts.Status != "" {
		v.Set("status", opts.Status)
	}
	if opts.InStock {
		v.Set("in_stock", "true")
	}
	out := &dto.ListProductsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/products"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	out := &dto.ProductResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	out := &dto.ProductResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/products", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProduct replaces all mutable fields of a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	out := &dto.ProductResponse{}
	if err := c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchProduct updates a subset of product fields.
func (c *Client) PatchProduct(ctx context.Context, id string, req *dto.PatchProductRequest) (*dto.ProductResponse, error) {
	out := &dto.ProductResponse{}
	if err := c.do(ctx, http.MethodPatch, "/api/products/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
}

// SyncProducts re-seeds the product table from the upstream list.
func (c *Client) SyncProducts(ctx context.Context) (*dto.SyncProductsResponse, error) {
	out := &dto.SyncProductsResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/products/sync", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Orders ---

// OrderListOptions filters an order listing.
type OrderListOptions struct {
	ListOptions
	Status  string
	Payment string
	From    string
	To      string
}

// ListOrders returns a page of orders.
func (c *Client) ListOrders(ctx context.Context, opts OrderListOptions) (*dto.ListOrdersResponse, error) {
	v := opts.values()
	if opts.Status != "" {
		v.Set("status", opts.Status)
	}
	if opts.Payment != "" {
		v.Set("payment", opts.Payment)
	}
	if opts.From != "" {
		v.Set("from", opts.From)
	}
	if opts.To != "" {
		v.Set("to", opts.To)
	}
	out := &dto.ListOrdersResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/orders"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder returns a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	out := &dto.OrderResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOrder creates an order.
func (c *Client) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	out := &dto.OrderResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrder replaces all mutable fields of an order.
func (c *Client) UpdateOrder(ctx context.Context, id string, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	out := &dto.OrderResponse{}
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchOrderStatus changes the order or payment status.
func (c *Client) PatchOrderStatus(ctx context.Context, id string, req *dto.PatchOrderStatusRequest) (*dto.OrderResponse, error) {
	out := &dto.OrderResponse{}
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteOrder deletes an order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil)
}

// --- Customers ---

// CustomerListOptions filters a customer listing.
type CustomerListOptions struct {
	ListOptions
	Status string
}

// ListCustomers returns a page of customers.
func (c *Client) ListCustomers(ctx context.Context, opts CustomerListOptions) (*dto.ListCustomersResponse, error) {
	v := opts.values()
	if opts.Status != "" {
		v.Set("status", opts.Status)
	}
	out := &dto.ListCustomersResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/customers"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCustomer returns a single customer by ID.
func (c *Client) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	out := &dto.CustomerResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/customers/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCustomer creates a customer.
func (c *Client) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	out := &dto.CustomerResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/customers", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCustomer replaces all mutable fields of a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	out := &dto.CustomerResponse{}
	if err := c.do(ctx, http.MethodPut, "/api/customers/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchCustomer updates a subset of customer fields.
func (c *Client) PatchCustomer(ctx context.Context, id string, req *dto.PatchCustomerRequest) (*dto.CustomerResponse, error) {
	out := &dto.CustomerResponse{}
	if err := c.do(ctx, http.MethodPatch, "/api/customers/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCustomer deletes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/customers/"+url.PathEscape(id), nil, nil)
}

// --- Chats ---

// ChatListOptions filters a chat log listing.
type ChatListOptions struct {
	ListOptions
	Status    string
	Sentiment string
}

// ListChats returns a page of chat logs.
func (c *Client) ListChats(ctx context.Context, opts ChatListOptions) (*dto.ListChatsResponse, error) {
	v := opts.values()
	if opts.Status != "" {
		v.Set("status", opts.Status)
	}
	if opts.Sentiment != "" {
		v.Set("sentiment", opts.Sentiment)
	}
	out := &dto.ListChatsResponse{}
	if err := c.do(ctx, http.MethodGet, "/api/chats"+encodeQuery(v), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
