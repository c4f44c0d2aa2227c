package dto

// --- Auth ---

// LoginRequest is a request to log in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the login request fields.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return MissingField("email")
	}
	if r.Password == "" {
		return MissingField("password")
	}
	return nil
}

// LogoutRequest is a request to log out.
type LogoutRequest struct{}

// Validate is a no-op for LogoutRequest.
func (r *LogoutRequest) Validate() error { return nil }

// GetMeRequest is a request to get current user info.
type GetMeRequest struct{}

// Validate is a no-op for GetMeRequest.
func (r *GetMeRequest) Validate() error { return nil }

// UpdateUserSettingsRequest updates per-user preferences.
type UpdateUserSettingsRequest struct {
	Theme    string `json:"theme,omitempty"`
	Language string `json:"language,omitempty"`
}

// Validate validates the user settings request fields.
func (r *UpdateUserSettingsRequest) Validate() error {
	if r.Theme != "" && r.Theme != "light" && r.Theme != "dark" {
		return BadRequest("theme must be light or dark")
	}
	return nil
}

// --- Listing ---

// ListQuery carries the shared list parameters for search, filter and
// pagination. Embedded by the per-entity list requests.
type ListQuery struct {
	Q     string `json:"-" query:"q"`
	Page  int    `json:"-" query:"page"`
	Limit int    `json:"-" query:"limit"`
}

// Validate validates the shared list parameters.
func (r *ListQuery) Validate() error {
	if r.Page < 0 {
		return BadRequest("page must be positive")
	}
	if r.Limit < 0 {
		return BadRequest("limit must be positive")
	}
	return nil
}

// --- Products ---

// ListProductsRequest is a request to list products.
type ListProductsRequest struct {
	ListQuery
	Status  string `json:"-" query:"status"`
	InStock string `json:"-" query:"in_stock"`
}

// GetProductRequest is a request to get a single product.
type GetProductRequest struct {
	ID string `path:"id"`
}

// Validate validates the get product request fields.
func (r *GetProductRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return nil
}

// CreateProductRequest is a request to create a product.
type CreateProductRequest struct {
	Name    string `json:"name"`
	Formula string `json:"formula,omitempty"`
	Stock   int    `json:"stock"`
	Unit    string `json:"unit,omitempty"`
	Price   int    `json:"price"`
}

// Validate validates the create product request fields.
func (r *CreateProductRequest) Validate() error {
	if r.Name == "" {
		return MissingField("name")
	}
	return nil
}

// UpdateProductRequest replaces all mutable product fields.
type UpdateProductRequest struct {
	ID      string `path:"id" json:"-"`
	Name    string `json:"name"`
	Formula string `json:"formula,omitempty"`
	Stock   int    `json:"stock"`
	Unit    string `json:"unit,omitempty"`
	Price   int    `json:"price"`
}

// Validate validates the update product request fields.
func (r *UpdateProductRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	if r.Name == "" {
		return MissingField("name")
	}
	return nil
}

// PatchProductRequest updates a subset of product fields. Nil pointers
// leave the field unchanged.
type PatchProductRequest struct {
	ID      string  `path:"id" json:"-"`
	Name    *string `json:"name,omitempty"`
	Formula *string `json:"formula,omitempty"`
	Stock   *int    `json:"stock,omitempty"`
	Unit    *string `json:"unit,omitempty"`
	Price   *int    `json:"price,omitempty"`
}

// Validate validates the patch product request fields.
func (r *PatchProductRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return nil
}

// DeleteProductRequest is a request to delete a product.
type DeleteProductRequest = GetProductRequest

// SyncProductsRequest re-seeds the product table from the upstream list.
type SyncProductsRequest struct{}

// Validate is a no-op for SyncProductsRequest.
func (r *SyncProductsRequest) Validate() error { return nil }

// --- Orders ---

// ListOrdersRequest is a request to list orders.
type ListOrdersRequest struct {
	ListQuery
	Status  string `json:"-" query:"status"`
	Payment string `json:"-" query:"payment"`
	From    string `json:"-" query:"from"`
	To      string `json:"-" query:"to"`
}

// GetOrderRequest is a request to get a single order.
type GetOrderRequest struct {
	ID string `path:"id"`
}

// Validate validates the get order request fields.
func (r *GetOrderRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return nil
}

// OrderItemInput is a line item in a create or update order request.
type OrderItemInput struct {
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit,omitempty"`
	Price     int    `json:"price"`
}

// CreateOrderRequest is a request to create an order.
type CreateOrderRequest struct {
	CustomerID    string           `json:"customerId,omitempty"`
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone,omitempty"`
	Items         []OrderItemInput `json:"items"`
	Shipping      int              `json:"shipping"`
	Payment       string           `json:"payment,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
}

// Validate validates the create order request fields.
func (r *CreateOrderRequest) Validate() error {
	if r.CustomerName == "" {
		return MissingField("customerName")
	}
	if len(r.Items) == 0 {
		return MissingField("items")
	}
	for _, item := range r.Items {
		if item.Name == "" {
			return MissingField("items.name")
		}
		if item.Quantity <= 0 {
			return BadRequest("item quantity must be positive")
		}
	}
	return nil
}

// UpdateOrderRequest replaces all mutable order fields.
type UpdateOrderRequest struct {
	ID string `path:"id" json:"-"`
	CreateOrderRequest
	Status string `json:"status,omitempty"`
}

// Validate validates the update order request fields.
func (r *UpdateOrderRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return r.CreateOrderRequest.Validate()
}

// PatchOrderStatusRequest changes only the order or payment status.
type PatchOrderStatusRequest struct {
	ID      string `path:"id" json:"-"`
	Status  string `json:"status,omitempty"`
	Payment string `json:"payment,omitempty"`
}

// Validate validates the patch order status request fields.
func (r *PatchOrderStatusRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	if r.Status == "" && r.Payment == "" {
		return MissingField("status or payment")
	}
	return nil
}

// DeleteOrderRequest is a request to delete an order.
type DeleteOrderRequest = GetOrderRequest

// --- Customers ---

// ListCustomersRequest is a request to list customers.
type ListCustomersRequest struct {
	ListQuery
	Status string `json:"-" query:"status"`
}

// GetCustomerRequest is a request to get a single customer.
type GetCustomerRequest struct {
	ID string `path:"id"`
}

// Validate validates the get customer request fields.
func (r *GetCustomerRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return nil
}

// CreateCustomerRequest is a request to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
}

// Validate validates the create customer request fields.
func (r *CreateCustomerRequest) Validate() error {
	if r.Name == "" {
		return MissingField("name")
	}
	return nil
}

// UpdateCustomerRequest replaces all mutable customer fields.
type UpdateCustomerRequest struct {
	ID string `path:"id" json:"-"`
	CreateCustomerRequest
	Status string `json:"status,omitempty"`
}

// Validate validates the update customer request fields.
func (r *UpdateCustomerRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return r.CreateCustomerRequest.Validate()
}

// PatchCustomerRequest updates a subset of customer fields.
type PatchCustomerRequest struct {
	ID      string  `path:"id" json:"-"`
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address *string `json:"address,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Validate validates the patch customer request fields.
func (r *PatchCustomerRequest) Validate() error {
	if r.ID == "" {
		return MissingField("id")
	}
	return nil
}

// DeleteCustomerRequest is a request to delete a customer.
type DeleteCustomerRequest = GetCustomerRequest

// --- Chats ---

// ListChatsRequest is a request to list chat logs.
type ListChatsRequest struct {
	ListQuery
	Status    string `json:"-" query:"status"`
	Sentiment string `json:"-" query:"sentiment"`
}

// --- Dashboard ---

// GetDashboardStatsRequest is a request for dashboard summary stats.
type GetDashboardStatsRequest struct{}

// Validate is a no-op for GetDashboardStatsRequest.
func (r *GetDashboardStatsRequest) Validate() error { return nil }

// GetDashboardChartsRequest is a request for dashboard chart series.
type GetDashboardChartsRequest struct {
	Days int `json:"-" query:"days"`
}

// Validate validates the dashboard charts request fields.
func (r *GetDashboardChartsRequest) Validate() error {
	if r.Days < 0 {
		return BadRequest("days must be positive")
	}
	return nil
}

// GetDashboardInsightsRequest is a request for projections and
// recommendations.
type GetDashboardInsightsRequest struct {
	Days int `json:"-" query:"days"`
}

// Validate validates the dashboard insights request fields.
func (r *GetDashboardInsightsRequest) Validate() error {
	if r.Days < 0 {
		return BadRequest("days must be positive")
	}
	return nil
}

// --- Reports ---

// SalesReportRequest is a request for the sales report.
type SalesReportRequest struct {
	From string `json:"-" query:"from"`
	To   string `json:"-" query:"to"`
}

// Validate is a no-op for SalesReportRequest; unparsable bounds are ignored.
func (r *SalesReportRequest) Validate() error { return nil }

// ProductsReportRequest is a request for the products report.
type ProductsReportRequest struct{}

// Validate is a no-op for ProductsReportRequest.
func (r *ProductsReportRequest) Validate() error { return nil }

// CustomersReportRequest is a request for the customers report.
type CustomersReportRequest struct{}

// Validate is a no-op for CustomersReportRequest.
func (r *CustomersReportRequest) Validate() error { return nil }

// --- Settings ---

// GetSettingsRequest is a request for the business settings blob.
type GetSettingsRequest struct{}

// Validate is a no-op for GetSettingsRequest.
func (r *GetSettingsRequest) Validate() error { return nil }

// UpdateSettingsRequest replaces the business settings blob.
type UpdateSettingsRequest struct {
	Business      BusinessSettings     `json:"business"`
	Notifications NotificationSettings `json:"notifications"`
	Profile       ProfileSettings      `json:"profile"`
}

// Validate validates the settings request fields.
func (r *UpdateSettingsRequest) Validate() error {
	if r.Business.TaxPercent < 0 || r.Business.TaxPercent > 100 {
		return BadRequest("taxPercent must be between 0 and 100")
	}
	if r.Business.LowStockThreshold < 0 {
		return BadRequest("lowStockThreshold must not be negative")
	}
	return nil
}

// --- Notifications ---

// SubscribeKeys carries the browser push encryption keys.
type SubscribeKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// SubscribeRequest registers a browser for web push notifications.
type SubscribeRequest struct {
	Endpoint string        `json:"endpoint"`
	Keys     SubscribeKeys `json:"keys"`
}

// Validate validates the subscribe request fields.
func (r *SubscribeRequest) Validate() error {
	if r.Endpoint == "" {
		return MissingField("endpoint")
	}
	if r.Keys.P256dh == "" || r.Keys.Auth == "" {
		return MissingField("keys")
	}
	return nil
}

// --- Health ---

// HealthRequest is a request for the health check.
type HealthRequest struct{}

// Validate is a no-op for HealthRequest.
func (r *HealthRequest) Validate() error { return nil }
