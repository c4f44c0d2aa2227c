package dto

// --- Common ---

// OkResponse is a simple success response.
type OkResponse struct {
	Ok bool `json:"ok"`
}

// Meta carries pagination metadata for list responses.
type Meta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

// --- Auth ---

// UserResponse describes the authenticated user.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Theme     string `json:"theme,omitempty"`
	Language  string `json:"language,omitempty"`
	Created   string `json:"created"`
	LastLogin string `json:"lastLogin,omitempty"`
}

// AuthResponse is a response from logging in.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// LogoutResponse is a response from logging out.
type LogoutResponse = OkResponse

// --- Products ---

// ProductResponse describes a product.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Formula  string `json:"formula,omitempty"`
	Stock    int    `json:"stock"`
	Unit     string `json:"unit,omitempty"`
	Price    int    `json:"price"`
	Status   string `json:"status"`
	Created  string `json:"created"`
	Modified string `json:"modified,omitempty"`
}

// ListProductsResponse is a paginated list of products.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

// SyncProductsResponse reports how many products were restored.
type SyncProductsResponse struct {
	Synced int `json:"synced"`
}

// --- Orders ---

// OrderItemResponse describes an order line item.
type OrderItemResponse struct {
	ProductID string `json:"productId,omitempty"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit,omitempty"`
	Price     int    `json:"price"`
	Total     int    `json:"total"`
}

// OrderResponse describes an order.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customerId,omitempty"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      int                 `json:"subtotal"`
	Tax           int                 `json:"tax"`
	Shipping      int                 `json:"shipping"`
	TotalAmount   int                 `json:"totalAmount"`
	Status        string              `json:"status"`
	Payment       string              `json:"payment"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	Created       string              `json:"created"`
	Modified      string              `json:"modified,omitempty"`
}

// ListOrdersResponse is a paginated list of orders.
type ListOrdersResponse struct {
	Data []OrderResponse `json:"data"`
	Meta Meta            `json:"meta"`
}

// --- Customers ---

// CustomerResponse describes a customer.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Address     string `json:"address,omitempty"`
	Status      string `json:"status"`
	TotalOrders int    `json:"totalOrders"`
	TotalSpent  int    `json:"totalSpent"`
	LastOrder   string `json:"lastOrder,omitempty"`
	Joined      string `json:"joined"`
}

// ListCustomersResponse is a paginated list of customers.
type ListCustomersResponse struct {
	Data []CustomerResponse `json:"data"`
	Meta Meta               `json:"meta"`
}

// --- Chats ---

// ChatLogResponse describes a chat bot conversation.
type ChatLogResponse struct {
	ID               string `json:"id"`
	Customer         string `json:"customer"`
	Product          string `json:"product,omitempty"`
	Status           string `json:"status"`
	Sentiment        string `json:"sentiment,omitempty"`
	Messages         int    `json:"messages"`
	ResponseTimeSecs int    `json:"responseTimeSecs"`
	Created          string `json:"created"`
}

// ListChatsResponse is a paginated list of chat logs.
type ListChatsResponse struct {
	Data []ChatLogResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

// --- Dashboard ---

// RevenuePoint is one day of the revenue chart.
type RevenuePoint struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Revenue int    `json:"revenue"`
}

// CountPoint is one day of a count chart.
type CountPoint struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// NameValue is one slice of a distribution chart.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProductSalesRow is one row of the top products table.
type ProductSalesRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
	Orders   int    `json:"orders"`
	Unit     string `json:"unit,omitempty"`
}

// DashboardStatsResponse carries the dashboard summary cards plus the
// recent orders and low stock panels.
type DashboardStatsResponse struct {
	TotalOrders      int               `json:"totalOrders"`
	TotalCustomers   int               `json:"totalCustomers"`
	TotalProducts    int               `json:"totalProducts"`
	TotalRevenue     int               `json:"totalRevenue"`
	PendingOrders    int               `json:"pendingOrders"`
	ActiveCustomers  int               `json:"activeCustomers"`
	LowStockProducts int               `json:"lowStockProducts"`
	RecentOrders     []OrderResponse   `json:"recentOrders"`
	LowStock         []ProductResponse `json:"lowStock"`
}

// DashboardChartsResponse carries the dashboard chart series.
type DashboardChartsResponse struct {
	Revenue       []RevenuePoint    `json:"revenue"`
	Conversations []CountPoint      `json:"conversations"`
	OrderStatus   []NameValue       `json:"orderStatus"`
	TopProducts   []ProductSalesRow `json:"topProducts"`
}

// RecommendationRow is one prioritized suggestion on the insights panel.
type RecommendationRow struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// DashboardInsightsResponse carries the projections and the recommendations
// derived from them.
type DashboardInsightsResponse struct {
	PredictedOrders  PredictionRow       `json:"predictedOrders"`
	PredictedRevenue PredictionRow       `json:"predictedRevenue"`
	StockAlerts      []StockAlertRow     `json:"stockAlerts"`
	Sentiment        SentimentRow        `json:"sentiment"`
	ChatBehavior     ChatBehaviorRow     `json:"chatBehavior"`
	Recommendations  []RecommendationRow `json:"recommendations"`
}

// --- Reports ---

// SalesSummary is the sales report header.
type SalesSummary struct {
	TotalRevenue      int     `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	PaidOrders        int     `json:"paidOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// PredictionRow is one AI-style projection for next week.
type PredictionRow struct {
	Prediction int     `json:"prediction"`
	Trend      string  `json:"trend"`
	Percentage float64 `json:"percentage"`
	Confidence int     `json:"confidence"`
}

// SalesReportResponse is the sales report.
type SalesReportResponse struct {
	Summary          SalesSummary   `json:"summary"`
	Revenue          []RevenuePoint `json:"revenue"`
	PaymentStatus    []NameValue    `json:"paymentStatus"`
	PredictedOrders  PredictionRow  `json:"predictedOrders"`
	PredictedRevenue PredictionRow  `json:"predictedRevenue"`
}

// StockAlertRow is one row of the restock recommendation list.
type StockAlertRow struct {
	Name             string `json:"name"`
	CurrentStock     int    `json:"currentStock"`
	Status           string `json:"status"`
	RecommendedOrder int    `json:"recommendedOrder"`
}

// ProductsReportResponse is the products report.
type ProductsReportResponse struct {
	TopProducts []ProductSalesRow `json:"topProducts"`
	StockAlerts []StockAlertRow   `json:"stockAlerts"`
}

// CustomerSalesRow is one row of the top customers table.
type CustomerSalesRow struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	TotalSpent   int    `json:"totalSpent"`
	TotalOrders  int    `json:"totalOrders"`
}

// SentimentRow is the chat sentiment split.
type SentimentRow struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Overall  string  `json:"overall"`
}

// ChatBehaviorRow summarizes bot interaction patterns.
type ChatBehaviorRow struct {
	PeakHour            string  `json:"peakHour"`
	AvgResponseTimeSecs int     `json:"avgResponseTimeSecs"`
	SatisfactionRatePct float64 `json:"satisfactionRatePct"`
	TotalInteractions   int     `json:"totalInteractions"`
}

// CustomersReportResponse is the customers report.
type CustomersReportResponse struct {
	TopCustomers []CustomerSalesRow `json:"topCustomers"`
	Sentiment    SentimentRow       `json:"sentiment"`
	ChatBehavior ChatBehaviorRow    `json:"chatBehavior"`
}

// --- Settings ---

// BusinessSettings is the store-level configuration blob.
type BusinessSettings struct {
	StoreName         string  `json:"storeName"`
	Currency          string  `json:"currency"`
	TaxPercent        float64 `json:"taxPercent"`
	LowStockThreshold int     `json:"lowStockThreshold"`
}

// NotificationSettings toggles outbound notifications.
type NotificationSettings struct {
	LowStockAlerts bool `json:"lowStockAlerts"`
	OrderUpdates   bool `json:"orderUpdates"`
	DailySummary   bool `json:"dailySummary"`
}

// ProfileSettings is the store owner's contact card.
type ProfileSettings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SettingsResponse is the business settings blob.
type SettingsResponse struct {
	Business      BusinessSettings     `json:"business"`
	Notifications NotificationSettings `json:"notifications"`
	Profile       ProfileSettings      `json:"profile"`
}

// --- Notifications ---

// SubscribeResponse confirms a push subscription.
type SubscribeResponse struct {
	Ok             bool   `json:"ok"`
	VAPIDPublicKey string `json:"vapidPublicKey"`
	SubscriptionID string `json:"subscriptionId"`
}

// --- Health ---

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
