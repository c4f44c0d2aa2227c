package catalog

import "time"

// Seed data used when the data directory is empty, so a fresh install has
// something to show on every screen.

func seedTime(day int, hour int) time.Time {
	return time.Date(2026, 8, day, hour, 0, 0, 0, time.UTC)
}

// SeedProducts returns the initial product inventory.
func SeedProducts() []*Product {
	products := []*Product{
		{ID: "C001", Name: "Sodium Chloride", Formula: "NaCl", Stock: 2500, Unit: "kg", Price: 45, Created: seedTime(1, 9)},
		{ID: "C002", Name: "Sulfuric Acid", Formula: "H2SO4", Stock: 800, Unit: "L", Price: 320, Created: seedTime(2, 10)},
		{ID: "C003", Name: "Hydrochloric Acid", Formula: "HCl", Stock: 450, Unit: "L", Price: 280, Created: seedTime(3, 11)},
		{ID: "C004", Name: "Nitric Acid", Formula: "HNO3", Stock: 1200, Unit: "L", Price: 1800, Created: seedTime(4, 9)},
		{ID: "C005", Name: "Acetic Acid", Formula: "CH3COOH", Stock: 0, Unit: "L", Price: 150, Created: seedTime(5, 14)},
		{ID: "C006", Name: "Phosphoric Acid", Formula: "H3PO4", Stock: 90, Unit: "L", Price: 420, Created: seedTime(6, 15)},
		{ID: "C007", Name: "Ammonium Nitrate", Formula: "NH4NO3", Stock: 3200, Unit: "kg", Price: 65, Created: seedTime(7, 9)},
		{ID: "C008", Name: "Calcium Carbonate", Formula: "CaCO3", Stock: 5400, Unit: "kg", Price: 30, Created: seedTime(8, 10)},
	}
	for _, p := range products {
		p.Status = StatusForStock(p.Stock, DefaultLowStockThreshold)
	}
	return products
}

// SeedCustomers returns the initial customer list.
func SeedCustomers() []*Customer {
	return []*Customer{
		{ID: "CUST-001", Name: "Ramesh Kumar", Email: "ramesh@agrochem.in", Phone: "9876541234", Company: "AgroChem Traders", Status: CustomerActive, Joined: seedTime(1, 9)},
		{ID: "CUST-002", Name: "Priya Sharma", Email: "priya@sharmalabs.in", Phone: "9812345670", Company: "Sharma Labs", Status: CustomerActive, Joined: seedTime(3, 10)},
		{ID: "CUST-003", Name: "Amit Patel", Email: "amit@patelchem.in", Phone: "9898989898", Company: "Patel Chemicals", Status: CustomerInactive, Joined: seedTime(5, 11)},
		{ID: "CUST-004", Name: "Sneha Desai", Email: "sneha@desaipharma.in", Phone: "9765432109", Company: "Desai Pharma", Status: CustomerActive, Joined: seedTime(7, 12)},
	}
}

// SeedOrders returns the initial order book. Totals use the default 10% tax.
func SeedOrders() []*Order {
	orders := []*Order{
		{
			ID: "ORD-001", CustomerID: "CUST-001", CustomerName: "Ramesh Kumar", CustomerPhone: "9876541234",
			Items: []OrderItem{
				{ProductID: "C001", Name: "Sodium Chloride", Quantity: 100, Unit: "kg", Price: 45},
				{ProductID: "C002", Name: "Sulfuric Acid", Quantity: 20, Unit: "L", Price: 320},
			},
			Shipping: 500, Status: OrderDelivered, Payment: PaymentPaid, PaymentMethod: "UPI",
			Created: seedTime(10, 11),
		},
		{
			ID: "ORD-002", CustomerID: "CUST-002", CustomerName: "Priya Sharma", CustomerPhone: "9812345670",
			Items: []OrderItem{
				{ProductID: "C004", Name: "Nitric Acid", Quantity: 10, Unit: "L", Price: 1800},
			},
			Shipping: 800, Status: OrderShipped, Payment: PaymentPaid, PaymentMethod: "Bank Transfer",
			Created: seedTime(12, 15),
		},
		{
			ID: "ORD-003", CustomerID: "CUST-004", CustomerName: "Sneha Desai", CustomerPhone: "9765432109",
			Items: []OrderItem{
				{ProductID: "C003", Name: "Hydrochloric Acid", Quantity: 40, Unit: "L", Price: 280},
			},
			Shipping: 300, Status: OrderPending, Payment: PaymentPending, PaymentMethod: "Cash",
			Created: seedTime(14, 9),
		},
	}
	for _, o := range orders {
		o.ComputeTotals(10)
	}
	return orders
}

// SeedChatLogs returns the initial bot conversation log.
func SeedChatLogs() []*ChatLog {
	return []*ChatLog{
		{ID: "CH-001", Customer: "Ramesh Kumar", Product: "Sodium Chloride", Status: ChatCompleted, Sentiment: SentimentPositive, Messages: 12, ResponseTimeSecs: 25, Created: seedTime(15, 10)},
		{ID: "CH-002", Customer: "Priya Sharma", Product: "Sulfuric Acid", Status: ChatActive, Sentiment: SentimentNeutral, Messages: 5, ResponseTimeSecs: 18, Created: seedTime(15, 10)},
		{ID: "CH-003", Customer: "Amit Patel", Product: "Hydrochloric Acid", Status: ChatPending, Sentiment: SentimentPositive, Messages: 8, ResponseTimeSecs: 32, Created: seedTime(15, 10)},
		{ID: "CH-004", Customer: "Sneha Desai", Product: "Nitric Acid", Status: ChatCompleted, Sentiment: SentimentPositive, Messages: 15, ResponseTimeSecs: 22, Created: seedTime(15, 10)},
		{ID: "CH-005", Customer: "Rajiv Singh", Product: "Acetic Acid", Status: ChatPending, Sentiment: SentimentNegative, Messages: 3, ResponseTimeSecs: 45, Created: seedTime(15, 9)},
	}
}
