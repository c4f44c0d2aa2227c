package catalog

import (
	"fmt"
	"slices"
	"time"
)

// Insights bundles the projections the recommendation rules read.
type Insights struct {
	OrderPrediction   Prediction
	RevenuePrediction Prediction
	StockAlerts       []StockAlert
	Sentiment         SentimentBreakdown
	ChatBehavior      ChatBehavior
}

// ComputeInsights derives every projection over the trailing days days
// ending at now.
func ComputeInsights(orders []*Order, products []*Product, chats []*ChatLog, days int, now time.Time) Insights {
	revenue := DailyRevenueSeries(orders, days, now)
	conversations := ConversationSeries(chats, days, now)
	return Insights{
		OrderPrediction:   PredictOrders(conversations),
		RevenuePrediction: PredictRevenue(revenue),
		StockAlerts:       StockAlerts(products),
		Sentiment:         AnalyzeSentiment(chats),
		ChatBehavior:      AnalyzeChatBehavior(chats),
	}
}

// Recommendation is one prioritized suggestion for the operator.
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Response time and satisfaction thresholds for the chat behavior rules.
const (
	slowResponseSecs   = 30
	lowSatisfactionPct = 70
)

// Recommendations turns the insights into prioritized suggestions, sorted
// high before medium before low. Rules with the same priority keep rule
// order. Chat behavior rules only fire when there are interactions, so an
// empty chat collection produces no satisfaction warning.
func Recommendations(in Insights) []Recommendation {
	var recs []Recommendation

	switch in.OrderPrediction.Trend {
	case "up":
		recs = append(recs, Recommendation{
			Type:        "opportunity",
			Priority:    "high",
			Title:       "Increase Inventory",
			Description: fmt.Sprintf("Orders predicted to increase by %.1f%%. Consider stocking up popular items.", in.OrderPrediction.Percentage),
			Action:      "Review inventory levels",
		})
	case "down":
		recs = append(recs, Recommendation{
			Type:        "warning",
			Priority:    "medium",
			Title:       "Engagement Campaign",
			Description: "Order trend declining. Launch promotional campaigns to boost engagement.",
			Action:      "Plan marketing campaign",
		})
	}

	for _, alert := range in.StockAlerts {
		if alert.Status != "critical" {
			continue
		}
		recs = append(recs, Recommendation{
			Type:        "critical",
			Priority:    "high",
			Title:       fmt.Sprintf("Low Stock: %s", alert.Name),
			Description: fmt.Sprintf("Only %d units left. Immediate restocking required.", alert.CurrentStock),
			Action:      fmt.Sprintf("Order %d units", alert.RecommendedOrder),
		})
	}

	if in.ChatBehavior.TotalInteractions > 0 {
		if in.ChatBehavior.AvgResponseTimeSecs > slowResponseSecs {
			recs = append(recs, Recommendation{
				Type:        "improvement",
				Priority:    "medium",
				Title:       "Reduce Response Time",
				Description: fmt.Sprintf("Average response time is %ds. Optimize chatbot responses.", in.ChatBehavior.AvgResponseTimeSecs),
				Action:      "Review chatbot performance",
			})
		}
		if in.ChatBehavior.SatisfactionRatePct < lowSatisfactionPct {
			recs = append(recs, Recommendation{
				Type:        "warning",
				Priority:    "high",
				Title:       "Improve Customer Satisfaction",
				Description: fmt.Sprintf("Satisfaction rate at %.1f%%. Review customer feedback.", in.ChatBehavior.SatisfactionRatePct),
				Action:      "Analyze chat logs",
			})
		}
	}

	switch in.Sentiment.Overall {
	case "negative":
		recs = append(recs, Recommendation{
			Type:        "critical",
			Priority:    "high",
			Title:       "Address Customer Concerns",
			Description: fmt.Sprintf("%.1f%% negative sentiment detected. Immediate action needed.", in.Sentiment.Negative),
			Action:      "Review negative feedback",
		})
	case "positive":
		recs = append(recs, Recommendation{
			Type:        "opportunity",
			Priority:    "low",
			Title:       "Leverage Positive Feedback",
			Description: fmt.Sprintf("%.1f%% positive sentiment. Great time to collect testimonials.", in.Sentiment.Positive),
			Action:      "Request customer reviews",
		})
	}

	if in.RevenuePrediction.Trend == "up" {
		recs = append(recs, Recommendation{
			Type:        "opportunity",
			Priority:    "medium",
			Title:       "Revenue Growth Opportunity",
			Description: fmt.Sprintf("Revenue growing at %.1f%%. Scale operations accordingly.", in.RevenuePrediction.Percentage),
			Action:      "Plan capacity expansion",
		})
	}

	rank := map[string]int{"high": 1, "medium": 2, "low": 3}
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		return rank[a.Priority] - rank[b.Priority]
	})
	return recs
}
