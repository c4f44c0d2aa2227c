package catalog

import (
	"strings"
	"testing"
)

func TestRecommendationsPriorityOrder(t *testing.T) {
	in := Insights{
		OrderPrediction:   Prediction{Trend: "up", Percentage: 15},
		RevenuePrediction: Prediction{Trend: "up", Percentage: 8},
		StockAlerts: []StockAlert{
			{Name: "Sulfuric Acid", CurrentStock: 40, Status: "critical", RecommendedOrder: 460},
			{Name: "Sodium Chloride", CurrentStock: 150, Status: "warning", RecommendedOrder: 350},
		},
		Sentiment: SentimentBreakdown{Positive: 70, Neutral: 20, Negative: 10, Overall: "positive"},
		ChatBehavior: ChatBehavior{
			PeakHour:            "14:00",
			AvgResponseTimeSecs: 45,
			SatisfactionRatePct: 90,
			TotalInteractions:   30,
		},
	}

	recs := Recommendations(in)
	if len(recs) != 5 {
		t.Fatalf("len = %d, want 5: %+v", len(recs), recs)
	}

	rank := map[string]int{"high": 1, "medium": 2, "low": 3}
	for i := 1; i < len(recs); i++ {
		if rank[recs[i].Priority] < rank[recs[i-1].Priority] {
			t.Errorf("recs[%d] priority %s sorts before %s", i, recs[i].Priority, recs[i-1].Priority)
		}
	}

	// High rules keep rule order: order trend before the stock alert.
	if recs[0].Title != "Increase Inventory" {
		t.Errorf("recs[0] = %q, want Increase Inventory", recs[0].Title)
	}
	if recs[1].Title != "Low Stock: Sulfuric Acid" {
		t.Errorf("recs[1] = %q, want Low Stock: Sulfuric Acid", recs[1].Title)
	}
	if recs[1].Action != "Order 460 units" {
		t.Errorf("action = %q, want Order 460 units", recs[1].Action)
	}
	if !strings.Contains(recs[0].Description, "15.0%") {
		t.Errorf("description %q does not carry the trend percentage", recs[0].Description)
	}
}

func TestRecommendationsWarningStockSkipped(t *testing.T) {
	in := Insights{
		StockAlerts: []StockAlert{
			{Name: "Sodium Chloride", CurrentStock: 150, Status: "warning", RecommendedOrder: 350},
		},
		ChatBehavior: ChatBehavior{TotalInteractions: 5, SatisfactionRatePct: 80, AvgResponseTimeSecs: 10},
	}
	if recs := Recommendations(in); len(recs) != 0 {
		t.Errorf("recs = %+v, want none for warning-only alerts", recs)
	}
}

func TestRecommendationsSatisfactionAndSentiment(t *testing.T) {
	in := Insights{
		OrderPrediction: Prediction{Trend: "down", Percentage: 12},
		Sentiment:       SentimentBreakdown{Negative: 40, Overall: "negative"},
		ChatBehavior: ChatBehavior{
			AvgResponseTimeSecs: 10,
			SatisfactionRatePct: 55,
			TotalInteractions:   20,
		},
	}

	recs := Recommendations(in)
	var titles []string
	for _, r := range recs {
		titles = append(titles, r.Title)
	}
	want := []string{"Improve Customer Satisfaction", "Address Customer Concerns", "Engagement Campaign"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
}

func TestRecommendationsEmptyInsights(t *testing.T) {
	// Zero collections must not trigger the satisfaction warning.
	if recs := Recommendations(Insights{Sentiment: SentimentBreakdown{Overall: "neutral"}}); len(recs) != 0 {
		t.Errorf("recs = %+v, want none", recs)
	}
}
