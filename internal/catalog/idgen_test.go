package catalog

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"next after highest", []string{"CUST-001", "CUST-041", "CUST-007"}, "CUST-042"},
		{"empty collection", nil, "CUST-001"},
		{"ignores foreign prefixes", []string{"ORD-099", "CUST-002"}, "CUST-003"},
		{"ignores malformed suffixes", []string{"CUST-abc", "CUST-004"}, "CUST-005"},
		{"grows past padding width", []string{"CUST-999"}, "CUST-1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]*Customer, len(tt.ids))
			for i, id := range tt.ids {
				items[i] = &Customer{ID: id, Name: "x"}
			}
			if got := NextCustomerID(items); got != tt.want {
				t.Errorf("NextCustomerID = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextIDSchemes(t *testing.T) {
	if got := NextProductID([]*Product{{ID: "C007"}}); got != "C008" {
		t.Errorf("NextProductID = %s, want C008", got)
	}
	if got := NextOrderID([]*Order{{ID: "ORD-012"}}); got != "ORD-013" {
		t.Errorf("NextOrderID = %s, want ORD-013", got)
	}
	if got := NextChatLogID(nil); got != "CH-001" {
		t.Errorf("NextChatLogID = %s, want CH-001", got)
	}
}
