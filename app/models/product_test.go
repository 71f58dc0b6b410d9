package models

import "testing"

func TestProductHasStock(t *testing.T) {
	tests := []struct {
		name    string
		entries []StockEntry
		want    bool
	}{
		{name: "no stock tracking", entries: nil, want: true},
		{name: "all depleted", entries: []StockEntry{{Quantity: 0}, {Quantity: -1}}, want: false},
		{name: "one variant left", entries: []StockEntry{{Quantity: 0}, {Quantity: 5}}, want: true},
		{name: "single empty entry", entries: []StockEntry{{Quantity: 0}}, want: false},
		{name: "single stocked entry", entries: []StockEntry{{Quantity: 1}}, want: true},
	}

	for _, tt := range tests {
		p := Product{StockEntries: tt.entries}
		if got := p.HasStock(); got != tt.want {
			t.Fatalf("%s: HasStock() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestProductEffectivePriceCents(t *testing.T) {
	promo := int64(500)
	tooHigh := int64(2000)
	zero := int64(0)

	tests := []struct {
		name  string
		price int64
		promo *int64
		want  int64
	}{
		{name: "no promo", price: 1000, promo: nil, want: 1000},
		{name: "promo below price", price: 1000, promo: &promo, want: 500},
		{name: "promo above price ignored", price: 1000, promo: &tooHigh, want: 1000},
		{name: "zero promo ignored", price: 1000, promo: &zero, want: 1000},
	}

	for _, tt := range tests {
		p := Product{PriceCents: tt.price, PromoCents: tt.promo}
		if got := p.EffectivePriceCents(); got != tt.want {
			t.Fatalf("%s: EffectivePriceCents() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOrderComputeTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{UnitPriceCents: 1500, Quantity: 2},
		{UnitPriceCents: 990, Quantity: 1},
	}}
	o.ComputeTotal()
	if o.TotalCents != 3990 {
		t.Fatalf("ComputeTotal() = %d, want 3990", o.TotalCents)
	}
}

func TestSubscriptionIsTerminal(t *testing.T) {
	terminal := []SubscriptionStatus{SubscriptionStatusCanceled, SubscriptionStatusExpired}
	for _, status := range terminal {
		s := Subscription{Status: status}
		if !s.IsTerminal() {
			t.Fatalf("expected status %q to be terminal", status)
		}
	}
	for _, status := range []SubscriptionStatus{SubscriptionStatusActive, SubscriptionStatusCanceling} {
		s := Subscription{Status: status}
		if s.IsTerminal() {
			t.Fatalf("expected status %q to be non-terminal", status)
		}
	}
}
