package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/GBDev13/catalify-sub001/app/models"
)

func testOrder() (*models.Company, *models.Order) {
	company := &models.Company{Name: "Flower Shop", Phone: "+55 (11) 99888-7766"}
	order := &models.Order{
		Code:      "a1B2c3",
		BuyerName: "Maria",
		Items: []models.OrderItem{
			{ProductName: "Rose Bouquet", UnitPriceCents: 4990, Quantity: 2},
			{ProductName: "Vase", UnitPriceCents: 1500, Quantity: 1},
		},
	}
	order.ComputeTotal()
	return company, order
}

func TestCheckoutURL(t *testing.T) {
	company, order := testOrder()
	link := CheckoutURL(company, order)

	if !strings.HasPrefix(link, "https://wa.me/5511998887766?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := parsed.Query().Get("text")
	if !strings.Contains(text, "a1B2c3") {
		t.Fatalf("message missing order code: %q", text)
	}
	if !strings.Contains(text, "2x Rose Bouquet") {
		t.Fatalf("message missing item line: %q", text)
	}
	if !strings.Contains(text, "$114.80") {
		t.Fatalf("message missing total: %q", text)
	}
}

func TestCheckoutMessage(t *testing.T) {
	company, order := testOrder()
	msg := CheckoutMessage(company, order)

	for _, want := range []string{"Flower Shop", "a1B2c3", "2x Rose Bouquet - $99.80", "1x Vase - $15.00", "Total: *$114.80*", "Name: Maria"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1500, "$15.00"},
		{4990, "$49.90"},
		{-250, "-$2.50"},
	}
	for _, tt := range tests {
		if got := FormatCents(tt.cents); got != tt.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
