package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/GBDev13/catalify-sub001/app/models"
)

// CheckoutURL builds the wa.me link that hands a recorded order over to the
// company's WhatsApp number with the order summary prefilled.
func CheckoutURL(company *models.Company, order *models.Order) string {
	phone := digitsOnly(company.Phone)
	message := CheckoutMessage(company, order)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// CheckoutMessage renders the plain-text order summary sent to the seller.
func CheckoutMessage(company *models.Company, order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s! I just placed order *%s* on your catalog.\n\n", company.Name, order.Code)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s - %s\n", item.Quantity, item.ProductName, FormatCents(item.UnitPriceCents*int64(item.Quantity)))
	}
	fmt.Fprintf(&b, "\nTotal: *%s*\n", FormatCents(order.TotalCents))
	fmt.Fprintf(&b, "Name: %s", order.BuyerName)
	return b.String()
}

// FormatCents renders an amount of cents as a currency string, e.g. "$12.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
