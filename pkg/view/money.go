package view

import "fmt"

// MoneyFromCents renders USD cents as "$180.00". The storefront prices in
// a single currency.
func MoneyFromCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// FreeOrMoney renders zero as "Free", which is how shipping is shown.
func FreeOrMoney(cents int) string {
	if cents == 0 {
		return "Free"
	}
	return MoneyFromCents(cents)
}
