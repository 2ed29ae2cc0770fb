package view

// CheckoutForm echoes submitted values back into the form on a
// validation failure.
type CheckoutForm struct {
	Email      string
	FirstName  string
	LastName   string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
	CardNumber string
	CardExpiry string
	CardCVC    string
}

// CheckoutSummary is the order box on the checkout page. Unlike the cart
// drawer it includes tax.
type CheckoutSummary struct {
	Lines []CartLine
	Count int

	SubtotalCents int
	ShippingCents int
	TaxCents      int
	TotalCents    int

	Subtotal string
	Shipping string
	Tax      string
	Total    string
}

type CountryOption struct {
	Code string
	Name string
}

// Countries the storefront ships to, in menu order.
func ShippingCountries() []CountryOption {
	return []CountryOption{
		{Code: "US", Name: "United States"},
		{Code: "CA", Name: "Canada"},
		{Code: "GB", Name: "United Kingdom"},
		{Code: "AU", Name: "Australia"},
		{Code: "FR", Name: "France"},
		{Code: "DE", Name: "Germany"},
		{Code: "IT", Name: "Italy"},
		{Code: "ES", Name: "Spain"},
		{Code: "JP", Name: "Japan"},
	}
}
