package catalog

import "fmt"

// Cents is a USD amount in minor units
type Cents int64

// TaxRateBasisPoints is the storefront's flat sales tax (8%)
const TaxRateBasisPoints = 800

// String formats the amount the way the storefront renders prices, e.g. "$29.99"
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// Tax returns the tax owed on c, rounded half up to the cent
func Tax(c Cents) Cents {
	return (c*TaxRateBasisPoints + 5000) / 10000
}

// Totals is the checkout overview summary block
type Totals struct {
	Subtotal Cents
	Tax      Cents
	Total    Cents
}

// ComputeTotals sums the given items and applies tax
func ComputeTotals(lines []Item) Totals {
	var sub Cents
	for _, it := range lines {
		sub += it.Price
	}
	tax := Tax(sub)
	return Totals{Subtotal: sub, Tax: tax, Total: sub + tax}
}

// SubtotalLabel renders the overview subtotal line
func (t Totals) SubtotalLabel() string { return "Item total: " + t.Subtotal.String() }

// TaxLabel renders the overview tax line
func (t Totals) TaxLabel() string { return "Tax: " + t.Tax.String() }

// TotalLabel renders the overview total line
func (t Totals) TotalLabel() string { return "Total: " + t.Total.String() }
