package scenario

// Products and literals the checkout flow asserts on. The totals are the
// expected values for a cart holding exactly CartItems.
const (
	BackpackName   = "Sauce Labs Backpack"
	BoltTShirtName = "Sauce Labs Bolt T-Shirt"

	BackpackPrice   = "$29.99"
	BoltTShirtPrice = "$15.99"

	Subtotal = "Item total: $45.98"
	Tax      = "Tax: $3.68"
	Total    = "Total: $49.66"
)

// CartItems is the cart the checkout fixtures build
func CartItems() []string {
	return []string{BackpackName, BoltTShirtName}
}

// Customer is the checkout form input used for successful orders
type Customer struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// DefaultCustomer fills every checkout field
var DefaultCustomer = Customer{FirstName: "Test", LastName: "User", PostalCode: "12345"}

// FormError is a checkout form submission with one field left blank
type FormError struct {
	Name     string
	Customer Customer
	Message  string
}

// CheckoutFormErrors lists the single-blank-field submissions and their errors
func CheckoutFormErrors() []FormError {
	return []FormError{
		{
			Name:     "TC_CHECKOUT_ERROR_001",
			Customer: Customer{LastName: "User", PostalCode: "12345"},
			Message:  "Error: First Name is required",
		},
		{
			Name:     "TC_CHECKOUT_ERROR_002",
			Customer: Customer{FirstName: "Test", PostalCode: "12345"},
			Message:  "Error: Last Name is required",
		},
		{
			Name:     "TC_CHECKOUT_ERROR_003",
			Customer: Customer{FirstName: "Test", LastName: "User"},
			Message:  "Error: Postal Code is required",
		},
	}
}
