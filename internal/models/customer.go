package models

// Checkout form messages, rendered verbatim in the step one error banner
const (
	MsgFirstNameRequired  = "Error: First Name is required"
	MsgLastNameRequired   = "Error: Last Name is required"
	MsgPostalCodeRequired = "Error: Postal Code is required"
)

// FieldError is a checkout form validation failure
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Validation errors, checked in form order
var (
	ErrFirstNameRequired  = &FieldError{Field: "firstName", Message: MsgFirstNameRequired}
	ErrLastNameRequired   = &FieldError{Field: "lastName", Message: MsgLastNameRequired}
	ErrPostalCodeRequired = &FieldError{Field: "postalCode", Message: MsgPostalCodeRequired}
)

// CustomerInfo is the checkout step one form
type CustomerInfo struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// Validate reports the first missing field, in the order the form lists them
func (c CustomerInfo) Validate() error {
	switch {
	case c.FirstName == "":
		return ErrFirstNameRequired
	case c.LastName == "":
		return ErrLastNameRequired
	case c.PostalCode == "":
		return ErrPostalCodeRequired
	}
	return nil
}
