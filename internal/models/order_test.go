package models

import (
	"errors"
	"testing"

	"github.com/themizzi/saucesuite/internal/catalog"
)

func mustItem(t *testing.T, name string) catalog.Item {
	t.Helper()
	it, err := catalog.Find(name)
	if err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}
	return it
}

func TestCustomerInfo_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerInfo
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "complete form",
			customer: CustomerInfo{FirstName: "Cuc", LastName: "Le", PostalCode: "70000"},
		},
		{
			name:     "missing first name",
			customer: CustomerInfo{LastName: "Automation", PostalCode: "70000"},
			wantErr:  ErrFirstNameRequired,
			wantMsg:  "Error: First Name is required",
		},
		{
			name:     "missing last name",
			customer: CustomerInfo{FirstName: "Tester", PostalCode: "70000"},
			wantErr:  ErrLastNameRequired,
			wantMsg:  "Error: Last Name is required",
		},
		{
			name:     "missing postal code",
			customer: CustomerInfo{FirstName: "Tester", LastName: "Automation"},
			wantErr:  ErrPostalCodeRequired,
			wantMsg:  "Error: Postal Code is required",
		},
		{
			name:     "everything missing reports first name",
			customer: CustomerInfo{},
			wantErr:  ErrFirstNameRequired,
			wantMsg:  "Error: First Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Validate() message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	customer := CustomerInfo{FirstName: "Cuc", LastName: "Le", PostalCode: "70000"}

	t.Run("valid order", func(t *testing.T) {
		// GIVEN
		items := []catalog.Item{mustItem(t, catalog.Backpack), mustItem(t, catalog.BoltTShirt)}

		// WHEN
		order, err := NewOrder(customer, items)

		// THEN
		if err != nil {
			t.Fatalf("NewOrder() unexpected error = %v", err)
		}
		if order.ID == "" || order.Reference == "" {
			t.Error("Order ID and reference should be set")
		}
		if order.Status != OrderStatusPending {
			t.Errorf("Expected status %s, got %s", OrderStatusPending, order.Status)
		}
		if got := order.Totals.TotalLabel(); got != "Total: $49.66" {
			t.Errorf("Expected total label 'Total: $49.66', got %q", got)
		}

		// the order keeps its own copy of the lines
		items[0].Name = "mutated"
		if order.Items[0].Name != catalog.Backpack {
			t.Error("Order lines should not alias the caller's slice")
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		order, err := NewOrder(customer, nil)
		if err != ErrEmptyOrder {
			t.Errorf("NewOrder() error = %v, want %v", err, ErrEmptyOrder)
		}
		if order != nil {
			t.Error("Expected order to be nil when error occurs")
		}
	})

	t.Run("invalid customer", func(t *testing.T) {
		_, err := NewOrder(CustomerInfo{FirstName: "Only"}, []catalog.Item{mustItem(t, catalog.Onesie)})
		if !errors.Is(err, ErrLastNameRequired) {
			t.Errorf("NewOrder() error = %v, want %v", err, ErrLastNameRequired)
		}
	})
}

func TestOrder_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		initial    OrderStatus
		transition func(*Order) error
		wantErr    bool
		want       OrderStatus
	}{
		{"complete pending order", OrderStatusPending, (*Order).Complete, false, OrderStatusCompleted},
		{"cannot complete twice", OrderStatusCompleted, (*Order).Complete, true, OrderStatusCompleted},
		{"cannot complete cancelled order", OrderStatusCancelled, (*Order).Complete, true, OrderStatusCancelled},
		{"cancel pending order", OrderStatusPending, (*Order).Cancel, false, OrderStatusCancelled},
		{"cancel is idempotent", OrderStatusCancelled, (*Order).Cancel, false, OrderStatusCancelled},
		{"cannot cancel completed order", OrderStatusCompleted, (*Order).Cancel, true, OrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{ID: "test-id", Status: tt.initial}

			err := tt.transition(order)

			if (err != nil) != tt.wantErr {
				t.Fatalf("transition error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidStatusTransition) {
				t.Errorf("Expected ErrInvalidStatusTransition, got %v", err)
			}
			if order.Status != tt.want {
				t.Errorf("Expected status %s, got %s", tt.want, order.Status)
			}
		})
	}
}

func TestOrder_ItemNames(t *testing.T) {
	order := &Order{Items: []catalog.Item{mustItem(t, catalog.Backpack), mustItem(t, catalog.BikeLight)}}
	names := order.ItemNames()
	if len(names) != 2 || names[0] != catalog.Backpack || names[1] != catalog.BikeLight {
		t.Errorf("Unexpected item names: %v", names)
	}
	if !(&Order{Status: OrderStatusCompleted}).IsCompleted() {
		t.Error("Expected completed order to report IsCompleted")
	}
}
