package scenario

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/saucesuite/internal/catalog"
	"github.com/themizzi/saucesuite/internal/models"
)

func TestLoginTable_Shipped(t *testing.T) {
	table := LoginTable()

	require.NoError(t, table.Validate())
	assert.Len(t, table, 5)
	assert.Len(t, table.Successes(), 1)
	assert.Len(t, table.Failures(), 4)

	first := table[0]
	assert.True(t, first.IsSuccess, "the success row comes first")
	assert.Equal(t, "standard_user", first.Username)
	assert.Equal(t, "https://www.saucedemo.com/inventory.html", first.ExpectedURL("https://www.saucedemo.com/"))

	for _, s := range table.Failures() {
		assert.Equal(t, "http://127.0.0.1:8080/", s.ExpectedURL("http://127.0.0.1:8080/"))
	}
}

func TestLoginTable_ErrorIffFailure(t *testing.T) {
	for _, s := range LoginTable() {
		assert.Equal(t, !s.IsSuccess, s.ErrorMessage != "", "row %q", s.CaseName())
	}
}

func TestLoginTable_IsCopy(t *testing.T) {
	a := LoginTable()
	a[0].Username = "mutated"
	assert.Equal(t, "standard_user", LoginTable()[0].Username)
}

func TestLoginTable_CaseNames(t *testing.T) {
	assert.Equal(t, []string{
		"TC_DDT_LOGIN: Check login for user: standard_user (SUCCESS)",
		"TC_DDT_LOGIN: Check login for user: locked_out_user (FAILURE)",
		"TC_DDT_LOGIN: Check login for user: incorrect_user (FAILURE)",
		"TC_DDT_LOGIN: Check login for user: [EMPTY USERNAME] (FAILURE)",
		"TC_DDT_LOGIN: Check login for user: standard_user (FAILURE)",
	}, LoginTable().CaseNames())
}

func TestTable_Failure(t *testing.T) {
	s, ok := LoginTable().Failure("locked_out_user")
	require.True(t, ok)
	assert.Equal(t, "Epic sadface: Sorry, this user has been locked out.", s.ErrorMessage)

	_, ok = LoginTable().Failure("visual_user")
	assert.False(t, ok)
}

func TestLoginScenario_Validate(t *testing.T) {
	tests := []struct {
		name     string
		scenario LoginScenario
		wantErr  bool
	}{
		{
			name:     "success without error",
			scenario: LoginScenario{IsSuccess: true},
		},
		{
			name:     "failure with error",
			scenario: LoginScenario{ErrorMessage: "Epic sadface: Username is required"},
		},
		{
			name:     "success with error",
			scenario: LoginScenario{IsSuccess: true, ErrorMessage: "boom"},
			wantErr:  true,
		},
		{
			name:     "failure without error",
			scenario: LoginScenario{Credentials: Credentials{Username: "x"}},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidScenario))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{
			name: "success only",
			data: `
standard_user: {username: a, password: b}
success_path: inventory.html
`,
			wantLen: 1,
		},
		{
			name: "failure row missing its error",
			data: `
standard_user: {username: a, password: b}
failures:
  - {username: c, password: d}
`,
			wantErr: true,
		},
		{
			name: "duplicate credentials",
			data: `
standard_user: {username: a, password: b}
failures:
  - {username: a, password: b, error_message: nope}
`,
			wantErr: true,
		},
		{
			name: "failure rows sharing a case name",
			data: `
standard_user: {username: a, password: b}
failures:
  - {username: incorrect_user, password: wrong_password, error_message: nope}
  - {username: incorrect_user, password: other_password, error_message: nope}
`,
			wantErr: true,
		},
		{
			name: "same username with different outcomes",
			data: `
standard_user: {username: a, password: b}
success_path: inventory.html
failures:
  - {username: a, password: wrong, error_message: nope}
`,
			wantLen: 2,
		},
		{
			name:    "missing standard user",
			data:    `success_path: inventory.html`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			data:    "standard_user: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, table, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, table, tt.wantLen)
		})
	}
}

func TestStandardUser(t *testing.T) {
	u := StandardUser()
	assert.Equal(t, "standard_user", u.Username)
	assert.Equal(t, "secret_sauce", u.Password)
	assert.NotEmpty(t, u.Description)
}

// The literals are asserted verbatim in the browser, so they must agree with
// what the replica storefront computes and renders.
func TestProductLiterals_MatchCatalog(t *testing.T) {
	var lines []catalog.Item
	for _, name := range CartItems() {
		item, err := catalog.Find(name)
		require.NoError(t, err)
		lines = append(lines, item)
	}
	assert.Equal(t, BackpackPrice, lines[0].Price.String())
	assert.Equal(t, BoltTShirtPrice, lines[1].Price.String())

	totals := catalog.ComputeTotals(lines)
	assert.Equal(t, Subtotal, totals.SubtotalLabel())
	assert.Equal(t, Tax, totals.TaxLabel())
	assert.Equal(t, Total, totals.TotalLabel())
}

func TestCheckoutFormErrors_MatchValidation(t *testing.T) {
	for _, fe := range CheckoutFormErrors() {
		t.Run(fe.Name, func(t *testing.T) {
			err := models.CustomerInfo{
				FirstName:  fe.Customer.FirstName,
				LastName:   fe.Customer.LastName,
				PostalCode: fe.Customer.PostalCode,
			}.Validate()
			require.Error(t, err)
			assert.Equal(t, fe.Message, err.Error())
		})
	}
}
