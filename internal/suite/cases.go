package suite

import (
	"testing"

	"github.com/themizzi/saucesuite/internal/scenario"
)

// Case is one generated test case
type Case[T any] struct {
	Name string
	Data T
}

// LoginCases turns each row of the login table into a named case
func LoginCases(table scenario.Table) []Case[scenario.LoginScenario] {
	cases := make([]Case[scenario.LoginScenario], len(table))
	for i, s := range table {
		cases[i] = Case[scenario.LoginScenario]{Name: s.CaseName(), Data: s}
	}
	return cases
}

// FormErrorCases turns each blank-field checkout submission into a named case
func FormErrorCases(errs []scenario.FormError) []Case[scenario.FormError] {
	cases := make([]Case[scenario.FormError], len(errs))
	for i, fe := range errs {
		cases[i] = Case[scenario.FormError]{Name: fe.Name, Data: fe}
	}
	return cases
}

// Run registers every case as its own subtest before any of them runs, so each
// is reported and can be selected with -run independently
func Run[T any](t *testing.T, cases []Case[T], body func(t *testing.T, data T)) {
	t.Helper()

	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if seen[c.Name] {
			t.Fatalf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			body(t, c.Data)
		})
	}
}
