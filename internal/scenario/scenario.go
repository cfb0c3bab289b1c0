// Package scenario holds the static data that parametrizes the suite: the
// standard user, the expected checkout literals and the login outcome table.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed login_scenarios.yaml
var loginScenariosYAML []byte

// ErrInvalidScenario is returned when a table row breaks the success/error invariant
var ErrInvalidScenario = errors.New("invalid login scenario")

// Credentials is a username and password pair
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// User is a set of credentials with a human readable description
type User struct {
	Credentials `yaml:",inline"`
	Description string `yaml:"description"`
}

// FailureScenario is a set of credentials the site rejects with ErrorMessage
type FailureScenario struct {
	Credentials  `yaml:",inline"`
	ErrorMessage string `yaml:"error_message"`
}

// LoginScenario is one row of the data-driven login table.
// ErrorMessage is set exactly when IsSuccess is false.
type LoginScenario struct {
	Credentials
	IsSuccess bool
	// ExpectedPath is where the browser must end up, relative to the base URL.
	ExpectedPath string
	ErrorMessage string
}

// ExpectedURL resolves ExpectedPath against baseURL, which ends in a slash
func (s LoginScenario) ExpectedURL(baseURL string) string {
	return baseURL + s.ExpectedPath
}

// DisplayName is the username, or a placeholder when it is empty
func (s LoginScenario) DisplayName() string {
	if s.Username == "" {
		return "[EMPTY USERNAME]"
	}
	return s.Username
}

// Outcome is SUCCESS or FAILURE
func (s LoginScenario) Outcome() string {
	if s.IsSuccess {
		return "SUCCESS"
	}
	return "FAILURE"
}

// CaseName is the reported name of the generated test case
func (s LoginScenario) CaseName() string {
	return fmt.Sprintf("TC_DDT_LOGIN: Check login for user: %s (%s)", s.DisplayName(), s.Outcome())
}

// Validate checks the success/error invariant
func (s LoginScenario) Validate() error {
	if s.IsSuccess && s.ErrorMessage != "" {
		return fmt.Errorf("%w: %s succeeds but expects error %q", ErrInvalidScenario, s.DisplayName(), s.ErrorMessage)
	}
	if !s.IsSuccess && s.ErrorMessage == "" {
		return fmt.Errorf("%w: %s fails without an expected error", ErrInvalidScenario, s.DisplayName())
	}
	return nil
}

// Table is an ordered list of login scenarios
type Table []LoginScenario

// BuildTable concatenates one success row for user with one failure row per
// failure scenario
func BuildTable(user User, successPath string, failures []FailureScenario, failurePath string) Table {
	table := make(Table, 0, len(failures)+1)
	table = append(table, LoginScenario{
		Credentials:  user.Credentials,
		IsSuccess:    true,
		ExpectedPath: successPath,
	})
	for _, f := range failures {
		table = append(table, LoginScenario{
			Credentials:  f.Credentials,
			ExpectedPath: failurePath,
			ErrorMessage: f.ErrorMessage,
		})
	}
	return table
}

// Validate checks every row and that case names are unique
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidScenario)
	}
	seen := make(map[string]int, len(t))
	names := make(map[string]int, len(t))
	var errs []string
	for i, s := range t {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", i, err))
		}
		key := s.Username + "\x00" + s.Password
		if j, dup := seen[key]; dup {
			errs = append(errs, fmt.Sprintf("row %d duplicates row %d", i, j))
		}
		seen[key] = i
		// Each row runs as its own subtest, so its name must be unique.
		name := s.CaseName()
		if j, dup := names[name]; dup {
			errs = append(errs, fmt.Sprintf("row %d has the same case name as row %d: %q", i, j, name))
		}
		names[name] = i
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScenario, strings.Join(errs, "; "))
	}
	return nil
}

// Successes returns the rows expected to log in
func (t Table) Successes() Table {
	return t.filter(true)
}

// Failures returns the rows expected to be rejected
func (t Table) Failures() Table {
	return t.filter(false)
}

func (t Table) filter(success bool) Table {
	var out Table
	for _, s := range t {
		if s.IsSuccess == success {
			out = append(out, s)
		}
	}
	return out
}

// Failure returns the first failure row for username
func (t Table) Failure(username string) (LoginScenario, bool) {
	for _, s := range t {
		if !s.IsSuccess && s.Username == username {
			return s, true
		}
	}
	return LoginScenario{}, false
}

// CaseNames returns the generated case name of every row, in table order
func (t Table) CaseNames() []string {
	names := make([]string, len(t))
	for i, s := range t {
		names[i] = s.CaseName()
	}
	return names
}

type tableFile struct {
	StandardUser User              `yaml:"standard_user"`
	SuccessPath  string            `yaml:"success_path"`
	FailurePath  string            `yaml:"failure_path"`
	Failures     []FailureScenario `yaml:"failures"`
}

// Parse decodes a scenario file and builds its table
func Parse(data []byte) (User, Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return User{}, nil, fmt.Errorf("failed to decode login scenarios: %w", err)
	}
	if f.StandardUser.Username == "" || f.StandardUser.Password == "" {
		return User{}, nil, fmt.Errorf("%w: standard_user needs a username and password", ErrInvalidScenario)
	}
	table := BuildTable(f.StandardUser, f.SuccessPath, f.Failures, f.FailurePath)
	if err := table.Validate(); err != nil {
		return User{}, nil, err
	}
	return f.StandardUser, table, nil
}

var (
	standardUser User
	loginTable   Table
)

func init() {
	var err error
	standardUser, loginTable, err = Parse(loginScenariosYAML)
	if err != nil {
		panic(err)
	}
}

// StandardUser is the account the logged-in fixtures use
func StandardUser() User {
	return standardUser
}

// LoginTable returns a copy of the shipped login table
func LoginTable() Table {
	out := make(Table, len(loginTable))
	copy(out, loginTable)
	return out
}
