package reports

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mnavarro/salesboard/internal/models"
)

const dateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date parameter is not a valid YYYY-MM-DD
// calendar date.
var ErrInvalidDate = errors.New("expected YYYY-MM-DD")

// Default result limits per report.
const (
	DefaultSalesLimit    = 100
	DefaultProductLimit  = 50
	DefaultTopLimit      = 10
	DefaultCatalogLimit  = 100
	DefaultCustomerLimit = 100
)

// Filter is the shared query filter for all sales reports. Zero values mean
// "not filtered". Date bounds are inclusive and compared lexicographically,
// which is equivalent to calendar order for YYYY-MM-DD strings.
type Filter struct {
	StartDate string
	EndDate   string
	Category  string
	Limit     int
}

// Validate rejects malformed date bounds before any query is built. The
// returned error names the offending parameter.
func (f Filter) Validate() error {
	if err := validateDate("start_date", f.StartDate); err != nil {
		return err
	}
	return validateDate("end_date", f.EndDate)
}

func validateDate(param, value string) error {
	if value == "" {
		return nil
	}
	// Round-trip through Format so short forms like 2024-1-2 are rejected
	// along with impossible dates like 2024-13-40.
	t, err := time.Parse(dateLayout, value)
	if err != nil || t.Format(dateLayout) != value {
		return fmt.Errorf("invalid %s %q: %w", param, value, ErrInvalidDate)
	}
	return nil
}

// whereClause builds the shared WHERE fragment and its arguments. The
// fragment starts with " WHERE " when any condition is present and is empty
// otherwise, so it can be concatenated directly after a FROM clause.
func (f Filter) whereClause() (string, []any) {
	var conds []string
	var args []any

	if f.StartDate != "" {
		conds = append(conds, "date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		conds = append(conds, "date <= ?")
		args = append(args, f.EndDate)
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// limitOr returns the filter's limit, or def when no positive limit was set.
func (f Filter) limitOr(def int) int {
	if f.Limit > 0 {
		return f.Limit
	}
	return def
}

// Period describes the effective date range, with "all" for absent bounds.
func (f Filter) Period() models.Period {
	p := models.Period{StartDate: "all", EndDate: "all"}
	if f.StartDate != "" {
		p.StartDate = f.StartDate
	}
	if f.EndDate != "" {
		p.EndDate = f.EndDate
	}
	return p
}
