package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	dateLayoutSlash = "2006/01/02"
	timeLayout      = "15:04"
)

// moneyPattern is the required textual format for price and total:
// a non-negative integer part, a literal dot, exactly two digits.
var moneyPattern = regexp.MustCompile(`^\d+\.\d{2}$`)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError aggregates every violation found in a submission.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "invalid receipt: " + strings.Join(msgs, "; ")
}

// Messages returns the violations in "field.path: message" form, in the
// order they were discovered.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return msgs
}

// Validate checks every field of a submitted receipt independently and
// collects all violations before reporting; it never stops at the first
// failure. On success it returns the receipt with the purchase date
// normalized to YYYY-MM-DD.
func Validate(r Receipt) (Receipt, error) {
	var violations []Violation

	if strings.TrimSpace(r.Retailer) == "" {
		violations = append(violations, Violation{"retailer", "retailer cannot be empty or whitespace"})
	}

	if normalized, ok := parseDate(r.PurchaseDate); ok {
		r.PurchaseDate = normalized
	} else {
		violations = append(violations, Violation{"purchaseDate", "purchaseDate must be a valid date in YYYY-MM-DD or YYYY/MM/DD format"})
	}

	if _, err := time.Parse(timeLayout, r.PurchaseTime); err != nil {
		violations = append(violations, Violation{"purchaseTime", "purchaseTime must be a valid time in HH:MM format"})
	}

	// A nil slice means the key was absent from the body; an explicit empty
	// list is schema-valid and simply earns no item points.
	if r.Items == nil {
		violations = append(violations, Violation{"items", "field is required"})
	}
	for i, item := range r.Items {
		prefix := "items." + strconv.Itoa(i) + "."
		if strings.TrimSpace(item.ShortDescription) == "" {
			violations = append(violations, Violation{prefix + "shortDescription", "shortDescription cannot be empty or whitespace"})
		}
		if !moneyPattern.MatchString(item.Price) {
			violations = append(violations, Violation{prefix + "price", "price must be in XX.XX format"})
		}
	}

	if !moneyPattern.MatchString(r.Total) {
		violations = append(violations, Violation{"total", "total must be in XX.XX format"})
	}

	if len(violations) > 0 {
		return Receipt{}, &ValidationError{Violations: violations}
	}
	return r, nil
}

// parseDate accepts YYYY-MM-DD or YYYY/MM/DD and reports the normalized
// YYYY-MM-DD form.
func parseDate(value string) (string, bool) {
	for _, layout := range []string{dateLayout, dateLayoutSlash} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(dateLayout), true
		}
	}
	return "", false
}
