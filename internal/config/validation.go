package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/finsim/internal/catalog"
	"github.com/rgehrsitz/finsim/internal/domain"
	"github.com/rgehrsitz/finsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// FieldIssue is one problem found in an input, keyed by its snake_case path.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every issue found in an input. It wraps the
// underlying validator.ValidationErrors or dateutil.ErrInvalidMonth when one
// caused it.
type ValidationError struct {
	Issues []FieldIssue
	Err    error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Field == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, is.Field+": "+is.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type issueList []FieldIssue

func (l *issueList) add(field, format string, args ...interface{}) {
	*l = append(*l, FieldIssue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (l issueList) wrap(cause error) error {
	if len(l) == 0 {
		return nil
	}
	return &ValidationError{Issues: l, Err: cause}
}

// normalizeMonth canonicalizes a non-empty month in place.
func normalizeMonth(issues *issueList, field string, month *string) {
	if *month == "" {
		return
	}
	normalized, err := dateutil.NormalizeMonth(*month)
	if err != nil {
		issues.add(field, "must be a YYYY-MM month, got %q", *month)
		return
	}
	*month = normalized
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Decimals validate as their float value so gte/gt tags apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("yyyymm", func(fl validator.FieldLevel) bool {
		_, err := dateutil.ParseMonth(fl.Field().String())
		return err == nil
	})

	// Report fields by their file keys. Untagged fields keep their Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return v
}

// ValidateConfiguration validates a normalized configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	var issues issueList
	cause := structIssues(&issues, config)

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if s.Name != "" && seen[s.Name] {
			issues.add(fmt.Sprintf("scenarios[%d].name", i), "duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		checkInput(&issues, &s.ProjectionInput, fmt.Sprintf("scenarios[%d]", i))
	}
	return issues.wrap(cause)
}

// ValidateInput validates a single normalized projection input.
func (ip *InputParser) ValidateInput(in *domain.ProjectionInput) error {
	if in == nil {
		return &ValidationError{Issues: []FieldIssue{{Message: "projection input is required"}}}
	}
	var issues issueList
	cause := structIssues(&issues, in)
	checkInput(&issues, in, "")
	return issues.wrap(cause)
}

// structIssues runs the struct-tag rules and records each failure.
func structIssues(issues *issueList, s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		issues.add("", "%v", err)
		return err
	}
	for _, fe := range verrs {
		issues.add(fieldPath(fe), "%s", describe(fe))
	}
	return verrs
}

// fieldPath drops the root type name and the unnamed inline scenario input
// from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return strings.ReplaceAll(ns, "ProjectionInput.", "")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "yyyymm":
		return fmt.Sprintf("must be a YYYY-MM month, got %q", fe.Value())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// checkInput applies the rules struct tags cannot express.
func checkInput(issues *issueList, in *domain.ProjectionInput, prefix string) {
	for i, e := range in.Events {
		// an untyped event keeps the sign it was written with
		if e.Type != "" && !catalog.Known(e.Type) {
			issues.add(joinField(prefix, fmt.Sprintf("events[%d].type", i)),
				"unknown event type %q (known: %s)", e.Type, strings.Join(catalog.Types(), ", "))
		}
		if e.EndMonth == "" {
			continue
		}
		if idx, err := dateutil.MonthIndex(e.StartMonth, e.EndMonth); err == nil && idx < 0 {
			issues.add(joinField(prefix, fmt.Sprintf("events[%d].end_month", i)), "must not be before start_month %s", e.StartMonth)
		}
	}

	if in.Positions == nil {
		return
	}
	for i, h := range in.Positions.AllHomes() {
		hf := joinField(prefix, fmt.Sprintf("positions.homes[%d]", i))
		if h.IsExisting() {
			if h.PurchasePrice.IsPositive() || h.PurchaseMonth != "" || h.Mortgage != nil {
				issues.add(hf, "an existing home takes its value and mortgage from existing, not purchase fields")
			}
			continue
		}
		if h.PurchasePrice.IsPositive() && h.PurchaseMonth == "" {
			issues.add(hf+".purchase_month", "is required for a purchase")
		}
		if h.DownPayment.GreaterThan(h.PurchasePrice) {
			issues.add(hf+".down_payment", "must not exceed purchase_price")
		}
	}
	for i, l := range in.Positions.Loans {
		if l.Principal.IsPositive() && l.TermMonths == 0 {
			issues.add(joinField(prefix, fmt.Sprintf("positions.loans[%d].term_months", i)), "is required for a loan with a principal")
		}
	}
}
