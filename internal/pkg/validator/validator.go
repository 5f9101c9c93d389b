// Package validator wraps go-playground/validator with the rules shared by the
// netflow configuration structs and a flat, readable error format.
//
// Besides the stock tags it understands:
//
//   - rpc_url: an absolute http, https, ws or wss URL with a host.
//   - ledger_dsn: "memory://" or a postgres:// / postgresql:// URL.
//
// Field names in errors come from the `envconfig` struct tag when present, so
// a failure points at the environment variable to fix.
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

const memoryDSN = "memory://"

var (
	rpcSchemes    = []string{"http", "https", "ws", "wss"}
	ledgerSchemes = []string{"postgres", "postgresql"}
)

var validator = newValidator()

func newValidator() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("rpc_url", isRPCURL)
	_ = v.RegisterValidation("ledger_dsn", isLedgerDSN)

	return v
}

// fieldName prefers the envconfig name of a field over its Go name.
func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("envconfig"), ",")
	if name == "" || name == "-" {
		return f.Name
	}

	return name
}

func hasScheme(raw string, schemes []string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	return slices.Contains(schemes, strings.ToLower(u.Scheme))
}

func isRPCURL(fl gvalidator.FieldLevel) bool {
	return hasScheme(fl.Field().String(), rpcSchemes)
}

func isLedgerDSN(fl gvalidator.FieldLevel) bool {
	dsn := fl.Field().String()
	if dsn == memoryDSN {
		return true
	}

	return hasScheme(dsn, ledgerSchemes)
}

// formatError turns validator.ValidationErrors into ErrValidationFailed joined
// with one message per failing field. Other errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // at least one field is invalid
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
