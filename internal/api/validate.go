package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is the shared validator instance. Failures report the JSON field
// name, and decimal fields validate through their numeric value so rules
// like gt=0 apply to them.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// fieldError is one entry in a validation failure response.
type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// checkStruct validates v and converts every failure into a fieldError.
func checkStruct(v any) []fieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "", Rule: "struct", Message: err.Error()}}
	}

	errs := make([]fieldError, 0, len(verrs))
	for _, e := range verrs {
		rule := e.Tag()
		if e.Param() != "" {
			rule += "=" + e.Param()
		}
		// Namespace carries the JSON names and slice indexes; drop the
		// root struct name so callers see "image[0].url", not the type.
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		errs = append(errs, fieldError{
			Field:   field,
			Rule:    rule,
			Message: fmt.Sprintf("%s does not satisfy %s", field, rule),
		})
	}
	return errs
}

// appendUnique appends src entries whose field has not already failed, so a
// parameter that failed to parse is not reported twice.
func appendUnique(dst, src []fieldError) []fieldError {
	seen := make(map[string]bool, len(dst))
	for _, e := range dst {
		seen[e.Field] = true
	}
	for _, e := range src {
		if !seen[e.Field] {
			dst = append(dst, e)
		}
	}
	return dst
}

// validationFailed writes the full list of field failures. The handler body
// must not have run.
func validationFailed(w http.ResponseWriter, errs []fieldError) {
	jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{"detail": errs})
}

// intParam parses a path or query value as an integer, recording a failure
// instead of returning an error.
func intParam(field, value string, def int, errs []fieldError) (int, []fieldError) {
	if value == "" {
		return def, errs
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def, append(errs, fieldError{
			Field:   field,
			Rule:    "integer",
			Message: fmt.Sprintf("%s is not a valid integer", field),
		})
	}
	return n, errs
}

// boolParam parses a query value as a boolean, recording a failure instead
// of returning an error.
func boolParam(field, value string, def bool, errs []fieldError) (bool, []fieldError) {
	if value == "" {
		return def, errs
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def, append(errs, fieldError{
			Field:   field,
			Rule:    "boolean",
			Message: fmt.Sprintf("%s is not a valid boolean", field),
		})
	}
	return b, errs
}
