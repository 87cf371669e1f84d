package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the validator instance shared by the package
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field errors under their JSON names so validation messages
	// match what the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateCreateItemRequest checks that all required fields of a create
// request are present. productName and sku must additionally be non-empty;
// quantity and price only need to be present, zero and negative values are
// accepted as-is.
func ValidateCreateItemRequest(req *CreateItemRequest) error {
	var missing []string

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			missing = append(missing, fe.Field())
		}
	}

	if req.ProductName != nil && *req.ProductName == "" {
		missing = append(missing, "productName")
	}
	if req.SKU != nil && *req.SKU == "" {
		missing = append(missing, "sku")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
