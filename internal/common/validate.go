package common

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
)

// ValidationDetails extracts the offending field names from a validator
// error for inclusion in the error envelope.
func ValidationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return map[string]any{"fields": fields}
}
