package handlers

import (
	"errors"
	"strings"

	"github.com/SscSPs/fx_rates_service/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

const missingPairMessage = "from and to required"

// bindingErrorMessage turns a query binding failure into a client facing message.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return missingPairMessage
			}
		}
		return "invalid value for " + strings.ToLower(verrs[0].Field())
	}
	return "Invalid query parameters: " + err.Error()
}

// validationMessage strips the apperrors.ErrValidation prefix from err.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := apperrors.ErrValidation.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}
