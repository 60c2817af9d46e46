package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// validateInput rejects malformed input before any computation runs.
func validateInput(input any, amounts ...float64) error {
	if err := validate.Struct(input); err != nil {
		return domain.WrapError(err, errcodes.InvalidInput, "invalid input")
	}

	for _, amount := range amounts {
		if amount > MaxAmount {
			return domain.NewError(errcodes.InvalidInput,
				fmt.Sprintf("amount exceeds the maximum of %.0f NIS", MaxAmount))
		}
	}

	return nil
}

func validateTerm(policy Policy, termYears int) error {
	if _, err := policy.PaymentFactor(termYears); err != nil {
		return domain.WrapError(err, errcodes.InvalidInput, "invalid input")
	}
	return nil
}
