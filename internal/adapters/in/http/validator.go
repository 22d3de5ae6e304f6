package http

import (
	"errors"

	validatorv10 "github.com/go-playground/validator/v10"
)

// RequestValidator plugs validator/v10 struct tags into echo.Context.Validate.
type RequestValidator struct {
	validate *validatorv10.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validatorv10.New()}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// validationFields flattens validator errors into field → message.
func validationFields(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Namespace()] = fe.Tag()
		}
		return out
	}
	out["error"] = err.Error()
	return out
}
