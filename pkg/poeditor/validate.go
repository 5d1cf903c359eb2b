package poeditor

import (
	"github.com/go-playground/validator/v10"
)

// validate checks option and entry structs. Validation is structural only
// (presence, enum membership); business meaning is left to the service.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return &ArgsError{Message: "invalid request parameters", Err: err}
	}
	return nil
}

// validateEach validates every element of a data slice before it is encoded
// into a request.
func validateEach[T any](entries []T) error {
	if len(entries) == 0 {
		return &ArgsError{Message: "at least one entry is required"}
	}
	for _, e := range entries {
		if err := validateStruct(e); err != nil {
			return err
		}
	}
	return nil
}

func requireProjectID(id int) error {
	if id <= 0 {
		return &ArgsError{Message: "project id is required"}
	}
	return nil
}

func requireString(name, value string) error {
	if value == "" {
		return &ArgsError{Message: name + " is required"}
	}
	return nil
}
