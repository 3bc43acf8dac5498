package catalog

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs the tag-based rules on any struct (entities or request
// payloads) and reports failures as a *ValidationError.
func Validate(s interface{}) error {
	return validateStruct(s)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		var message string
		switch fe.Tag() {
		case "required":
			message = "is required"
		case "max":
			message = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "len":
			message = fmt.Sprintf("must be exactly %s characters", fe.Param())
		case "oneof":
			message = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			message = "is invalid"
		}
		out.Fields = append(out.Fields, FieldError{
			Field:   snakeCase(fe.Field()),
			Message: message,
		})
	}
	return out
}

// snakeCase maps Go field names onto their JSON form (DateOfBirth ->
// date_of_birth) so validation details match the request payload.
func snakeCase(field string) string {
	runes := []rune(field)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
