package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the request validator; field names in error maps use
// the json tag, not the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=128"`
	Username string `json:"username" validate:"required,max=128"`
	Email    string `json:"email" validate:"required,email,max=128"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateProfileRequest is a partial update: nil means "leave unchanged".
type updateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=128"`
	Email    *string `json:"email" validate:"omitempty,email,max=128"`
	Bio      *string `json:"bio"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type createPostRequest struct {
	Title       string   `json:"title" validate:"required,max=128"`
	Description string   `json:"description" validate:"required"`
	Contents    string   `json:"contents" validate:"required"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type updatePostRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=128"`
	Description *string   `json:"description"`
	Contents    *string   `json:"contents"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,max=64"`
}

type commentRequest struct {
	Contents string `json:"contents" validate:"required"`
}

// bindJSON decodes and validates the request body into dst. On failure it
// writes the error response itself and returns false. Malformed JSON is a
// 400; schema violations are a 422 with a per-field errors map.
func bindJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger *slog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body", logger)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		fields := map[string][]string{}
		if ok := validatorErrors(err, &verrs); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = append(fields[fe.Field()], validationMessage(fe))
			}
		}
		respondWithJSON(w, http.StatusUnprocessableEntity, errorEnvelope{
			Message: "Validation failed",
			Errors:  fields,
		}, logger)
		return false
	}
	return true
}

func validatorErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Not a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters long", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters long", fe.Param())
	default:
		return fmt.Sprintf("Failed '%s' validation", fe.Tag())
	}
}
