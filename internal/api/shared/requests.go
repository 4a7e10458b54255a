package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared across requests; validator instances cache struct
// metadata, so one per process is enough.
var validate = validator.New()

// DecodeJSON unmarshals the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded payload against its `validate` tags.
// A payload type with its own Validate method takes precedence over the
// tag-driven check.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}
