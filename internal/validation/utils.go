package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/lead-intake/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

// RawKeeper is implemented by payloads that want the decoded body as-is,
// unknown keys included, for audit logging and error echoes.
type RawKeeper interface {
	SetRaw(raw map[string]any)
	Raw() map[string]any
}

// BindAndValidate decodes the request body into payload and validates it.
//
// Flow:
//  1. Read the body. Empty or whitespace-only counts as {}.
//  2. Parse it into a map. Anything that is not a JSON object is rejected.
//  3. Decode the map into payload with weak typing ("42" -> 42). Keys match
//     their field names exactly. Required keys holding false, 0 or null are
//     left out so they count as missing.
//  4. payload.Validate() applies validation rules.
//
// Every failure is a 400 *errs.HTTPError. Missing required fields are all
// reported together with the received body.
func BindAndValidate(c echo.Context, payload Validatable) error {
	raw, err := readObject(c.Request().Body)
	if err != nil {
		return errors.Wrap(errs.NewInvalidJSONError(), err.Error())
	}

	if keeper, ok := payload.(RawKeeper); ok {
		keeper.SetRaw(raw)
	}

	if err := decode(withoutFalsyRequired(raw, payload), payload); err != nil {
		return errors.Wrap(errs.NewInvalidFieldTypeError(), err.Error())
	}

	if err := payload.Validate(); err != nil {
		return extractValidationError(err, raw)
	}

	return nil
}

func readObject(body io.Reader) (map[string]any, error) {
	if body == nil {
		return map[string]any{}, nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse request body: %w", err)
	}

	// A literal null unmarshals into a nil map.
	if raw == nil {
		return nil, fmt.Errorf("request body is not a JSON object")
	}

	return raw, nil
}

func decode(raw map[string]any, payload any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           payload,
		WeaklyTypedInput: true,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// withoutFalsyRequired copies raw minus the required keys whose value is
// false, 0 or null. Weak decoding would otherwise turn them into "false" or
// "0" and they would pass the required rule.
func withoutFalsyRequired(raw map[string]any, payload any) map[string]any {
	keys := requiredKeys(payload)
	if len(keys) == 0 {
		return raw
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for _, k := range keys {
		if v, ok := out[k]; ok && isFalsy(v) {
			delete(out, k)
		}
	}

	return out
}

// requiredKeys lists the body keys of fields tagged validate:"required".
func requiredKeys(payload any) []string {
	t := reflect.TypeOf(payload)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !hasRule(field.Tag.Get("validate"), "required") {
			continue
		}

		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" {
			name = field.Name
		}
		keys = append(keys, name)
	}

	return keys
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	}
	return false
}

// extractValidationError converts validator output into the client error.
// Required-field failures are collected in struct order; any other rule
// failure is reported as a plain bad request.
func extractValidationError(err error, raw map[string]any) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var missing []string
	var problems []string

	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		problems = append(problems, describe(fe))
	}

	if len(missing) > 0 {
		return errs.NewMissingFieldsError(missing, raw)
	}

	return errs.NewBadRequestError("Validation failed: "+strings.Join(problems, "; "), nil)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
	}

	if fe.Param() != "" {
		return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
}
