package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"spa/config"
	"spa/shared/constant"
	"spa/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

// configured is implemented by domain values whose validity depends on runtime configuration.
type configured interface {
	Validate(cfg *config.Config) error
}

var validate *val.Validate

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	rules := map[string]val.Func{
		// spa defers to the value's own Validate method.
		"spa": func(fl val.FieldLevel) bool {
			value, ok := fl.Field().Interface().(configured)

			return ok && value.Validate(cfg) == nil
		},
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"day": func(fl val.FieldLevel) bool {
			_, err := time.Parse(constant.DayFormat, fl.Field().String())

			return err == nil
		},
	}

	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
		}
	}
}

// jsonName makes messages name fields the way clients send them.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == constant.Empty || name == "-" {
		return field.Name
	}

	return name
}

// Validate decodes a JSON body into data and validates it. Every failure is a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
