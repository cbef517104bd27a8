package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messages holds the public text per "field.tag". Nested fields are looked
// up as "parent.field.tag" first. Unlisted pairs fall back to a generic
// message.
var messages = map[string]string{
	"email.required":           "Please provide an email",
	"email.email":              "Please enter a valid email",
	"password.required":        "Please provide a password",
	"password.min":             "The password field must have 6 characters at least",
	"username.required":        "Please provide a username",
	"username.min":             "The field username must have 6 characters mininum",
	"refreshToken.required":    "Please provide a refresh token",
	"name.required":            "Please provide a name",
	"name.min":                 "The field name must have 6 characters mininum",
	"description.required":     "Please provide a description",
	"description.min":          "The field description must have 12 characters mininum",
	"description.max":          "The field description must have 100 characters maximum",
	"active.required":          "The field active is required",
	"quantity.required":        "The field quantity is required",
	"quantity.min":             "The field quantity must not be negative",
	"minQuantity.required":     "The field minQuantity is required",
	"minQuantity.min":          "The field minQuantity must not be negative",
	"unitPrice.required":       "The field unitPrice is required",
	"unitPrice.gt":             "The field unitPrice must be positive",
	"items.required":           "Please add valid items to your order",
	"items.min":                "Please add valid items to your order",
	"items.productId.required": "Please a productId is required for each item inside your order",
	"items.quantity.required":  "Please provide quantity for each item inside your order",
	"items.quantity.min":       "Each item inside your order should at leat have quantity equals to 1",
	"status.oneof":             "Please provide a valid status",
	"productId.required":       "Please provide a productId",
	"title.required":           "Please provide a review title",
	"title.min":                "Please provide a review title",
	"content.required":         "Please provide a review content",
	"content.min":              "The field content must have 12 characters mininum",
	"content.max":              "The field content must have 100 characters maximum",
	"stars.required":           "Please provide the stars field",
	"stars.min":                "The stars field value cannot be bellow 0",
	"stars.max":                "The stars field value cannot be above 5",
}

// Validate checks payload against its validate tags and reports the first
// failure as a 400.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	first := verrs[0]
	msg, ok := messages[fieldPath(first.Namespace())+"."+first.Tag()]
	if !ok {
		msg, ok = messages[first.Field()+"."+first.Tag()]
	}
	if !ok {
		msg = fmt.Sprintf("The field %s is invalid", first.Field())
	}
	return apperrors.NewValidationError(msg, map[string]any{"field": first.Field()})
}

// fieldPath turns "CreateOrderRequest.items[2].quantity" into
// "items.quantity".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")[1:]
	for i, part := range parts {
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			parts[i] = part[:idx]
		}
	}
	return strings.Join(parts, ".")
}
