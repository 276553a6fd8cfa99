// Package validation holds the request rules shared by the HTTP layer and
// the seed command.
package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxQueryLength bounds the natural-language question sent to the model.
const MaxQueryLength = 1000

var rules = map[string]validator.Func{
	"account_id":   isAccountID,
	"search_query": isSearchQuery,
}

// New returns a validator with the custom tags registered. Field names in
// errors come from the json tag so messages match the request body.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("validation: register " + tag + ": " + err.Error())
		}
	}
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// Shared is the process-wide instance. validator caches struct metadata,
// so reusing one avoids rebuilding it per request.
var Shared = sync.OnceValue(New)

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// isAccountID accepts any non-nil UUID. The version nibble is not checked
// since upstream systems issue several versions.
func isAccountID(fl validator.FieldLevel) bool {
	id, err := uuid.Parse(fl.Field().String())
	return err == nil && id != uuid.Nil
}

// isSearchQuery rejects blank questions and ones over MaxQueryLength runes.
func isSearchQuery(fl validator.FieldLevel) bool {
	q := strings.TrimSpace(fl.Field().String())
	return q != "" && utf8.RuneCountInString(q) <= MaxQueryLength
}
