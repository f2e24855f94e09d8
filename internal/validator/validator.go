// Package validator provides custom validation functions for Gin's binding
// engine and English messages for validation failures.
package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
)

var (
	registerOnce sync.Once
	registerErr  error
	translator   ut.Translator
)

// Register registers all custom validators and English translations with
// the Gin binding engine. It is safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("validator: unexpected binding engine")
			return
		}
		registerErr = registerOn(v)
	})
	return registerErr
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	if err := v.RegisterValidation("expense_category", validateExpenseCategory); err != nil {
		return err
	}
	if err := v.RegisterValidation("calendar_date", validateCalendarDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("transaction_kind", validateTransactionKind); err != nil {
		return err
	}

	eng := en.New()
	uni := ut.New(eng, eng)
	trans, found := uni.GetTranslator("en")
	if !found {
		return errors.New("validator: en translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	custom := map[string]string{
		"expense_category": "{0} must be one of " + strings.Join(ledger.ExpenseCategories, ", "),
		"calendar_date":    "{0} must be a calendar date in YYYY-MM-DD format",
		"transaction_kind": "{0} must be expense or income",
	}
	for tag, text := range custom {
		if err := v.RegisterTranslation(tag, trans, registrationFunc(tag, text), translateFunc); err != nil {
			return err
		}
	}

	translator = trans
	return nil
}

func registrationFunc(tag, text string) validator.RegisterTranslationsFunc {
	return func(t ut.Translator) error {
		return t.Add(tag, text, true)
	}
}

func translateFunc(t ut.Translator, fe validator.FieldError) string {
	msg, err := t.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}
	return msg
}

// Message turns a binding error into a readable message. Validation errors
// are translated and joined; other errors are returned as is.
func Message(err error) string {
	var errs validator.ValidationErrors
	if translator == nil || !errors.As(err, &errs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fe.Translate(translator))
	}
	return strings.Join(msgs, "; ")
}

// jsonFieldName reports fields by their JSON or form name.
func jsonFieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// decimalValue lets numeric tags such as gt=0 apply to decimal amounts.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return ledger.IsExpenseCategory(fl.Field().String())
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return ledger.ValidDate(fl.Field().String())
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return ledger.Kind(fl.Field().String()).Valid()
}
