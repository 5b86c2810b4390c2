package roster

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fa"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

// Persian messages for the tags used on User.
var faMessages = map[string]string{
	"oneof": "مقدار {0} معتبر نیست",
}

var fieldLabels = map[string]string{
	"name":  "نام و نام خانوادگی",
	"email": "ایمیل",
	"role":  "نقش",
}

func init() {
	validate = validator.New()

	uni := ut.New(en.New(), fa.New(), en.New())
	var found bool
	translator, found = uni.GetTranslator("fa")
	if !found {
		panic("roster: no fa translator")
	}
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Sprintf("roster: register default translations: %v", err))
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, text := range faMessages {
		registerFn := func(tag, text string) validator.RegisterTranslationsFunc {
			return func(t ut.Translator) error {
				return t.Add(tag, text, true)
			}
		}(tag, text)
		if err := validate.RegisterTranslation(tag, translator, registerFn, translateField); err != nil {
			panic(fmt.Sprintf("roster: register %q translation: %v", tag, err))
		}
	}
}

func translateField(t ut.Translator, fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	msg, err := t.T(fe.Tag(), label)
	if err != nil {
		return fe.Error()
	}
	return msg
}

// FieldError is one rejected field with its translated message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of a user.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid user: " + strings.Join(parts, "; ")
}

// Message joins the translated messages for display.
func (e *ValidationError) Message() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "، ")
}

// Validate checks a user record. Only the role is constrained.
func Validate(u User) error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: fe.Translate(translator)})
	}
	return out
}
