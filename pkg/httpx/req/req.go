package req

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"re_deals/pkg/errcodes"
)

// MaxBodyBytes предел тела запроса, входные данные сделки укладываются с запасом.
const MaxBodyBytes = 1 << 20

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	validate = newValidate()                                //nolint:gochecknoglobals // skip
)

// newValidate в ошибках валидатора поля называются так же, как в JSON.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func Read(r *http.Request, dest any) error {
	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		description := "Invalid JSON"

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			description = fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit)
		}

		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(description),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(describe(err)),
		)
	}

	return nil
}

// describe сводит ошибки валидатора к списку "поле: правило".
func describe(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrors))

	for _, fe := range fieldErrors {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}

		// без имени корневой структуры
		_, field, _ := strings.Cut(fe.Namespace(), ".")

		parts = append(parts, field+": "+rule)
	}

	return strings.Join(parts, "; ")
}
