package reply

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"re_deals/pkg/contextx"
	"re_deals/pkg/errcodes"
	"re_deals/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// codedError ошибка доменного слоя: статус ответа выбирается по её коду.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
	Description() string
}

//nolint:gochecknoglobals
var statusByCode = map[failure.ErrorCode]int{
	errcodes.InternalServerError:  http.StatusInternalServerError,
	errcodes.NotFound:             http.StatusNotFound,
	errcodes.DealNotFound:         http.StatusNotFound,
	errcodes.Forbidden:            http.StatusForbidden,
	errcodes.Unauthorized:         http.StatusUnauthorized,
	errcodes.DealAlreadyPublished: http.StatusConflict,
	errcodes.InvalidDealInputs:    http.StatusBadRequest,
	errcodes.InvalidSweepVariable: http.StatusBadRequest,
	errcodes.InvalidMetric:        http.StatusBadRequest,
	errcodes.InvalidPaging:        http.StatusBadRequest,
}

// failureClasses ошибки failure без доменного кода, порядок проверки важен.
//
//nolint:gochecknoglobals
var failureClasses = []struct {
	is          func(error) bool
	status      int
	defaultCode failure.ErrorCode
}{
	{failure.IsInvalidArgumentError, http.StatusBadRequest, errcodes.ValidationError},
	{failure.IsNotFoundError, http.StatusNotFound, errcodes.NotFound},
	{failure.IsUnauthorizedError, http.StatusUnauthorized, errcodes.Unauthorized},
	{failure.IsForbiddenError, http.StatusForbidden, errcodes.Forbidden},
	{failure.IsConflictError, http.StatusConflict, ""},
	{failure.IsUnprocessableEntityError, http.StatusUnprocessableEntity, ""},
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error отвечает JSON с кодом ошибки. Доменные коды берут статус из statusByCode,
// ошибки failure из failureClasses, всё прочее становится 500.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	status, response := classify(err)
	response.SupportID = supportID(ctx)

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("request failed", slog.Int(logx.FieldResponseStatus, status), logx.Error(err))
	} else {
		logger(ctx).Warn("request rejected", slog.Int(logx.FieldResponseStatus, status), logx.Error(err))
	}

	JSON(ctx, w, status, response)
}

func classify(err error) (int, errorResponse) {
	var coded codedError
	if errors.As(err, &coded) {
		if status, ok := statusByCode[coded.ErrorCode()]; ok {
			return status, errorResponse{
				Code:    coded.ErrorCode().String(),
				Message: coded.Description(),
			}
		}
	}

	response := errorResponse{
		Code:    failure.Code(err).String(),
		Message: failure.Description(err),
	}

	for _, c := range failureClasses {
		if c.is(err) {
			if c.defaultCode != "" {
				response.WithDefaultCode(c.defaultCode)
			}

			return c.status, response
		}
	}

	response.WithDefaultCode(errcodes.InternalServerError)

	return http.StatusInternalServerError, response
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
