package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"re_deals/pkg/contextx"
	"re_deals/pkg/errcodes"
	"re_deals/pkg/httpx/reply"
)

type codedErr struct {
	code failure.ErrorCode
	msg  string
}

func (e codedErr) Error() string                { return e.msg + ": internal detail" }
func (e codedErr) ErrorCode() failure.ErrorCode { return e.code }
func (e codedErr) Description() string          { return e.msg }

func TestError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
		message    string
	}{
		{
			name:       "Domain not found",
			err:        fmt.Errorf("svc.GetDeal: %w", codedErr{code: errcodes.DealNotFound, msg: "deal not found"}),
			statusCode: http.StatusNotFound,
			code:       "DealNotFound",
			message:    "deal not found",
		},
		{
			name:       "Domain conflict",
			err:        codedErr{code: errcodes.DealAlreadyPublished, msg: "deal already published"},
			statusCode: http.StatusConflict,
			code:       "DealAlreadyPublished",
			message:    "deal already published",
		},
		{
			name:       "Domain internal hides cause",
			err:        codedErr{code: errcodes.InternalServerError, msg: "failed to get deal"},
			statusCode: http.StatusInternalServerError,
			code:       "InternalServerError",
			message:    "failed to get deal",
		},
		{
			name: "Invalid argument with code",
			err: failure.NewInvalidArgumentError(
				"strconv.Atoi",
				failure.WithCode(errcodes.InvalidPaging),
				failure.WithDescription("limit must be a number"),
			),
			statusCode: http.StatusBadRequest,
			code:       "InvalidPaging",
			message:    "limit must be a number",
		},
		{
			name:       "Plain error",
			err:        errors.New("boom"),
			statusCode: http.StatusInternalServerError,
			code:       "InternalServerError",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx := contextx.WithTraceID(context.Background(), "trace-7")
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))
			rq.Contains(w.Body.String(), `"code":"`+tc.code+`"`)
			rq.Contains(w.Body.String(), `"supportId":"trace-7"`)
			rq.NotContains(w.Body.String(), "internal detail")

			if tc.message != "" {
				rq.Contains(w.Body.String(), `"message":"`+tc.message+`"`)
			}
		})
	}
}

func TestErrorWithoutTraceID(t *testing.T) {
	rq := require.New(t)

	w := httptest.NewRecorder()
	reply.Error(context.Background(), w, errors.New("boom"))

	rq.Contains(w.Body.String(), `"supportId":"unsupported"`)
}
