package domain_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"re_deals/internal/domain"
	"re_deals/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		err         error
		target      error
		is          bool
		code        string
		description string
	}{
		{
			name:        "Sentinel",
			err:         domain.ErrDealNotFound,
			target:      domain.ErrDealNotFound,
			is:          true,
			code:        "DealNotFound",
			description: "deal not found",
		},
		{
			name:        "Wrapped by caller",
			err:         fmt.Errorf("repo.Get: %w", domain.ErrDealNotFound),
			target:      domain.ErrDealNotFound,
			is:          true,
			code:        "DealNotFound",
			description: "deal not found",
		},
		{
			name:        "Same code with cause",
			err:         domain.WrapError(sql.ErrNoRows, errcodes.DealNotFound, "deal not found"),
			target:      domain.ErrDealNotFound,
			is:          true,
			code:        "DealNotFound",
			description: "deal not found",
		},
		{
			name:        "Other code",
			err:         domain.ErrNotDealOwner,
			target:      domain.ErrDealNotFound,
			code:        "Forbidden",
			description: "only the owner can change the deal",
		},
		{
			name:        "Internal keeps cause",
			err:         domain.Internal(sql.ErrConnDone, "failed to get deal"),
			target:      sql.ErrConnDone,
			is:          true,
			code:        "InternalServerError",
			description: "failed to get deal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.is, errors.Is(tc.err, tc.target))

			code, ok := domain.GetCode(tc.err)
			rq.True(ok)
			rq.Equal(tc.code, code.String())

			var appErr *domain.AppError
			rq.True(errors.As(tc.err, &appErr))
			rq.Equal(tc.description, appErr.Description())
		})
	}

	_, ok := domain.GetCode(sql.ErrNoRows)
	rq.False(ok)
}
