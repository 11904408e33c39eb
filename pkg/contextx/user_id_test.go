package contextx_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"re_deals/pkg/contextx"
)

func TestUserID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	userID, err := contextx.UserIDFromContext(ctx)
	rq.Empty(userID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "user id: no value in context")

	ctx = contextx.WithUserID(ctx, "owner-42")

	userID, err = contextx.UserIDFromContext(ctx)
	rq.Equal(contextx.UserID("owner-42"), userID)
	rq.NoError(err)
}

func TestParseUserID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		raw      string
		expected contextx.UserID
		valid    bool
	}{
		{name: "Plain", raw: "owner-42", expected: "owner-42", valid: true},
		{name: "Trimmed", raw: "  7f3c2a  ", expected: "7f3c2a", valid: true},
		{name: "Email like", raw: "ivan@example.com", expected: "ivan@example.com", valid: true},
		{name: "Blank", raw: "   "},
		{name: "Inner space", raw: "ivan petrov"},
		{name: "Control symbol", raw: "ivan\x00"},
		{name: "Too long", raw: strings.Repeat("u", 129)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			userID, err := contextx.ParseUserID(tc.raw)
			if !tc.valid {
				rq.ErrorIs(err, contextx.ErrInvalidUserID)
				rq.Empty(userID)

				return
			}

			rq.NoError(err)
			rq.Equal(tc.expected, userID)
		})
	}
}
