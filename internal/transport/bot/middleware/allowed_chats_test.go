package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"re_deals/internal/transport/bot/middleware"
)

func TestUpdateChatID(t *testing.T) {
	testCases := []struct {
		name   string
		update telego.Update
		wantID int64
		wantOK bool
	}{
		{
			name:   "message",
			update: telego.Update{Message: &telego.Message{Chat: telego.Chat{ID: 42}}},
			wantID: 42,
			wantOK: true,
		},
		{
			name: "callback",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{
				Message: &telego.Message{Chat: telego.Chat{ID: -100}},
			}},
			wantID: -100,
			wantOK: true,
		},
		{
			name:   "inline callback without message",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{}},
		},
		{
			name: "empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			id, ok := middleware.UpdateChatID(tc.update)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.wantID, id)
		})
	}
}
