package contextx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const userIDMaxLen = 128

var ErrInvalidUserID = errors.New("invalid user id")

type UserID string

type contextKeyUserID struct{}

func (u UserID) String() string {
	return string(u)
}

// ParseUserID принимает непустой идентификатор без пробельных и управляющих символов.
func ParseUserID(raw string) (UserID, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" || len(raw) > userIDMaxLen {
		return "", fmt.Errorf("%w: length %d", ErrInvalidUserID, len(raw))
	}

	if i := strings.IndexFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	}); i >= 0 {
		return "", fmt.Errorf("%w: bad symbol at %d", ErrInvalidUserID, i)
	}

	return UserID(raw), nil
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	userID, ok := ctx.Value(contextKeyUserID{}).(UserID)
	if !ok {
		return "", fmt.Errorf("user id: %w", ErrNoValue)
	}

	return userID, nil
}
