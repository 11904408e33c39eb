package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"re_deals/pkg/errcodes"
)

// Ошибки, которые сервис и хранилища возвращают как есть.
// errors.Is сравнивает их по коду, поэтому обёрнутая причина не мешает проверке.
var (
	ErrDealNotFound         = NewError(errcodes.DealNotFound, "deal not found")
	ErrDealAlreadyPublished = NewError(errcodes.DealAlreadyPublished, "deal already published")
	ErrNotDealOwner         = NewError(errcodes.Forbidden, "only the owner can change the deal")
	ErrUserRequired         = NewError(errcodes.Unauthorized, "user id required")
)

// AppError доменная ошибка: код для транспорта, сообщение для клиента
// и внутренняя причина только для логов.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is совпадение по коду ошибки.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}

	return e.Code == t.Code
}

func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// Description сообщение без внутренней причины, его можно отдавать клиенту.
func (e *AppError) Description() string {
	return e.Message
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// Internal сбой инфраструктуры, клиенту уходит только message.
func Internal(err error, message string) *AppError {
	return WrapError(err, errcodes.InternalServerError, message)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}

	return "", false
}
