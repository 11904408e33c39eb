package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

var masked = []byte("${1}[MASKED]${2}") //nolint:gochecknoglobals

// Каждый шаблон оставляет группы 1 и 2 вокруг скрываемого значения.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Поля JSON.
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("email":\s?").+?(")`),
	regexp.MustCompile(`(?s)("phone":\s?").+?(")`),
	regexp.MustCompile(`(?s)("botToken":\s?").+?(")`),
	// Заголовки.
	regexp.MustCompile("(?s)(Authorization: ).+?(\r)"),
	regexp.MustCompile("(?s)(X-User-Id: ).+?(\r)"),
	// Токен Telegram бота в пути запроса.
	regexp.MustCompile(`(/bot)[0-9]+:[A-Za-z0-9_-]+(/)`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, masked)
	}

	return input
}
