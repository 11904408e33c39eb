package httpx

type Option func(*LoggingRoundTripper)

// WithClient имя внешнего API в поле client каждой записи.
func WithClient(name string) Option {
	return func(rt *LoggingRoundTripper) {
		rt.client = name
	}
}

// WithLogFieldMaxLen обрезает дампы запроса и ответа, 0 без ограничения.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

// WithSensitiveDataMasker без маскера дампы пишутся как есть.
func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}
