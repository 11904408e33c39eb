package httpx

// SensitiveDataMaskerMock подменяет маскировщик в тестах.
type SensitiveDataMaskerMock struct {
	MaskFunc func(input []byte) []byte
}

func (m *SensitiveDataMaskerMock) Mask(input []byte) []byte {
	return m.MaskFunc(input)
}
