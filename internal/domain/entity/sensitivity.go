package entity

import "re_deals/internal/domain/value"

// SensitivityCell значение метрики для пары (A, B); Value nil означает N/A.
type SensitivityCell struct {
	A     float64  `json:"a"`
	B     float64  `json:"b"`
	Value *float64 `json:"value"`
}

// SensitivityGrid строки фиксируют A и перебирают B.
type SensitivityGrid struct {
	VariableA value.SweepVariable `json:"variable_a"`
	VariableB value.SweepVariable `json:"variable_b"`
	Metric    value.Metric        `json:"metric"`
	RangeA    []float64           `json:"range_a"`
	RangeB    []float64           `json:"range_b"`
	Rows      [][]SensitivityCell `json:"rows"`
}
