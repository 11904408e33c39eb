package tests_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"re_deals/pkg/tests"
)

func TestRandomizer(t *testing.T) {
	rq := require.New(t)

	random := tests.NewRandomizer()

	for range 1000 {
		v := random.Range(0.5, 12.5)
		rq.GreaterOrEqual(v, 0.5)
		rq.Less(v, 12.5)

		n := random.IntRange(5, 30)
		rq.GreaterOrEqual(n, 5)
		rq.LessOrEqual(n, 30)
	}

	first, second := tests.NewSeededRandomizer(42), tests.NewSeededRandomizer(42)
	rq.Equal(first.Range(0, 100), second.Range(0, 100))
	rq.Equal(first.IntRange(1, 6), second.IntRange(1, 6))
}
