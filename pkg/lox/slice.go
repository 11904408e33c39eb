// Package lox дополняет samber/lo функциями без индекса в iteratee,
// чтобы передавать конвертеры по имени: lox.Map(deals, newRESTDeal).
package lox

// MapErr прерывается на первой ошибке.
func MapErr[T, R any](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// MapGrid применяет iteratee к каждой ячейке, сохраняя форму строк.
func MapGrid[T, R any](rows [][]T, iteratee func(item T) R) [][]R {
	return Map(rows, func(row []T) []R {
		return Map(row, iteratee)
	})
}
