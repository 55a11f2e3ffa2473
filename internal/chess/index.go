package chess

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// fromIndex maps a dense packing index to its value. Every taxonomy in this package
// uses the packing index as its underlying value, so the lookup is a bounds check
// followed by a conversion.
func fromIndex[T ~uint8, I constraints.Integer](i I, count int, key string) (T, error) {
	if i < 0 || uint64(i) >= uint64(count) {
		return 0, errors.New(key, errors.ErrInvalidIndex, "no value for packing index").
			WithField("index", i)
	}
	return T(i), nil
}
