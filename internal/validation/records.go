package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apierrors "dataguide/internal/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Record validates one dataset record against its struct tags.
// row is the 1-based data row used in the error.
func Record(row int, record interface{}) error {
	err := instance().Struct(record)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return apierrors.InvalidRecord(row, fmt.Errorf("%s", strings.Join(msgs, "; ")))
	}
	return apierrors.InvalidRecord(row, err)
}

// Records validates every record and returns the first failure
func Records[T any](records []T) error {
	for i := range records {
		if err := Record(i+1, records[i]); err != nil {
			return err
		}
	}
	return nil
}
