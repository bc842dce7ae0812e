// Package schema validates entry data before it is committed to the store.
package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ParseData validates an entry's field mapping against its struct schema.
// Failures carry the entry identifier so the loader can log which item was
// dropped.
func (v *Validator) ParseData(id string, data any) error {
	if data == nil {
		return fmt.Errorf("entry %s: no data", id)
	}
	if err := v.validate.Struct(data); err != nil {
		return fmt.Errorf("entry %s: %w", id, err)
	}
	return nil
}
