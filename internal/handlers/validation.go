package handlers

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidators adds the "enum" tag to gin's validator. It accepts any
// field whose type reports its own validity.
func registerValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected binding validator engine")
			return
		}
		err = v.RegisterValidation("enum", validateEnum)
	})
	return err
}

func validateEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(interface{ Valid() bool })
	return ok && e.Valid()
}
