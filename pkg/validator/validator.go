package validator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"debase-landing/pkg/navigation"
)

var (
	validate *validator.Validate
	initOnce sync.Once
)

// Init prepares the package validator and registers the custom tags on gin's
// binding engine as well. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		validate = validator.New()
		registerCustomValidations(validate)

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("menu_state", validateMenuState)
	_ = v.RegisterValidation("log_level", validateLogLevel)
}

func validateMenuState(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "", navigation.MenuState{}.Label(), navigation.ParseMenuState("open").Label():
		return true
	}
	return false
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return true
	}
	return false
}

// Validate checks struct tags and flattens the failures into one error.
func Validate(s interface{}) error {
	Init()

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
