package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init points gin's binding validator at json field names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		UseJSONNames(v)
	}
}

// UseJSONNames makes v report "first_name" rather than "FirstName" in field
// errors. Fields tagged json:"-" keep their Go name.
func UseJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
