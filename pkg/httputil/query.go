package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter whose query
// parameter, given by the "form" struct tag, is set in the URL.
//
// This can be used to tell zero values apart from unset parameters
// without defining the filter fields as pointers.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		param := val.Type().Field(i).Tag.Get("form")

		if param != "" && query.Has(param) {
			setFields = append(setFields, val.Type().Field(i).Name)
		}
	}

	return setFields
}
