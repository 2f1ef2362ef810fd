package config

import "fmt"

// UnknownConfigFieldError reports an override key that does not correspond to
// any declared field of the target config. It is returned only under the
// Strict merge policy; WarnAndSet degrades it to a diagnostic.
type UnknownConfigFieldError struct {
	Config string
	Field  string
}

func (e *UnknownConfigFieldError) Error() string {
	return fmt.Sprintf("config %q has no field %q", e.Config, e.Field)
}
