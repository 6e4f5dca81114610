package lingo

import (
	"log/slog"
	"reflect"
)

// bindingTag is the struct tag associating a translation key with a
// struct member. A value of "-" opts the member out.
//
//	type Labels struct {
//	    Title  string `i18n:"pages.home.title"`
//	    Footer string `i18n:"pages.home.footer"`
//	}
const bindingTag = "i18n"

// ResolveTranslations resolves the translation-key bindings declared on
// target's struct members and writes the resolved strings back onto the
// matching fields. Target must be a non-nil pointer to a struct.
//
// Members without a binding are left alone. A member that cannot be
// written (unexported, or not a string field) is logged and skipped; one
// failing member never aborts resolution of the others.
func (e *Engine) ResolveTranslations(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStruct
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		key, ok := field.Tag.Lookup(bindingTag)
		if !ok || key == "" || key == "-" {
			continue
		}

		fv := rv.Field(i)
		if !fv.CanSet() || fv.Kind() != reflect.String {
			e.log.Warn("cannot bind translation to member, skipping",
				slog.String("member", field.Name), slog.String("key", key))
			continue
		}

		fv.SetString(e.Translate(key))
	}

	return nil
}

// TranslateTarget resolves the bindings declared on target's type and
// returns a fresh member-name-to-string mapping without mutating
// anything. Target may be a struct value or a pointer to one.
func (e *Engine) TranslateTarget(target any) (map[string]string, error) {
	rt := reflect.TypeOf(target)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	out := make(map[string]string)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		key, ok := field.Tag.Lookup(bindingTag)
		if !ok || key == "" || key == "-" {
			continue
		}
		out[field.Name] = e.Translate(key)
	}

	return out, nil
}
