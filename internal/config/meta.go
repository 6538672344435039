package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("toml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		example[name] = exampleValue(field.Type, name)
	}

	return example
}

// exampleValue creates an example value based on type and field name
func exampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return false
	case reflect.Int:
		if fieldName == "max_log_files" {
			return 100
		}
		return 10
	case reflect.String:
		switch fieldName {
		case "context":
			return "work"
		case "data_dir":
			return "~/.doer/data"
		default:
			return "example"
		}
	}

	return nil
}
