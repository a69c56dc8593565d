package utils

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultTemplateFunc(t *testing.T) {
	funcs := GetTemplateFuncs()
	defaultFunc, ok := funcs["default"].(func(interface{}, interface{}) interface{})
	if !ok {
		t.Fatalf("default func has unexpected signature")
	}

	testCases := []struct {
		name     string
		defaultV interface{}
		value    interface{}
		expected interface{}
	}{
		{"nil value", "fallback", nil, "fallback"},
		{"empty string", "fallback", "", "fallback"},
		{"non-empty string", "fallback", "value", "value"},
		{"boolean true", false, true, true},
		{"zero int", 10, 0, 10},
		{"non-zero int", 10, 5, 5},
		{"empty slice", []string{"fallback"}, []string{}, []string{"fallback"}},
	}

	for _, tc := range testCases {
		result := defaultFunc(tc.defaultV, tc.value)
		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, result)
		}
	}
}

func TestTemplateFuncsMatchTemplates(t *testing.T) {
	funcs := GetTemplateFuncs()
	if len(funcs) != 1 {
		t.Fatalf("expected only the default helper, got %d funcs", len(funcs))
	}
}

func TestLoadTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/base.html": {Data: []byte(`{{ define "base.html" }}<title>{{ default "DEBASE" .Title }}</title>{{ end }}`)},
	}

	tmpl, err := LoadTemplates(fsys, "templates")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, "base.html", map[string]string{"Title": ""}); err != nil {
		t.Fatalf("unexpected execute error: %v", err)
	}
	if sb.String() != "<title>DEBASE</title>" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}

func TestLoadTemplatesEmptyDir(t *testing.T) {
	if _, err := LoadTemplates(fstest.MapFS{}, "templates"); err == nil {
		t.Fatalf("expected error when no templates exist")
	}
}
