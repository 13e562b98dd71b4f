package theme

import (
	"html/template"
	"strings"
)

// FuncMap returns the template function map shared by every theme.
func FuncMap(asset func(string) string) template.FuncMap {
	return template.FuncMap{
		"asset": asset,
		"dict":  dict,
		"join":  strings.Join,
		"lower": strings.ToLower,
	}
}

// dict builds a map in templates: {{ dict "k" 1 "k2" "v" }}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}
