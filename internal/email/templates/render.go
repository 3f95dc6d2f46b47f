package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Template is a named generic template with a subject line that may itself
// carry {{key}} tokens.
type Template struct {
	Name    string
	Subject string
	Body    string
}

var generic = map[string]Template{
	"welcome":        {Name: "welcome", Subject: "Welcome, {{name}}!", Body: welcomeGenericBody},
	"reset_password": {Name: "reset_password", Subject: "Reset your password", Body: resetPasswordBody},
	"notification":   {Name: "notification", Subject: "{{title}}", Body: notificationBody},
}

var (
	tokenRe       = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)
	conditionalRe = regexp.MustCompile(`(?s)\{\{#if\s+([a-zA-Z0-9_]+)\s*\}\}(.*?)\{\{/if\}\}`)
)

// Names returns the generic template names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generic))
	for name := range generic {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render fills the named generic template with vars and returns the rendered
// subject and body. Unknown names return ErrTemplateNotFound. Non-string
// values are formatted with fmt.Sprint; nil renders as empty. Conditional
// blocks are emitted only for truthy variables.
func Render(name string, vars map[string]any) (subject, body string, err error) {
	tpl, ok := generic[name]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	strVars := make(map[string]string, len(vars))
	cond := make(map[string]bool, len(vars))
	for k, v := range vars {
		cond[k] = truthy(v)
		if v == nil {
			continue
		}
		strVars[k] = fmt.Sprint(v)
	}
	return substitute(tpl.Subject, strVars, cond), substitute(tpl.Body, strVars, cond), nil
}

// truthy decides whether a conditional block's variable keeps the block.
// Truthiness is checked on the typed value, before stringification, so false
// and numeric zero omit the block even though they stringify non-empty.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64: // JSON numbers decode as float64
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	}
	return fmt.Sprint(v) != ""
}

// substitute resolves conditional blocks first, then fills remaining tokens.
func substitute(s string, vars map[string]string, cond map[string]bool) string {
	s = conditionalRe.ReplaceAllStringFunc(s, func(block string) string {
		m := conditionalRe.FindStringSubmatch(block)
		if !cond[m[1]] {
			return ""
		}
		return m[2]
	})
	return tokenRe.ReplaceAllStringFunc(s, func(token string) string {
		m := tokenRe.FindStringSubmatch(token)
		return vars[m[1]]
	})
}

// replaceTokens substitutes a fixed token set, used by the typed templates.
func replaceTokens(body string, pairs map[string]string) string {
	for token, value := range pairs {
		body = strings.ReplaceAll(body, "{{"+token+"}}", value)
	}
	return body
}
