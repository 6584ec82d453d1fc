package templateinfra

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
	"github.com/cargo-launcher/cargo-launcher/internal/core/ports"
)

var (
	keyPattern         = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	placeholderPattern = regexp.MustCompile(`\{\{-?\s*([A-Za-z_][A-Za-z0-9_]*)\s*-?\}\}`)
)

// reserved words of text/template that cannot double as placeholder names
var reserved = map[string]bool{
	"if": true, "else": true, "end": true, "range": true, "with": true,
	"define": true, "template": true, "block": true, "break": true,
	"continue": true, "nil": true, "true": true, "false": true,
}

// Renderer renders {{key}} placeholders. Each key in the parameter map is
// exposed to text/template as a zero-argument function, so a placeholder
// without a matching key fails at parse time.
type Renderer struct{}

// NewRenderer creates a new template renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render substitutes every {{key}} in tpl with params[key].
func (r *Renderer) Render(tpl string, params map[string]string) (string, error) {
	funcs := make(template.FuncMap, len(params))
	for _, key := range sortedKeys(params) {
		if !keyPattern.MatchString(key) || reserved[key] {
			return "", fmt.Errorf("%w: invalid placeholder name %q", launcher.ErrTemplateRender, key)
		}
		value := params[key]
		funcs[key] = func() string { return value }
	}

	// builtin functions such as print would otherwise satisfy an unknown key
	for _, m := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
		if _, ok := params[m[1]]; !ok {
			return "", fmt.Errorf("%w: no value for placeholder %q", launcher.ErrTemplateRender, m[1])
		}
	}

	t, err := template.New("launcher").Funcs(funcs).Parse(tpl)
	if err != nil {
		return "", fmt.Errorf("%w: %w", launcher.ErrTemplateRender, err)
	}

	var out strings.Builder
	if err := t.Execute(&out, nil); err != nil {
		return "", fmt.Errorf("%w: %w", launcher.ErrTemplateRender, err)
	}
	return out.String(), nil
}

func sortedKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ ports.TemplateRenderer = (*Renderer)(nil)
