package ports

// TemplateRenderer substitutes {{key}} placeholders in template text.
type TemplateRenderer interface {
	Render(tpl string, params map[string]string) (string, error)
}
