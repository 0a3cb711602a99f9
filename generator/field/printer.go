package field

import (
	"strings"
	"text/template"

	"github.com/go-faster/errors"
)

// newTemplate parses a fragment template. Templates refer to bound
// variables as {{.name}}; a reference to an unbound name fails execution.
func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(text))
}

// printer accumulates fragment text and keeps the first error.
type printer struct {
	b   strings.Builder
	err error
}

// print executes t against vars and appends the result. Lines left blank by
// empty substitutions are dropped.
func (p *printer) print(t *template.Template, vars Variables) {
	if p.err != nil {
		return
	}
	var out strings.Builder
	if err := t.Execute(&out, map[string]string(vars)); err != nil {
		p.err = errors.Wrapf(err, "render %s", t.Name())
		return
	}
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.b.WriteString(line)
		p.b.WriteByte('\n')
	}
}

// declarations prints each template as its own blank-separated declaration.
func (p *printer) declarations(vars Variables, ts ...*template.Template) {
	for _, t := range ts {
		p.blank()
		p.print(t, vars)
	}
}

// blank separates two declarations.
func (p *printer) blank() {
	if p.err == nil && p.b.Len() > 0 {
		p.b.WriteByte('\n')
	}
}

func (p *printer) output() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return strings.TrimSpace(p.b.String()), nil
}

// render is the common case of a fragment made of a single template.
func render(t *template.Template, vars Variables) (string, error) {
	var p printer
	p.print(t, vars)
	return p.output()
}
