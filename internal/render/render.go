// Package render turns a parsed class into the text of its header and
// source files. The two outputs are built from the same ClassSpec in
// one pass each, so member and method order is identical across them.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/AbdallahZerfaoui/classgen/internal/spec"
)

var (
	guardInvalid = regexp.MustCompile(`[^0-9A-Z_]`)
	guardRuns    = regexp.MustCompile(`_+`)
)

const headerTemplate = `#ifndef {{.Guard}}
# define {{.Guard}}

# include <iostream>
# include <string>

class {{.Class}}
{
private:
{{.VariableDecls}}public:
	{{.Class}}();
	{{.Class}}(const {{.Class}}& other);
	{{.Class}}& operator=(const {{.Class}}& other);
	~{{.Class}}();
{{.MethodDecls}}};

// std::ostream& operator<<(std::ostream& os, const {{.Class}}& obj);

#endif /* {{.Guard}} */
`

const sourceTemplate = `#include "{{.HeaderFile}}"

{{.Class}}::{{.Class}}()
{
}

{{.Class}}::{{.Class}}(const {{.Class}}& other)
{
	*this = other;
}

{{.Class}}& {{.Class}}::operator=(const {{.Class}}& other)
{
	if (this != &other)
	{
{{.CopyAssignments}}	}
	return *this;
}

{{.Class}}::~{{.Class}}()
{
}
{{.MethodDefs}}`

var (
	headerTpl = template.Must(template.New("header").Parse(headerTemplate))
	sourceTpl = template.Must(template.New("source").Parse(sourceTemplate))
)

type headerData struct {
	Class         string
	Guard         string
	VariableDecls string
	MethodDecls   string
}

type sourceData struct {
	Class           string
	HeaderFile      string
	CopyAssignments string
	MethodDefs      string
}

type Renderer struct {
	headerExt string
}

func New(headerExt string) *Renderer {
	return &Renderer{headerExt: headerExt}
}

// Header renders the declaration file: member variables, the four
// canonical-form operations (always declared, even for an empty class)
// and one declaration per method, wrapped in an include guard.
func (r *Renderer) Header(class spec.ClassSpec) (string, error) {
	var vars strings.Builder
	for _, v := range class.Variables {
		fmt.Fprintf(&vars, "\t%s %s;\n", v.Type, v.Name)
	}
	if vars.Len() > 0 {
		vars.WriteString("\n")
	}

	var methods strings.Builder
	if len(class.Methods) > 0 {
		methods.WriteString("\n")
	}
	for _, m := range class.Methods {
		fmt.Fprintf(&methods, "\t%s %s%s;\n", m.ReturnType, m.Name, m.Params)
	}

	var out strings.Builder
	err := headerTpl.Execute(&out, headerData{
		Class:         class.Name,
		Guard:         Guard(class.Name, r.headerExt),
		VariableDecls: vars.String(),
		MethodDecls:   methods.String(),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Source renders the definition file: empty-bodied canonical-form
// operations and one stub per method, in header order. The copy
// constructor delegates to operator=, which guards against
// self-assignment and copies every member in declared order.
func (r *Renderer) Source(class spec.ClassSpec) (string, error) {
	var assigns strings.Builder
	for _, v := range class.Variables {
		fmt.Fprintf(&assigns, "\t\tthis->%s = other.%s;\n", v.Name, v.Name)
	}

	var defs strings.Builder
	for _, m := range class.Methods {
		fmt.Fprintf(&defs, "\n%s %s::%s%s\n{\n}\n", m.ReturnType, class.Name, m.Name, m.Params)
	}

	var out strings.Builder
	err := sourceTpl.Execute(&out, sourceData{
		Class:           class.Name,
		HeaderFile:      class.Name + r.headerExt,
		CopyAssignments: assigns.String(),
		MethodDefs:      defs.String(),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Guard derives the include-guard identifier from the class name: upper
// case, anything outside [0-9A-Z_] becomes '_', runs of '_' collapse,
// leading and trailing '_' are trimmed, and a suffix derived from the
// header extension is appended (".hpp" gives "_HPP"). Pure function of
// its inputs.
func Guard(className, headerExt string) string {
	g := guardInvalid.ReplaceAllString(strings.ToUpper(className), "_")
	g = guardRuns.ReplaceAllString(g, "_")
	g = strings.Trim(g, "_")
	return g + guardSuffix(headerExt)
}

func guardSuffix(headerExt string) string {
	s := strings.ToUpper(strings.TrimPrefix(headerExt, "."))
	s = guardInvalid.ReplaceAllString(s, "_")
	return "_" + s
}
