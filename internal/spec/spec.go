// Package spec parses the two comma-separated mini-languages a class
// description is written in: "type name" for member variables and
// "ReturnType name(params)" for methods.
package spec

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
	"go.uber.org/zap"
)

// identPattern is what member, method and class names must match.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type VariableSpec struct {
	Type string
	Name string
}

type MethodSpec struct {
	ReturnType string
	Name       string
	// Params is kept verbatim, enclosing parentheses included. Nested
	// parens, default values and trailing qualifiers pass through
	// untouched.
	Params string
}

type ClassSpec struct {
	Name      string
	Variables []VariableSpec
	Methods   []MethodSpec
}

// ParseVariable parses one "type name" entry. Tokens are split with
// shell quoting rules, so a quoted type keeps its embedded spaces. The
// last token is the name, everything before it is the type, which is
// how multi-word types like "unsigned long" come through.
func ParseVariable(raw string) (VariableSpec, error) {
	parts, err := shlex.Split(strings.TrimSpace(raw))
	if err != nil {
		return VariableSpec{}, fmt.Errorf("tokenizing %q: %w", raw, err)
	}
	if len(parts) < 2 {
		return VariableSpec{}, fmt.Errorf("expected 'type name', got %q", raw)
	}
	name := parts[len(parts)-1]
	if !identPattern.MatchString(name) {
		return VariableSpec{}, fmt.Errorf("invalid variable name %q", name)
	}
	return VariableSpec{
		Type: strings.Join(parts[:len(parts)-1], " "),
		Name: name,
	}, nil
}

// ParseMethod parses one "ReturnType name(params)" entry. The string is
// split at the first '(' and everything from there on is kept verbatim
// as Params. The part before it is tokenized like a variable: last
// token is the method name, the rest is the return type.
//
// Known ambiguity, inherited from whitespace splitting: in
// "const std::string & name()" the '&' folds into the return type, but
// writing the '&' as the final token before '(' makes it the candidate
// name and the entry is rejected. Callers wanting reference returns
// should attach the '&' to the type token.
func ParseMethod(raw string) (MethodSpec, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "(") || !strings.Contains(raw, ")") {
		return MethodSpec{}, fmt.Errorf("expected 'ReturnType name(params)', got %q", raw)
	}
	sig, rest, _ := strings.Cut(raw, "(")
	params := "(" + strings.TrimSpace(rest)

	parts, err := shlex.Split(strings.TrimSpace(sig))
	if err != nil {
		return MethodSpec{}, fmt.Errorf("tokenizing %q: %w", sig, err)
	}
	if len(parts) < 2 {
		return MethodSpec{}, fmt.Errorf("expected 'ReturnType name' before '(', got %q", sig)
	}
	name := parts[len(parts)-1]
	if !identPattern.MatchString(name) {
		return MethodSpec{}, fmt.Errorf("invalid method name %q", name)
	}
	return MethodSpec{
		ReturnType: strings.Join(parts[:len(parts)-1], " "),
		Name:       name,
		Params:     params,
	}, nil
}

// ParseVariables parses a comma-separated variable list. Entries are
// parsed independently; a malformed entry is logged and dropped, the
// rest of the list is unaffected. Input order is preserved.
func ParseVariables(list string, log *zap.Logger) []VariableSpec {
	var out []VariableSpec
	for _, raw := range splitEntries(list) {
		v, err := ParseVariable(raw)
		if err != nil {
			log.Warn("skipping malformed variable", zap.String("entry", raw), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

// ParseMethods parses a comma-separated method list with the same
// skip-and-continue behaviour as ParseVariables.
func ParseMethods(list string, log *zap.Logger) []MethodSpec {
	var out []MethodSpec
	for _, raw := range splitEntries(list) {
		m, err := ParseMethod(raw)
		if err != nil {
			log.Warn("skipping malformed method", zap.String("entry", raw), zap.Error(err))
			continue
		}
		out = append(out, m)
	}
	return out
}

// ParseClass assembles a ClassSpec from the raw command-line strings.
// A missing class name is the only fatal condition here.
func ParseClass(name, varsList, methodsList string, log *zap.Logger) (ClassSpec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClassSpec{}, errors.New("class name is required")
	}
	return ClassSpec{
		Name:      name,
		Variables: ParseVariables(varsList, log),
		Methods:   ParseMethods(methodsList, log),
	}, nil
}

func splitEntries(list string) []string {
	var out []string
	for _, e := range strings.Split(list, ",") {
		if strings.TrimSpace(e) == "" {
			continue
		}
		out = append(out, strings.TrimSpace(e))
	}
	return out
}
