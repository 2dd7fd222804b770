package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func warnLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return zap.New(core), logs
}

func TestParseVariable(t *testing.T) {
	t.Run("simple type and name", func(t *testing.T) {
		v, err := ParseVariable("std::string _name")
		require.NoError(t, err)
		assert.Equal(t, "std::string", v.Type)
		assert.Equal(t, "_name", v.Name)
	})

	t.Run("middle tokens fold into the type", func(t *testing.T) {
		v, err := ParseVariable("unsigned long count")
		require.NoError(t, err)
		assert.Equal(t, "unsigned long", v.Type)
		assert.Equal(t, "count", v.Name)
	})

	t.Run("quoted type keeps embedded spaces", func(t *testing.T) {
		v, err := ParseVariable(`"unsigned long" count`)
		require.NoError(t, err)
		assert.Equal(t, "unsigned long", v.Type)
		assert.Equal(t, "count", v.Name)
	})

	t.Run("pointer marker stays in the type", func(t *testing.T) {
		v, err := ParseVariable("int * ptr")
		require.NoError(t, err)
		assert.Equal(t, "int *", v.Type)
		assert.Equal(t, "ptr", v.Name)
	})

	t.Run("single token is rejected", func(t *testing.T) {
		_, err := ParseVariable("int")
		assert.Error(t, err)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, err := ParseVariable("   ")
		assert.Error(t, err)
	})

	t.Run("invalid name is rejected", func(t *testing.T) {
		_, err := ParseVariable("int 123abc")
		assert.Error(t, err)

		_, err = ParseVariable("std::string &")
		assert.Error(t, err)
	})

	t.Run("unbalanced quote is rejected", func(t *testing.T) {
		_, err := ParseVariable(`"unsigned long count`)
		assert.Error(t, err)
	})
}

func TestParseMethod(t *testing.T) {
	t.Run("plain method", func(t *testing.T) {
		m, err := ParseMethod("void speak()")
		require.NoError(t, err)
		assert.Equal(t, "void", m.ReturnType)
		assert.Equal(t, "speak", m.Name)
		assert.Equal(t, "()", m.Params)
	})

	t.Run("trailing qualifier kept in params", func(t *testing.T) {
		m, err := ParseMethod("int getAge() const")
		require.NoError(t, err)
		assert.Equal(t, "int", m.ReturnType)
		assert.Equal(t, "getAge", m.Name)
		assert.Equal(t, "() const", m.Params)
	})

	t.Run("splits at the first paren only", func(t *testing.T) {
		m, err := ParseMethod("void setCallback(void (*cb)(int))")
		require.NoError(t, err)
		assert.Equal(t, "setCallback", m.Name)
		assert.Equal(t, "(void (*cb)(int))", m.Params)
	})

	t.Run("default values pass through verbatim", func(t *testing.T) {
		m, err := ParseMethod(`void greet(std::string msg = "hi")`)
		require.NoError(t, err)
		assert.Equal(t, `(std::string msg = "hi")`, m.Params)
	})

	t.Run("reference return type folds before the name", func(t *testing.T) {
		// The '&' becomes part of the return type because the name is
		// simply the last token before '('.
		m, err := ParseMethod("const std::string & getName() const")
		require.NoError(t, err)
		assert.Equal(t, "const std::string &", m.ReturnType)
		assert.Equal(t, "getName", m.Name)
	})

	t.Run("missing parens is rejected", func(t *testing.T) {
		_, err := ParseMethod("void speak")
		assert.Error(t, err)

		_, err = ParseMethod("void speak(")
		assert.Error(t, err)
	})

	t.Run("name without return type is rejected", func(t *testing.T) {
		_, err := ParseMethod("speak()")
		assert.Error(t, err)
	})
}

func TestParseVariables(t *testing.T) {
	t.Run("order is preserved", func(t *testing.T) {
		log, logs := warnLogger()
		vars := ParseVariables("std::string _name, int _age", log)
		require.Len(t, vars, 2)
		assert.Equal(t, "_name", vars[0].Name)
		assert.Equal(t, "_age", vars[1].Name)
		assert.Zero(t, logs.Len())
	})

	t.Run("malformed entry is dropped with a warning", func(t *testing.T) {
		log, logs := warnLogger()
		vars := ParseVariables("std::string _name, int, int _age", log)
		require.Len(t, vars, 2)
		assert.Equal(t, "_name", vars[0].Name)
		assert.Equal(t, "_age", vars[1].Name)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "int", logs.All()[0].ContextMap()["entry"])
	})

	t.Run("single malformed entry yields nothing", func(t *testing.T) {
		log, logs := warnLogger()
		vars := ParseVariables("int", log)
		assert.Empty(t, vars)
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("empty list yields nothing quietly", func(t *testing.T) {
		log, logs := warnLogger()
		assert.Empty(t, ParseVariables("", log))
		assert.Zero(t, logs.Len())
	})
}

func TestParseMethods(t *testing.T) {
	t.Run("malformed entry does not abort the rest", func(t *testing.T) {
		log, logs := warnLogger()
		methods := ParseMethods("void speak(), broken, int getAge() const", log)
		require.Len(t, methods, 2)
		assert.Equal(t, "speak", methods[0].Name)
		assert.Equal(t, "getAge", methods[1].Name)
		assert.Equal(t, 1, logs.Len())
	})
}

func TestParseClass(t *testing.T) {
	t.Run("assembles both lists", func(t *testing.T) {
		log, _ := warnLogger()
		class, err := ParseClass("Animal", "std::string _name, int _age", "void speak()", log)
		require.NoError(t, err)
		assert.Equal(t, "Animal", class.Name)
		assert.Len(t, class.Variables, 2)
		assert.Len(t, class.Methods, 1)
	})

	t.Run("missing class name is fatal", func(t *testing.T) {
		log, _ := warnLogger()
		_, err := ParseClass("", "", "", log)
		assert.Error(t, err)

		_, err = ParseClass("   ", "", "", log)
		assert.Error(t, err)
	})
}
