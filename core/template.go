package core

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
)

// TemplateError reports a malformed template or a template whose
// placeholders do not match the supplied arguments.
type TemplateError struct {
	Template     string
	Placeholders int
	Args         int
	Reason       string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("maxlog: bad template %q: %s", e.Template, e.Reason)
}

// segment is either a literal run or a reference to an argument.
type segment struct {
	lit string
	arg int // -1 for literals
}

// Template is a compiled message template. Placeholders are "{}" for the
// next argument or "{N}" for argument N. "{{" and "}}" are literal braces.
// Automatic and explicit indexing cannot be mixed.
type Template struct {
	text         string
	segments     []segment
	placeholders int
	explicit     bool
}

// Compile parses a template.
func Compile(tmpl string) (*Template, error) {
	t := &Template{text: tmpl}
	auto := false
	lit := make([]byte, 0, len(tmpl))

	flush := func() {
		if len(lit) > 0 {
			t.segments = append(t.segments, segment{lit: string(lit), arg: -1})
			lit = lit[:0]
		}
	}
	fail := func(reason string) (*Template, error) {
		return nil, &TemplateError{Template: tmpl, Placeholders: t.placeholders, Reason: reason}
	}

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				lit = append(lit, '{')
				i++
				continue
			}
			end := i + 1
			for end < len(tmpl) && tmpl[end] != '}' {
				end++
			}
			if end == len(tmpl) {
				return fail("unclosed '{'")
			}
			body := tmpl[i+1 : end]
			var idx int
			if body == "" {
				if t.explicit {
					return fail("cannot mix automatic and explicit argument indexing")
				}
				auto = true
				idx = t.placeholders
			} else {
				if auto {
					return fail("cannot mix automatic and explicit argument indexing")
				}
				n, err := strconv.Atoi(body)
				if err != nil || n < 0 {
					return fail(fmt.Sprintf("invalid placeholder {%s}", body))
				}
				t.explicit = true
				idx = n
			}
			flush()
			t.segments = append(t.segments, segment{arg: idx})
			t.placeholders++
			i = end
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				lit = append(lit, '}')
				i++
				continue
			}
			return fail("unmatched '}'")
		default:
			lit = append(lit, c)
		}
	}
	flush()
	return t, nil
}

// MustCompile is like Compile but panics if the template cannot be parsed.
func MustCompile(tmpl string) *Template {
	t, err := Compile(tmpl)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the source text of the template.
func (t *Template) String() string {
	return t.text
}

// Placeholders returns the number of placeholders in the template.
func (t *Template) Placeholders() int {
	return t.placeholders
}

// Check verifies that nargs arguments satisfy the template. Automatic
// templates need exactly one argument per placeholder; explicit templates
// need every index in range and every argument referenced.
func (t *Template) Check(nargs int) error {
	if !t.explicit {
		if t.placeholders != nargs {
			return t.mismatch(nargs, fmt.Sprintf("%d placeholders but %d arguments", t.placeholders, nargs))
		}
		return nil
	}

	used := make([]bool, nargs)
	for _, s := range t.segments {
		if s.arg < 0 {
			continue
		}
		if s.arg >= nargs {
			return t.mismatch(nargs, fmt.Sprintf("argument index %d out of range for %d arguments", s.arg, nargs))
		}
		used[s.arg] = true
	}
	for i, ok := range used {
		if !ok {
			return t.mismatch(nargs, fmt.Sprintf("argument %d is never used", i))
		}
	}
	return nil
}

func (t *Template) mismatch(nargs int, reason string) error {
	return &TemplateError{Template: t.text, Placeholders: t.placeholders, Args: nargs, Reason: reason}
}

// Render substitutes args into the template.
func (t *Template) Render(args ...any) (string, error) {
	if err := t.Check(len(args)); err != nil {
		return "", err
	}
	return string(t.AppendTo(make([]byte, 0, len(t.text)+16*len(args)), args)), nil
}

// AppendTo appends the rendered template to dst. Check must have passed.
func (t *Template) AppendTo(dst []byte, args []any) []byte {
	for _, s := range t.segments {
		if s.arg < 0 {
			dst = append(dst, s.lit...)
			continue
		}
		dst = AppendValue(dst, args[s.arg])
	}
	return dst
}

// Render compiles tmpl through the cache and substitutes args.
func Render(tmpl string, args ...any) (string, error) {
	t, err := Lookup(tmpl)
	if err != nil {
		return "", err
	}
	return t.Render(args...)
}

// maxCachedTemplates bounds the cache for programs that build templates
// dynamically.
const maxCachedTemplates = 4096

var (
	templateCache   sync.Map // string -> *Template
	templateEntries atomic.Int64
)

// Lookup returns the compiled template for tmpl, compiling and caching it
// on first use.
func Lookup(tmpl string) (*Template, error) {
	if v, ok := templateCache.Load(tmpl); ok {
		return v.(*Template), nil
	}
	t, err := Compile(tmpl)
	if err != nil {
		return nil, err
	}
	if templateEntries.Load() < maxCachedTemplates {
		if _, loaded := templateCache.LoadOrStore(tmpl, t); !loaded {
			templateEntries.Add(1)
		}
	}
	return t, nil
}
