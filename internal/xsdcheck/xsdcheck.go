// Package xsdcheck validates rendered model XML against the 3MF schemas.
package xsdcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
)

// Outcomes reported by Check.
const (
	Valid      = "Valid"
	InvalidXML = "Invalid XML"
	Invalid3MF = "Invalid 3MF"
)

const defaultCacheSize = 16

// Checker validates documents against 3mf-<spec>.xsd files. Compiled
// schemas are cached; a Checker is safe for concurrent use.
type Checker struct {
	fsys  fs.FS
	cache *lru.Cache[string, *xsd.Schema]

	// guards compilation so a schema is built once per cache miss
	mu sync.Mutex
}

// Option configures a Checker.
type Option func(*options)

type options struct {
	fsys      fs.FS
	cacheSize int
}

// WithFS reads schemas from fsys instead of the directory given to New.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithCacheSize bounds the number of compiled schemas kept in memory.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// New returns a Checker for the schemas in dir.
func New(dir string, opts ...Option) *Checker {
	o := options{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = os.DirFS(dir)
	}
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *xsd.Schema](o.cacheSize)
	return &Checker{fsys: o.fsys, cache: cache}
}

// SchemaFile is the file name holding the schema of spec.
func SchemaFile(spec string) string {
	return "3mf-" + spec + ".xsd"
}

// Specs lists the specifications a schema file exists for.
func (c *Checker) Specs() []string {
	matches, _ := fs.Glob(c.fsys, "3mf-*.xsd")
	specs := make([]string, 0, len(matches))
	for _, m := range matches {
		specs = append(specs, strings.TrimSuffix(strings.TrimPrefix(m, "3mf-"), ".xsd"))
	}
	return specs
}

// Check validates xml against each spec and maps the spec name to its
// outcome: "Valid", "Invalid 3MF: <reason>" or "Invalid XML". Duplicate
// specs are checked once.
func (c *Checker) Check(xml string, specs ...string) map[string]string {
	out := make(map[string]string, len(specs))
	for _, spec := range specs {
		if _, done := out[spec]; done {
			continue
		}
		out[spec] = c.check(xml, spec)
	}
	return out
}

func (c *Checker) check(xml, spec string) string {
	schema, err := c.schema(spec)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("%s: no schema for %s", Invalid3MF, spec)
	}
	if err != nil {
		return fmt.Sprintf("%s: %v", Invalid3MF, err)
	}
	return Outcome(schema.Validate(strings.NewReader(xml)))
}

// Outcome converts a validation error into an outcome string.
func Outcome(err error) string {
	if err == nil {
		return Valid
	}
	violations, ok := xsderrors.AsValidations(err)
	if !ok || len(violations) == 0 {
		return fmt.Sprintf("%s: %v", Invalid3MF, err)
	}
	for _, v := range violations {
		if v.Code == string(xsderrors.ErrXMLParse) {
			return InvalidXML
		}
	}
	return fmt.Sprintf("%s: %s", Invalid3MF, violations[0].Error())
}

func (c *Checker) schema(spec string) (*xsd.Schema, error) {
	if s, ok := c.cache.Get(spec); ok {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.cache.Get(spec); ok {
		return s, nil
	}

	name := SchemaFile(spec)
	if _, err := fs.Stat(c.fsys, name); err != nil {
		return nil, err
	}
	s, err := xsd.LoadWithOptions(c.fsys, name, xsd.NewLoadOptions())
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	c.cache.Add(spec, s)
	return s, nil
}

// AllValid reports whether every outcome in validity is Valid.
func AllValid(validity map[string]string) bool {
	for _, v := range validity {
		if v != Valid {
			return false
		}
	}
	return true
}
