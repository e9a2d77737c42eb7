package harness

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if the error expectation and all assertions hold.
	Pass bool `json:"pass"`

	// Output is the generated source. Empty when the definitions were
	// rejected.
	Output []byte `json:"-"`

	// Generated is Output read back through go/ast.
	Generated *Generated `json:"-"`

	// ErrorCode and ErrorLine describe the diagnostic that rejected the
	// definitions, if any.
	ErrorCode string `json:"error_code,omitempty"`
	ErrorLine int    `json:"error_line,omitempty"`

	// Warnings holds the codes of warnings reported while loading.
	Warnings []string `json:"warnings,omitempty"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Constant is one generated ErrorCode constant.
type Constant struct {
	Name  string
	Value int64
}

// Generated is the behaviour of a generated file, recovered from its
// syntax tree.
type Generated struct {
	Package   string
	Constants []Constant

	// Names maps a value to the name String() returns for it.
	Names map[int64]string

	// PanicsOnUnknown is set when String() panics in its default case.
	PanicsOnUnknown bool

	// ReplyFields are the keys of the document ErrMessage builds.
	ReplyFields []string

	// Predicates maps a class name to the constants its Is<class> accepts.
	Predicates map[string][]string
}

// Value returns the value of a constant.
func (g *Generated) Value(name string) (int64, bool) {
	for _, c := range g.Constants {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// NameOf evaluates String() for v. ok is false where String() would
// panic (or, without a panicking default, fall off the end).
func (g *Generated) NameOf(v int64) (name string, ok bool) {
	name, ok = g.Names[v]
	return name, ok
}

// InClass evaluates the predicate of class for v. Predicates compare values,
// so any constant sharing a value with a member is accepted too.
func (g *Generated) InClass(class string, v int64) (result bool, found bool) {
	members, found := g.Predicates[class]
	if !found {
		return false, false
	}
	for _, m := range members {
		if mv, ok := g.Value(m); ok && mv == v {
			return true, true
		}
	}
	return false, true
}
