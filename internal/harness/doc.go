// Package harness runs conformance scenarios against the generator.
//
// A scenario is a definitions file plus the behaviour the generated code
// must show. The harness compiles the definitions, emits Go source and
// reads that source back through go/ast, so assertions are checked against
// what the generated code would do rather than against the records it was
// built from.
//
// # Scenario Format
//
//	name: transient_class
//	description: "Foo and Bar, Bar is transient"
//	definitions: |
//	  error_code("Foo", 1)
//	  error_code("Bar", 2)
//	  error_class("Transient", ["Bar"])
//	assertions:
//	  - type: const_order
//	    names: [Foo, Bar]
//	  - type: string
//	    code: 2
//	    name: Bar
//	  - type: member
//	    class: Transient
//	    name: Bar
//
// A scenario whose definitions must be rejected names the error instead:
//
//	expect_error:
//	  code: E201
//	  line: 3
//
// # Assertion Types
//
//   - const_order: constants appear in exactly this order
//   - string: String() on code returns name
//   - string_panics: String() on code panics
//   - member / not_member: Is<class> is true / false for the named code
//   - reply_fields: ErrMessage builds a document with these keys, in order
//   - output_contains: the generated source contains text
//
// Golden snapshots of the generated source live in testdata/golden; see
// RunWithGolden.
package harness
