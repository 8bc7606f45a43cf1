package queries

var goQueries = map[string]string{
	"comments": `(comment) @comment`,

	// Raw and interpreted strings; struct tags and import paths are their
	// own grammar-provided substructure, captured here only incidentally
	// (the imports/struct-tag distinction is handled by the `imports`
	// query below, which targets import_spec directly rather than
	// subtracting from `strings`).
	"strings": `
		[
			(raw_string_literal)
			(interpreted_string_literal)
		] @string
	`,

	"imports": `
		(import_spec path: (interpreted_string_literal) @import-path)
	`,

	// Go has no string-literal docstrings; the nearest analog is the
	// comment immediately preceding a function or type declaration
	// (exported or not).
	"doc-strings": `
		[
			(comment) @doc . (function_declaration)
			(comment) @doc . (type_declaration)
		]
	`,

	"function-calls": `
		(call_expression function: (identifier) @function-name)
	`,

	"class": `
		(type_declaration (type_spec name: (type_identifier) @class-name type: (struct_type)))
	`,
}
