package queries

var pythonQueries = map[string]string{
	"comments": `(comment) @comment`,

	// Either normal strings or strings with interpolation; the
	// interpolation sub-node is captured under Ignore so the grammar
	// scoper subtracts it back out of the surrounding string's range.
	"strings": `
		[
			(string)
			(string (interpolation) @` + Ignore + `)
		] @string
	`,

	"imports": `
		[
			(import_statement name: (dotted_name) @dn)
			(import_from_statement module_name: (dotted_name) @dn)
			(import_from_statement module_name: (dotted_name) @dn (wildcard_import))
			(import_statement (aliased_import name: (dotted_name) @dn))
			(import_from_statement module_name: (relative_import) @ri)
		]
	`,

	// Triple-quoted strings are also used for ordinary multi-line string
	// literals, so restrict to stand-alone expression statements.
	"doc-strings": `
		(expression_statement
			(string) @string
			(#match? @string "^\"\"\"")
		)
	`,

	"function-calls": `
		(call function: (identifier) @function-name)
	`,

	"class": `
		(class_definition name: (identifier) @class-name)
	`,
}
