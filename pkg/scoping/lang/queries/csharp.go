package queries

var csharpQueries = map[string]string{
	"comments": `(comment) @comment`,

	"strings": `
		[
			(string_literal)
			(verbatim_string_literal)
			(interpolated_string_expression)
		] @string
	`,

	"imports": `
		(using_directive (qualified_name) @import-path)
	`,

	// XML doc comments (`///`) are plain comment nodes in tree-sitter-c-sharp.
	"doc-strings": `
		(
			(comment) @doc
			(#match? @doc "^///")
		)
	`,

	"function-calls": `
		(invocation_expression function: (identifier) @function-name)
	`,

	"class": `
		(class_declaration name: (identifier) @class-name)
	`,
}
