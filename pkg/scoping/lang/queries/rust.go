package queries

var rustQueries = map[string]string{
	"comments": `
		[
			(line_comment)
			(block_comment)
		] @comment
	`,

	"strings": `
		[
			(string_literal)
			(raw_string_literal)
		] @string
	`,

	"imports": `
		(use_declaration argument: (_) @import-path)
	`,

	// `///` and `//!` doc comments are plain comment nodes in
	// tree-sitter-rust; distinguish them by their leading text.
	"doc-strings": `
		(
			[(line_comment) (block_comment)] @doc
			(#match? @doc "^(///|//!|/\\*\\*|/\\*!)")
		)
	`,

	"function-calls": `
		(call_expression function: (identifier) @function-name)
	`,

	"class": `
		(struct_item name: (type_identifier) @class-name)
	`,
}
