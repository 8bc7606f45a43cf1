package queries

var typescriptQueries = map[string]string{
	"comments": `(comment) @comment`,

	"strings": `
		[
			(string)
			(template_string)
		] @string
	`,

	"imports": `
		[
			(import_statement source: (string) @import-path)
			(import_statement (import_clause) (string) @import-path)
		]
	`,

	"doc-strings": `
		(
			(comment) @doc
			(#match? @doc "^/\\*\\*")
		)
	`,

	"function-calls": `
		(call_expression function: (identifier) @function-name)
	`,

	"class": `
		(class_declaration name: (type_identifier) @class-name)
	`,
}
