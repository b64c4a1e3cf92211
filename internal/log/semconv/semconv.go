package semconv

// Expression
const (
	// Raw text of the expression as supplied by the user.
	Expression = "expression"

	// Byte offset into the expression where an error was detected.
	Position = "position"

	// Number of tokens produced by the lexer.
	TokenCount = "token_count"

	// Final value of the expression.
	Result = "result"
)

// Batch
const (
	// Unique ID for a single evaluation inside a batch.
	RequestID = "request_id"

	// 1-based line number of the expression in the batch input.
	Line = "line"
)
