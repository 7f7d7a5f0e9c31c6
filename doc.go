// Package slang compiles SimpleLang source to Python. The language has:
//   - int and bool variables with mandatory initializers.
//   - Arithmetic (+, -, *, /, %), comparison, and logical (&&, ||, !)
//     operators; / is integer division.
//   - print(expr), if/else, while, and C-style for statements.
//   - Flat int arrays via bracket literals, indexing, and element stores.
//   - `function name(int a, bool b) { ... }` declarations; every function
//     returns int regardless of its body.
//
// The pipeline is Tokenize -> Parse -> Analyze -> Generate, each stage
// failing fast with a positioned error; Compile wires the four together.
// For loops are desugared to while loops in the emitted Python, and every
// compound expression is parenthesized so the output never depends on
// Python's precedence.
package slang
