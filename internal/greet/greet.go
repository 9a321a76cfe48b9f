// Package greet formats the engine's greeting.
package greet

// ClosingPhrase follows every greeting. It must stay byte-for-byte
// identical for output compatibility with existing clients.
const ClosingPhrase = "RustのWasmエンジンからの返答です。"

// Greet returns a greeting addressed to name.
func Greet(name string) string {
	return "Hello, " + name + "! " + ClosingPhrase
}
