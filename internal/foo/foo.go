// Package foo holds the placeholder library function the entry point calls.
package foo

// Func is a two-argument integer function whose result becomes the exit status.
type Func func(a, b int) int

// Foo returns the sum of a and b.
func Foo(a, b int) int {
	return a + b
}
