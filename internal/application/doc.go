// Package application provides run initialization and dependency wiring.
// It encapsulates the creation of the content storage, the search function
// and the output writer, making the main package cleaner and more focused
// on argument capture, error reporting and exit codes.
package application
