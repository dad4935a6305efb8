// Package app wires a loaded program, a target description and the
// scheduling pass together and runs them.
package app
