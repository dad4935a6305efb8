// Package config defines the format-agnostic loading interface of the
// application. The `ir.Program` and `target.Target` it produces are the single
// source of truth for the `sched` package; concrete implementations, such as
// the HCL one, are provided in separate packages.
package config
