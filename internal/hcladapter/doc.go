// Package hcladapter loads programs and target descriptions written in HCL
// and translates them into the ir and target models. It implements the
// config.Loader interface.
package hcladapter
