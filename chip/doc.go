// Package chip describes the EZO chip families the engine can talk to.
//
// A Profile carries the per-family constants that are not part of the shared
// command protocol: the factory-default I2C address and the reply buffer
// size. The stock Atlas Scientific families are built in:
//
//	p, ok := chip.Builtin("rtd")
//
// Custom or re-addressed chips can be described in a small YAML file:
//
//	name: greenhouse-ph
//	default_address: 0x10
//	reply_size: 42
//
// and loaded with chip.Load.
package chip
