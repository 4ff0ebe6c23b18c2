// Package hcl provides the HCL implementation of config.Loader. It reads
// preset files made of top-level attributes, for example:
//
//	optimization_level = 5
//	filters            = "0,5"
//	window_size        = "32k"
//	dir                = "${env.HOME}/optimized"
//
// Expressions may reference the process environment through the `env`
// object.
package hcl
