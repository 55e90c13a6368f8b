// Package hcl provides the HCL implementation of config.Loader and
// config.Writer for patch files.
//
// A patch file is an ordered list of `node "TYPE" "NAME"` and `group "NAME"`
// blocks. Inside a node block every attribute names a local parameter: a
// number becomes a value link and a string becomes a reference to another
// parameter's qualified name. Expressions may use the `sample_rate` and `dt`
// variables and a few numeric functions (abs, min, max, floor, ceil, pow).
package hcl
