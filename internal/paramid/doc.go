/*
Package paramid provides a structured representation of qualified parameter
names.

The canonical format is `instance: local`, e.g. `Osc: frequency`. A name with
no instance part (such as the output tap `OUT`) is a bare name.

This package centralises formatting, parsing and validation so the editor,
the patch loader and the engine agree on one spelling.
*/
package paramid
