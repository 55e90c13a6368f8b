// Package remote lets an external editor drive a studio over socket.io.
//
// The synth connects as a client to an editor hub and answers editor events.
// Each request event carries at most one JSON object; each reply is emitted
// as "<event>:result" with at least {"ok": bool} and, on failure, "error".
//
//	list_parameters {}                          -> {"parameters": [...]}
//	get_link        {"name"}                    -> {"link": {"kind", "value"|"target"}}
//	set_value       {"name", "value"}
//	set_link        {"name", "target"}
//	add_node        {"type", "name"?}           -> {"name"}
//	remove_node     {"name"}
//	bind            {}                          -> {"report": {...}}
//	run_batch       {"samples"}                 -> {"samples": [...]}
//	snapshot        {}                          -> {"patch": "<hcl>"}
package remote
