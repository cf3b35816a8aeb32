/*
Package mustache implements a logic-less, Mustache-family template
engine built around a flat, compiled list of opcodes ("codes") rather
than a tree walked at render time. Every code knows how to do three
things: execute itself forward against a scope, write its own original
source back out (its "identity"), and — uniquely for this engine —
unexecute itself, consuming a span of already-rendered text and
recovering the scope bindings that would reproduce it.

Example

Given a template file "card.mustache":

	{{#users}}
	{{name}} <{{email}}>
	{{^active}}(inactive){{/active}}
	{{/users}}

and a scope of

	{
		"users": [
			{"name": "ada", "email": "ada@example.com", "active": true},
			{"name": "grace", "email": "grace@example.com"}
		]
	}

rendering produces one line per user, with the inactive marker only on
grace's line:

	ada <ada@example.com>

	grace <grace@example.com>
	(inactive)

Sections

Beyond standard Mustache sigils, this engine recognizes a few more:

	{{name}}        escaped value
	{{{name}}}      unescaped value
	{{&name}}       unescaped value (alternate spelling)
	{{#name}}...{{/name}}   iterable section: body runs once per element
	{{?name}}...{{/name}}   truthy-once section: body runs at most once
	{{^name}}...{{/name}}   inverted section: body runs when name is falsy
	{{_name}}...{{/name}}   function section: body is post-processed by
	                        a callable bound to name
	{{>name}}               partial: inclusion of another compiled template
	{{<name}}...{{/name}}   extend: template inheritance over a parent
	{{$name}}...{{/name}}   name: a labelled, overridable region, legal on
	                        its own or as an extend override target
	{{!comment}}            comment, dropped at parse time

Unexecute

Every code's Unexecute is the forward direction's exact mirror: given
text believed to have come from Execute and a cursor into it, it either
advances the cursor and returns a populated scope, or reports that the
text at the cursor doesn't match this node, without it being a
construction-time or filesystem error. A template-level Unexecute call
threads this through every top-level code in sequence and returns
whatever scope falls out the far end — useful for recovering structured
data from text a human or another system produced against the same
template shape.

Concurrency

Execute streams its output through a FutureWriter: section bodies run in
their own goroutine as soon as the section is reached, and the writer
flushes everything in the order it was enqueued regardless of which
goroutine finishes first. A template with many independent sections
therefore renders them concurrently without giving up document order.

Caching

Parse's caching behavior is controlled by SetCacheMode. In Live mode
every Parse call (and every partial or extend it reaches) recompiles
from disk, so edits take effect immediately. In Cached mode a template
is compiled once per process per path and reused.
*/
package mustache
