// Command tateideal is a small Cobra front-end over the fixture Tate
// algebra of internal/fixture: it loads JSON-described ideals and
// elements and exposes basis, contains, and compare as subcommands. It
// is demo/test scaffolding, not part of the engine's public contract —
// real element construction is left to whatever Tate-algebra
// implementation a caller plugs in behind the algebra interfaces.
package main
