/*
Package domain contains the data model produced by the vardeps parser.

It describes which state variables of a layered simulation model depend on which
other quantities, as declared in a plain-text dependency file. The package is kept
pure and free of I/O.

# Key Entities

  - Section: one declared target variable, its kind (Root or Regular) and its ordered declarations.
  - Declaration: one dependency of a target on another quantity, with a kind and an origin.
  - Edge: a declaration attached to the target it belongs to.
  - Graph: the assembled, read-only dependency graph over variable names.
  - Assembler: commits finalized sections into a Graph, rejecting duplicate targets.
*/
package domain
