// Package localize applies catalog-driven language switches to a dynamic
// set of host-provided text slots. The host registers its localizable
// text locations behind the Slot and Provider interfaces; the Coordinator
// holds the active language and rewrites every slot when it changes.
package localize
