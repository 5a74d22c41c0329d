// Package domain defines the core node model for the nodesim network simulator.
//
// This package contains the fundamental entities of the simulated radio
// network: the Node base identity, the AP (Access Point) aggregation node,
// and the RT (Remote Terminal) leaf node.
//
// # Core Types
//
// Node carries a numeric identifier and its display form. AP and RT embed
// Node; every kind satisfies the Entity interface, so a caller holding any
// node through an Entity (or fmt.Stringer) value gets the concrete kind's
// representation.
//
// # Ownership
//
// An AP holds the strong references to its member RTs. Each RT keeps a
// back-reference to its current owner, used only for reverse lookup ("which
// AP owns me") and never for lifetime control; the Go garbage collector
// handles the resulting reference cycle.
//
// AddMember and RemoveMember are the only operations that touch the
// owner/member relationship. Both sides of the association are updated within
// a single call, so the two-sided invariant
//
//	rt in ap.members  <=>  rt.Owner() == ap
//
// holds after every operation, provided re-parenting is done as a remove from
// the old owner followed by an add to the new one. See AddMember for the
// historical asymmetry when that protocol is skipped.
//
// # Design Principles
//
// - No locking: topology mutation is single-threaded by contract
// - No validation: any integer is a legal identifier
// - Pure domain logic without infrastructure concerns
package domain
