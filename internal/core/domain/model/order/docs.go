// Package order provides the Order aggregate, the root of the order
// lifecycle.
//
// An order names a delivery service, two endpoints and the sender and
// receiver contacts. Its status follows a closed state machine: an order is
// created Waiting, is Accepted once every product on it has been split into
// shipments, and moves through the payment states until it is Completed,
// Refused or Cancelled. All status changes go through ChangeStatus, which
// rejects anything outside the transition table.
//
// The computed route and the total price are snapshots written by the
// application layer when the order leaves the Waiting status.
package order
