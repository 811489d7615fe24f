// Package order contains the order aggregate and its status state machine.
//
// An order is created only by checkout, with status Placed. Status moves
// forward along Placed -> Shipped -> Delivered, with Placed -> Cancelled as
// the retailer's escape hatch. Delivered and Cancelled are terminal.
// The total amount is always recomputed from the items, never trusted from
// callers or storage.
package order
