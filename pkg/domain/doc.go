// Package domain contains the entities shared across the service: users, QF
// simulations and the bracket distribution derived from them. These types are
// free of storage and transport concerns.
package domain
