// Package calculation holds the lease money primitives, the mileage projection
// and the constant-yield payoff solver. Every function is deterministic and
// side-effect free; all arithmetic is done on shopspring decimals under an
// explicit Precision.
package calculation
