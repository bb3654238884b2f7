// Package landscape provides the core primitives for exploring
// potential-energy landscapes.
//
// The package defines the vector type and capability interfaces shared by
// every potential and minimizer in the module:
//
//   - [Coords]: dense vector of degrees of freedom
//   - [Potential]: energy and analytic gradient of a configuration
//   - [Hessian]: optional second-derivative capability
//
// # Example
//
//	pot, _ := potentials.NewGaussian(mean, cov)
//	grad := make(landscape.Coords, pot.NumDOF())
//	e, _ := pot.EnergyGradient(x, grad)
//
// # Thread Safety
//
// Potentials are immutable after construction and may be evaluated from
// multiple goroutines on distinct configurations. Coords carry no locking;
// callers own their buffers.
package landscape
