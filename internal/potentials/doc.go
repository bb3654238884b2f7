// Package potentials provides concrete energy surfaces for minimization.
//
// Each potential implements the [landscape.Potential] interface:
//
//   - [Gaussian]: single anisotropic Gaussian well
//   - [SumGaussian]: independent Gaussian wells over contiguous blocks
//   - [Harmonic]: isotropic spring about an origin
//
// Gaussian and Harmonic also implement [landscape.Hessian].
package potentials
