// Package distribution implements the normal, binomial, Poisson,
// exponential and uniform families, plus Student's t as the reference
// distribution for t tests.
//
// Every family exposes its density (PDF or PMF), CDF, quantile and seeded
// sampling. Parameters are validated on construction, so an invalid sigma,
// probability or rate is a DOMAIN_ERROR and never a silent NaN. Quantiles
// use closed forms where they exist and root finding on the CDF otherwise.
//
// Randomness always comes from a caller-supplied *rand.Rand:
//
//	rng := mathx.NewRand(42)
//	d, _ := distribution.NewNormal(0, 1)
//	xs, _ := d.Sample(100, rng)
package distribution
