// Package inference draws samples from finite populations and makes
// statements about the population from them: standard errors, z and t
// confidence intervals, percentile bootstrap intervals, one and two sample
// t tests, proportion z tests, power and effect sizes.
//
// Sampling functions are generic over the population element type. All
// randomness comes from a caller-supplied *rand.Rand, so the same seed
// reproduces the same sample, bootstrap interval or test bit for bit.
//
//	rng := mathx.NewRand(1)
//	ci, _ := inference.BootstrapCI([]float64{1, 2, 3, 4, 5}, 1000, 0.95, rng)
//	fmt.Println(ci.Contains(3))
package inference
