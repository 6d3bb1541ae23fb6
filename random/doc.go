/*
Package random generates reproducible streams of primitive integers and
Naturals.

Every generator is built from a Seed. A Seed never changes; independent
sub-streams are derived from it with Fork, which hashes the parent seed with
a label:

	seed := random.ExampleSeed
	xs := random.NewNaturals(seed.Fork("xs"), 64, 1)
	ys := random.NewStripedNaturals(seed.Fork("ys"), 16, 1, 64, 1)
	fmt.Println(xs.Next(), ys.Next())

Generators hold mutable state and are not safe for concurrent use. Fork a
separate seed for each goroutine instead of sharing a generator.

Geometric generators take their mean as a fraction numerator/denominator.
Striped generators produce values made of long runs of equal bits, whose
mean run length is also given as a fraction; these values exercise carry and
borrow chains far more often than uniformly random bits do.
*/
package random
