// Package metrics records what a samplecalc run did: function evaluations,
// calculator operations and their failures. Collectors live in a private
// prometheus registry so tests and repeated runs never collide on the
// global default registry.
package metrics
