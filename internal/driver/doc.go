// Package driver runs a Plan: it sweeps numeric functions over small ranges,
// then replays a list of calculator steps, handing every result to a
// Presenter as soon as it is computed. It decouples what is computed from
// how it is shown, the way an orchestration layer decouples business logic
// from its UI.
package driver
