// Package ioadapters is C13: two-way adapters between driver.Options /
// driver.Result and their external, human-facing representations — a
// TOML configuration document in, a CSV statistics stream out (§6, SPEC_FULL
// §12's supplemented statistics-stream feature).
//
// LoadConfig decodes a TOML document into a Config and, via
// Config.ToOptions, an engine-ready driver.Options seeded from
// driver.DefaultOptions() and overridden field-by-field. Decoding is
// strict: unrecognised keys are rejected rather than silently ignored,
// per §7's "reject unknown configuration keys" construction-time rule.
//
// WriteStatsCSV renders a driver.Result's per-iteration statistics as a
// CSV stream, one row per driver.IterationStat, for offline inspection
// or plotting.
//
// Grounded on converterts/doc.go's "two-way adapters between internal and
// external representations" framing, generalised here from graph-library
// interop to config/stats interop — the teacher's converters package held
// no runnable code beyond that doc comment in this snapshot, so the
// adaptation is structural, not line-level.
package ioadapters
