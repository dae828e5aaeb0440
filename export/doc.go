// Package export writes scan results in tabular and document formats.
//
// Writers are kept in a registry keyed by format name. The built-in formats
// are "csv", "tsv", "json" and "text"; Register adds or replaces one.
//
//	err := export.Write("csv", os.Stdout, res, export.DefaultOptions())
//
// Every writer is deterministic: reactions in sorted order, steps ascending,
// numbers printed with Options.Precision significant digits, magnitudes
// below 1e-9 printed as 0. Missing cells (infeasible steps, unreported
// reactions) are empty in csv/tsv, null in json and "-" in text.
package export
