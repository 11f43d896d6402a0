// Package writers turns match hits and pairwise distances into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV columns, JSON/JSONL).
//   - Core matching and distance code stays domain-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
