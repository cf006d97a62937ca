// Package writers turns controller output into serialized streams.
//
// Design:
//   • Writers own all presentation knowledge (TSV/JSONL rows, FASTA/FASTQ records).
//   • The core stays domain-only; it only sees the mode.Sink interface.
//   • JSONL goes through pkg/api (v1) for a stable wire format.
package writers
