// Package ingestion turns resume documents into stored ResumeRecords.
//
// The Pipeline runs each document through extraction (for files), text
// normalization, skill extraction and categorization on a bounded worker
// pool, then stores every successful record in one write. A document that
// yields no text is reported as a failure rather than stored.
//
// The Analyzer used by the pipeline is exported so other batch jobs can
// recompute derived fields the same way.
package ingestion
