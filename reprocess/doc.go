// Package reprocess recomputes the derived fields of stored resumes
// (normalized text, skills and category) after the vocabulary, taxonomy
// or lemmatizer change.
//
// Resumes are read in ID order in batches, analyzed and written back with
// retry and exponential backoff. Progress is reported to a writer and,
// when a checkpoint repository is configured, saved after every batch so
// an interrupted run continues where it stopped.
package reprocess
