// Package fetch downloads the collection's placeholder images.
//
// The Manager walks an index range in order, building one source URL per
// index (base URL + index zero-padded to 5 digits + ".jpg"), and saves
// each image as <folder>/<index>.jpg after a decode + JPEG re-encode.
//
// Two properties make reruns cheap and safe:
//
//   - Indices whose target file already exists are skipped without a
//     network request, so a rerun retries only previous failures.
//   - Fetch and decode failures are reported and tallied per item but
//     never stop the loop; the tally is returned at the end.
//
// A fixed throttle delay runs once per iteration (skips included) through
// an injectable Sleeper, and the HTTP client carries a request timeout,
// so a dead remote host cannot stall a run forever.
package fetch
