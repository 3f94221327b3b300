// Package padding grows a byte payload to an exact target size by appending filler.
//
// The filler is a single fixed-capacity buffer, either all zeros or filled once from a
// cryptographically strong source, which is referenced repeatedly by an ordered chunk list
// and concatenated into the final output. Progress is reported at coarse thresholds, where
// the assembly loop also yields to its Scheduler.
package padding
