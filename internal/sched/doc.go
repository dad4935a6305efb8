// Package sched reorders the instructions of a single basic block to hide
// pipeline latency.
//
// A pass over a block runs four phases in order and never re-enters one:
//
//  1. Build: one node per instruction and edges for the fixed-order barrier,
//     register RAW and conservative per-address-space memory RAW/WAW/WAR.
//  2. Analyze: longest dependent chain below every node (its depth).
//  3. Initialize: the ready set is every node without unscheduled parents.
//  4. Select, emit and release until no node remains.
//
// The block is drained before emission and rebuilt in the chosen order, so a
// pass either fails before touching the block or leaves a complete schedule.
// Graph state lives in an index-addressed arena owned by the pass; nothing is
// stored on the instructions themselves.
package sched
