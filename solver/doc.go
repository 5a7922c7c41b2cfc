// Package solver finds optimal move sequences for puzzle states.
//
// Two solving strategies are provided:
//
//   - Search: IDA* over single-tile moves guided by an admissible
//     Heuristic (Manhattan distance). Optimal under the single-tile-move
//     metric, works for any size, keeps no persistent state.
//   - Table: a full-state-space distance table for small sizes, built once
//     by breadth-first search over Lehmer-ranked permutations and then
//     answering any state by greedy distance descent. Optimal under the
//     metric the table was built for, and serializable with an embedded
//     integrity checksum so it can be cached on disk.
package solver
