// Package wsn models a stationary wireless sensor network as an ordered
// node list plus a base station, together with the pairwise transmission
// power-coefficient matrix derived from inter-node distances. It is the
// data-model layer meant to feed routing, charging-schedule or lifetime
// optimizers; it contains no scheduler, protocol or persistence.
//
// # Matrix layout
//
// The coefficient between two endpoints is
//
//	Beta1 + Beta2 * distance**Alpha
//
// The matrix is (len(Nodes)+1)² and symmetric with a zero diagonal. Matrix
// slot 0 is always the base station; sensor i lives at matrix slot i+1.
// All exported accessors take node-sequence indices and translate
// internally, so callers never deal with the base-slot offset.
//
// # Mutation
//
// New performs the full O(n²) build. AddSensor and RemoveSensor patch the
// matrix incrementally in O(n), keeping the node sequence and the matrix in
// lockstep. Both validate their input before mutating: a failed call leaves
// the network exactly as it was.
//
// The container is not safe for concurrent use; callers that share a
// Network across goroutines must serialize mutating calls with their own
// lock.
package wsn
