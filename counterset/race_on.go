//go:build race

package counterset

// raceEnabled is set when built with the race detector. pb.MapOf reads
// bucket pointers with plain loads on TSO architectures, which the detector
// reports even though the hardware orders them.
const raceEnabled = true
