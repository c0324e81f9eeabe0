// Package puzzles ships a small corpus of sample puzzles, ordered
// roughly by difficulty. The first five solve by pure deduction; the
// escargot grid defeats the implemented technique set and is kept as a
// known Stuck case.
package puzzles

// Sample is a named puzzle with its 81-digit givens line.
type Sample struct {
	Name   string
	Givens string
}

var samples = []Sample{
	{"very-easy", "981003040000079250070106083090407502008010700703605010310704090069230000050900324"},
	{"easy", "007000006020670000864091037006304070208000603040506800480760159000052060600000300"},
	{"moderate", "007080200600702000090501060700009008400307002300800009010408050000905006008060900"},
	{"challenging", "960200000050000600300100005403910000090000070000025104600004001008000020000002036"},
	{"scenario", "030206050600708001000030000340109065002000900580403027000070000700902008010605070"},
	{"escargot", "100007090030020008009600500005300900010080002600004000300000010040000007007000300"},
}

// All returns the sample corpus in difficulty order.
func All() []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	return out
}

// Names returns the sample names in difficulty order.
func Names() []string {
	out := make([]string, len(samples))
	for i, s := range samples {
		out[i] = s.Name
	}
	return out
}

// Lookup returns the givens of a sample by name.
func Lookup(name string) (string, bool) {
	for _, s := range samples {
		if s.Name == name {
			return s.Givens, true
		}
	}
	return "", false
}
