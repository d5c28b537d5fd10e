package matchmaker

// Pair is one future game. The first waiting user plays black.
type Pair struct {
	Black string
	White string
}

// GeneratePairs pairs consecutive users; an odd user out keeps waiting.
func GeneratePairs(users []string) []Pair {
	pairs := make([]Pair, 0, len(users)/2)
	for i := 0; i+1 < len(users); i += 2 {
		pairs = append(pairs, Pair{Black: users[i], White: users[i+1]})
	}
	return pairs
}
