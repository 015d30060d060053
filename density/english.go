package density

// englishGroups lists characters of English text with their approximate
// frequency per ten thousand characters. Each character in a group shares
// the group's frequency.
var englishGroups = []struct {
	chars  string
	weight float64
}{
	{" ", 1300}, {"e", 1270}, {"t", 906}, {"a", 817}, {"o", 751},
	{"i", 697}, {"n", 675}, {"s", 633}, {"h", 609}, {"r", 599},
	{"d", 425}, {"l", 403}, {"c", 278}, {"u", 276}, {"m", 241},
	{"w", 236}, {"f", 223}, {"g", 202}, {"y", 197}, {"p", 193},
	{"b", 149}, {"v", 98}, {"k", 77}, {"jx", 15}, {"q", 10}, {"z", 7},
	{"ET", 50}, {"AO", 45}, {"INS", 38}, {"HRD", 30}, {"LC", 25},
	{"UM", 20}, {"WFGYP", 15}, {"BVK", 10}, {"JXQZ", 3},
	{".\n", 100}, {",", 80}, {"-0123456789", 50}, {"\"", 40},
	{"'_", 30}, {"!\t", 20}, {"?();/\\", 15}, {":&+=", 10},
	{"[]{}\r#$%*|<>~`@", 5},
}

// English returns byte weights typical of English text. Bytes that do not
// occur in plain English text weigh zero; add a Uniform density to cover them.
func English() Weights {
	w := make(Weights, 256)
	for _, g := range englishGroups {
		for i := 0; i < len(g.chars); i++ {
			w[g.chars[i]] = g.weight
		}
	}
	return w
}
