package lexicon

// DefaultThreshold is the confidence cutoff used when a lexicon file
// does not set one.
const DefaultThreshold = 85

// defaultEmoji maps shortcodes to semantic categories. Where the
// legacy alias and the CLDR slug form differ (":clap:" vs
// ":clapping_hands:") both are listed so the translator hits whichever
// dialect the demojizer emits and literal shortcodes already present
// in source text still match.
var defaultEmoji = map[string]string{
	":red_heart:":                       "affection",
	":love_you_gesture:":                "affection",
	":fire:":                            "intensity",
	":smile:":                           "happiness",
	":grinning_face_with_smiling_eyes:": "happiness",
	":grinning:":                        "joy",
	":grinning_face:":                   "joy",
	":thumbs_up:":                       "approval",
	":clap:":                            "acknowledgment",
	":clapping_hands:":                  "acknowledgment",
	":sunglasses:":                      "cool",
	":smiling_face_with_sunglasses:":    "cool",
	":sob:":                             "sadness",
	":loudly_crying_face:":              "sadness",
	":cry:":                             "tear",
	":crying_face:":                     "tear",
	":muscle:":                          "strength",
	":flexed_biceps:":                   "strength",
	":100:":                             "perfection",
	":hundred_points:":                  "perfection",
	":sparkles:":                        "excitement",
	":broken_heart:":                    "heartbreak",
	":star_struck:":                     "adoration",
	":eyes:":                            "attention",
	":winking_face:":                    "flirtation",
	":blush:":                           "embarrassment",
	":smiling_face_with_smiling_eyes:":  "embarrassment",
	":v:":                               "peace",
	":victory_hand:":                    "peace",
	":alien:":                           "weirdness",
	":sunny:":                           "positivity",
	":sun:":                             "positivity",
	":earth_africa:":                    "global",
	":globe_showing_europe_africa:":     "global",
	":trophy:":                          "achievement",
	":ghost:":                           "spooky",
	":robot:":                           "technology",
	":rainbow:":                         "diversity",
}

// defaultSlang expands whole-word social-media abbreviations.
var defaultSlang = map[string]string{
	"u":   "you",
	"gr8": "great",
	"np":  "no problem",
	"idk": "i do not know",
	"imo": "in my opinion",
}

// Default returns the compiled-in lexicon used when no YAML file is
// supplied.
func Default() *Lexicon {
	lex, err := New(defaultEmoji, defaultSlang, DefaultThreshold)
	if err != nil {
		// The compiled-in tables must satisfy the same validation as
		// loaded ones.
		panic(err)
	}
	return lex
}
