package eval

import (
	"errors"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/vic/lamb/pkg/lambda"
	"golang.org/x/exp/slices"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 2

// Suggest returns the defined name closest to name, or "" when none is
// close. Names containing the letters of name in order win over names
// within a small edit distance; the distance must stay under half the
// length of name.
func (e *Evaluator) Suggest(name string) string {
	names := e.env.Names()

	if ranks := fuzzy.RankFindFold(name, names); len(ranks) > 0 {
		slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
			if a.Distance != b.Distance {
				return a.Distance - b.Distance
			}
			return strings.Compare(a.Target, b.Target)
		})
		return ranks[0].Target
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, n := range names {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(n))
		if d < bestDist && 2*d < len(name) {
			best, bestDist = n, d
		}
	}
	return best
}

// annotate fills in the suggestion of a NotDefinedError in err.
func (e *Evaluator) annotate(err error) error {
	var nd *lambda.NotDefinedError
	if errors.As(err, &nd) && nd.Suggestion == "" {
		nd.Suggestion = e.Suggest(nd.Name)
	}
	return err
}
