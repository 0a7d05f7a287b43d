package highlighter

import (
	"regexp"
)

// pass is one classification rule: a pattern, the category its
// matches receive, and whether its matches are recorded as claimed
// ranges that suppress later passes. group selects a submatch when
// only part of the pattern should be colored. classify, when set,
// overrides cat per match (identifier and call passes); returning
// TokenPlain drops the match.
type pass struct {
	re       *regexp.Regexp
	cat      TokenCategory
	group    int
	claims   bool
	classify func(word string) TokenCategory
}

// claim is a byte range already owned by a comment or string pass.
type claim struct {
	start  int
	length int
}

func newPass(expr string, cat TokenCategory) pass {
	re, err := regexp.Compile(expr)
	if err != nil {
		// A broken pattern disables this pass only; classification
		// degrades to fewer roles instead of failing the call.
		return pass{}
	}
	return pass{re: re, cat: cat}
}

func (p pass) claiming() pass {
	p.claims = true
	return p
}

func (p pass) submatch(group int) pass {
	p.group = group
	return p
}

func (p pass) withClassifier(fn func(word string) TokenCategory) pass {
	p.classify = fn
	return p
}

// rawSpan is a byte-offset span prior to rune conversion and
// normalization.
type rawSpan struct {
	Start int
	End   int
	Cat   TokenCategory
}

// runPasses folds the pass list left to right over text. Each pass
// sees the claims accumulated by earlier passes and skips any match
// that falls entirely inside one; claiming passes (comments, strings)
// extend the set for the passes behind them. Pass order is priority
// order.
func runPasses(text string, passes []pass) []rawSpan {
	var spans []rawSpan
	var claims []claim

	for _, p := range passes {
		if p.re == nil {
			continue
		}

		matches := p.re.FindAllStringSubmatchIndex(text, -1)
		for _, m := range matches {
			start, end := m[0], m[1]
			if p.group > 0 && 2*p.group+1 < len(m) {
				start, end = m[2*p.group], m[2*p.group+1]
			}
			if start < 0 || end <= start {
				continue
			}
			if containedInClaims(claims, start, end) {
				continue
			}

			cat := p.cat
			if p.classify != nil {
				cat = p.classify(text[start:end])
				if cat == TokenPlain {
					continue
				}
			}

			spans = append(spans, rawSpan{Start: start, End: end, Cat: cat})
			if p.claims {
				claims = append(claims, claim{start: start, length: end - start})
			}
		}
	}

	return spans
}

func containedInClaims(claims []claim, start int, end int) bool {
	for _, c := range claims {
		if start >= c.start && end <= c.start+c.length {
			return true
		}
	}
	return false
}
