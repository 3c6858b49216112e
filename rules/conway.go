package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRule is returned by ParseRule for malformed rule strings
var ErrInvalidRule = errors.New("invalid rule")

/*
Rule is a life-like birth/survival rule.

Bit n of Birth is set when a dead cell with n live neighbors is born, bit n of
Survive when a live cell with n live neighbors stays alive.
*/
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the classic B3/S23 rule
var Conway = Rule{
	Birth:   1 << 3,
	Survive: 1<<2 | 1<<3,
}

// Next returns the state of a cell in the next generation
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}

// String renders the rule in B/S notation
func (r Rule) String() string {
	return "B" + digits(r.Birth) + "/S" + digits(r.Survive)
}

func digits(set uint16) string {
	var sb strings.Builder
	for n := range 9 {
		if set&(1<<n) != 0 {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// ParseRule parses B/S notation such as "B3/S23" (case-insensitive)
func ParseRule(s string) (Rule, error) {
	var rule Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] expected B../S.., got %q", s)
	}

	var (
		err                    error
		seenBirth, seenSurvive bool
	)
	for _, part := range parts {
		switch {
		case strings.HasPrefix(part, "B") && !seenBirth:
			seenBirth = true
			if rule.Birth, err = parseCounts(part[1:]); err != nil {
				return Rule{}, errors.Wrapf(err, "[ParseRule] birth counts in %q", s)
			}
		case strings.HasPrefix(part, "S") && !seenSurvive:
			seenSurvive = true
			if rule.Survive, err = parseCounts(part[1:]); err != nil {
				return Rule{}, errors.Wrapf(err, "[ParseRule] survival counts in %q", s)
			}
		default:
			return Rule{}, errors.Wrapf(ErrInvalidRule, "[ParseRule] unexpected or repeated section %q in %q", part, s)
		}
	}
	return rule, nil
}

func parseCounts(s string) (uint16, error) {
	var set uint16
	for _, c := range s {
		if c < '0' || c > '8' {
			return 0, errors.Wrapf(ErrInvalidRule, "neighbor count %q out of range", c)
		}
		set |= 1 << (c - '0')
	}
	return set, nil
}
