package service

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// KnownDomains are the mail providers typos are corrected towards.
var KnownDomains = []string{
	"gmail.com",
	"googlemail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"live.com",
	"icloud.com",
	"me.com",
	"aol.com",
	"proton.me",
	"protonmail.com",
	"fastmail.com",
}

const maxSuggestDistance = 2

// SuggestEmail returns email with its domain replaced by the closest known
// provider when the domain looks like a typo of one (edit distance 1 or 2).
func SuggestEmail(email string) (string, bool) {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	local, domain := email[:at], strings.ToLower(email[at+1:])

	best, bestDist := "", maxSuggestDistance+1
	for _, known := range KnownDomains {
		if domain == known {
			return "", false
		}
		d := levenshtein.ComputeDistance(domain, known)
		if d < bestDist {
			best, bestDist = known, d
		}
	}
	if best == "" {
		return "", false
	}
	return local + "@" + best, true
}
