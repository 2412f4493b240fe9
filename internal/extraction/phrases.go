package extraction

import (
	"regexp"

	"github.com/spigell/resume-matcher/internal/keywords"
)

// phrase catches multi-word names whose spelling varies more than a fixed
// variation list covers. Matches are canonicalized through the lexicon.
type phrase struct {
	pattern  *regexp.Regexp
	category keywords.Category
}

func technical(expr string) phrase {
	return phrase{pattern: regexp.MustCompile(expr), category: keywords.Technical}
}

func softSkill(expr string) phrase {
	return phrase{pattern: regexp.MustCompile(expr), category: keywords.SoftSkills}
}

var phrases = []phrase{
	technical(`\basp\.net\s+core\b`),
	technical(`\bentity\s+framework(?:\s+core)?\b`),
	technical(`\bsql\s+server\b`),
	technical(`\bweb\s+api\b`),
	technical(`\brole[-\s]based\s+access(?:\s+control)?\b`),
	technical(`\bjson\s+web\s+tokens?\b`),
	technical(`\bgithub\s+actions\b`),
	technical(`\bunit\s+test(?:ing|s)\b`),
	technical(`\bintegration\s+test(?:ing|s)\b`),
	technical(`\bdependency\s+injection\b`),
	technical(`\bvisual\s+studio(?:\s+code)?\b`),
	technical(`\bcontinuous\s+(?:integration|deployment|delivery)\b`),
	technical(`\bmachine\s+learning\b`),
	softSkill(`\bproject\s+management\b`),
	softSkill(`\btime\s+management\b`),
	softSkill(`\bproblem[-\s]solving\b`),
	softSkill(`\bcritical\s+thinking\b`),
	softSkill(`\bdecision[-\s]making\b`),
}
