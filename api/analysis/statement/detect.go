package statement

import (
	"regexp"
	"strings"
)

// Dialect identifies the physical layout of a statement file.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectA               // semicolon-delimited, CR-packed rows
	DialectB               // quoted comma-delimited
)

func (d Dialect) String() string {
	switch d {
	case DialectA:
		return "A"
	case DialectB:
		return "B"
	}
	return "unknown"
}

var dialectADatePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4};.*(pix|cielo|transferencia)`)

// Detect classifies a decoded statement blob by a weighted-signal vote over
// the first 15 lines. A zero-zero tie falls back to delimiter prevalence in
// the first 10 lines.
func Detect(text string) Dialect {
	lines := strings.Split(text, "\n")
	if len(lines) > 15 {
		lines = lines[:15]
	}

	scoreA, scoreB := 0, 0
	var sawHeaderA, sawDataHeaderA, sawPackedLine, sawDateRowA bool
	var sawHeaderB, sawHistoricoB, sawQuotedRowB bool

	for _, raw := range lines {
		line := strings.ToLower(raw)

		if !sawHeaderA && (strings.Contains(line, "extrato de:") ||
			strings.Contains(line, "agência:") || strings.Contains(line, "agencia:") ||
			strings.Contains(line, "conta:")) {
			sawHeaderA = true
			scoreA += 3
		}
		if !sawDataHeaderA && strings.Contains(line, "data;lan") {
			sawDataHeaderA = true
			scoreA += 3
		}
		if !sawPackedLine && strings.Count(raw, "\r") > 5 && strings.Contains(raw, ";") {
			sawPackedLine = true
			scoreA += 2
		}
		if !sawDateRowA && dialectADatePattern.MatchString(line) {
			sawDateRowA = true
			scoreA++
		}

		if !sawHeaderB && strings.Contains(line, `"data","dependencia origem"`) {
			sawHeaderB = true
			scoreB += 3
		}
		if !sawHistoricoB && strings.Contains(line, `","`) &&
			strings.Contains(line, `"data"`) &&
			(strings.Contains(line, "histórico") || strings.Contains(line, "historico")) {
			sawHistoricoB = true
			scoreB += 3
		}
		if !sawQuotedRowB && strings.HasPrefix(strings.TrimSpace(raw), `"`) &&
			strings.Count(raw, `","`) > 3 {
			sawQuotedRowB = true
			scoreB++
		}
	}

	switch {
	case scoreA >= scoreB && scoreA >= 2:
		return DialectA
	case scoreB >= 2:
		return DialectB
	case scoreA == 0 && scoreB == 0:
		return detectByDelimiters(text)
	}
	return DialectUnknown
}

func detectByDelimiters(text string) Dialect {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	semis, commas := 0, 0
	for _, line := range lines {
		semis += strings.Count(line, ";")
		commas += strings.Count(line, ",")
	}
	switch {
	case float64(semis) > 1.5*float64(commas) && semis > 0:
		return DialectA
	case float64(commas) > 1.5*float64(semis) && commas > 0:
		return DialectB
	}
	return DialectUnknown
}
