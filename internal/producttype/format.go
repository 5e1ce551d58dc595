package producttype

import (
	"strings"

	"printworks/internal/domain"
)

func dtfLabel(pass domain.DtfPass) string {
	if pass == domain.DtfPassNone {
		return string(DTF)
	}
	return string(DTF) + " (" + string(pass) + ")"
}

// FormatProductTypes renders a selection for the order record, e.g.
// "PRINT ONLY", "DTF (4 PASS)" or "PRINT, PRESS".
func FormatProductTypes(s Selection, pass domain.DtfPass) string {
	selected := s.Selected()
	switch len(selected) {
	case 0:
		return ""
	case 1:
		if selected[0] == DTF {
			return dtfLabel(pass)
		}
		return string(selected[0]) + " ONLY"
	}

	parts := make([]string, len(selected))
	for i, t := range selected {
		if t == DTF {
			parts[i] = dtfLabel(pass)
			continue
		}
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// ParseFormatted reads a string produced by FormatProductTypes back into a
// selection and pass. Unknown tokens are ignored.
func ParseFormatted(formatted string) (Selection, domain.DtfPass) {
	var (
		s    Selection
		pass domain.DtfPass
	)
	for _, part := range strings.Split(formatted, ",") {
		token := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), " ONLY"))
		if strings.HasPrefix(token, string(DTF)) {
			if open := strings.Index(token, "("); open >= 0 && strings.HasSuffix(token, ")") {
				if p := domain.DtfPass(token[open+1 : len(token)-1]); p.Valid() {
					pass = p
				}
			}
			token = string(DTF)
		}
		if t, ok := Parse(token); ok {
			s = s.raw(t, true)
		}
	}
	return s, EffectivePass(s, pass)
}
