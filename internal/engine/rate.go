package engine

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Tax rates arrive either as plain numbers or as free-text labels depending
// on the call site: "GST @ 18%", "None", "Exempted", "12". ParseRate
// normalizes all of them to a numeric percentage.
//
// Unparsable input degrades to a zero rate with resolved=false rather than
// failing, so a document can still be saved and corrected later. Callers must
// surface the unresolved flag as a warning.
func ParseRate(raw string) (percent float64, resolved bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	switch strings.ToLower(s) {
	case "none", "exempted", "exempt", "nil":
		return 0, true
	}

	if idx := strings.Index(s, "@"); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))

	// Keep the leading numeric token; labels like "18% GST" leave a suffix.
	if i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-'
	}); i >= 0 {
		s = s[:i]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return v, true
}

// Rate accepts either a JSON number or a labeled string in request payloads.
type Rate struct {
	Percent  float64
	Label    string
	Resolved bool
}

// UnmarshalJSON implements the number-or-string contract.
func (r *Rate) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		r.Percent = num
		r.Label = strconv.FormatFloat(num, 'f', -1, 64)
		r.Resolved = num >= 0 && num <= 100
		if !r.Resolved {
			r.Percent = 0
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.Label = s
	r.Percent, r.Resolved = ParseRate(s)
	return nil
}
