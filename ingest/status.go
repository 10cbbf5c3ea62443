package ingest

import (
	"strconv"
	"strings"
)

// statusAliases folds the many spellings seen in supplier spreadsheets onto a
// small canonical set.
var statusAliases = map[string]string{
	"registered":     "registered",
	"active":         "active",
	"approved":       "approved",
	"pending":        "pending",
	"in progress":    "in-progress",
	"in-progress":    "in-progress",
	"expired":        "expired",
	"not registered": "not-registered",
	"rejected":       "rejected",
	"none":           "not-registered",
	"n/a":            "not-applicable",
	"na":             "not-applicable",
}

// NormalizeStatus maps a raw cell value onto the canonical status vocabulary.
// Unrecognized values pass through lowercased and trimmed so nothing is lost.
func NormalizeStatus(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "unknown"
	}
	if canonical, ok := statusAliases[value]; ok {
		return canonical
	}
	return value
}

// headerTokens mark a row as a likely header row.
var headerTokens = []string{"name", "no", "status", "date"}

// detectHeaderRow scans the first five rows for one that looks like a header:
// at least three non-empty cells and at least one cell carrying a header
// token. When nothing qualifies the first row is used as-is and blank headers
// become positional Column N labels.
func detectHeaderRow(rows [][]string) (int, []string) {
	limit := len(rows)
	if limit > 5 {
		limit = 5
	}

	for i := 0; i < limit; i++ {
		nonEmpty := 0
		hasToken := false
		for _, cell := range rows[i] {
			trimmed := strings.TrimSpace(cell)
			if trimmed == "" {
				continue
			}
			nonEmpty++
			lower := strings.ToLower(trimmed)
			for _, token := range headerTokens {
				if strings.Contains(lower, token) {
					hasToken = true
					break
				}
			}
		}
		if nonEmpty >= 3 && hasToken {
			return i, labelHeaders(rows[i])
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return 0, labelHeaders(rows[0])
}

func labelHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			headers[i] = positionalHeader(i)
		} else {
			headers[i] = trimmed
		}
	}
	return headers
}

func positionalHeader(i int) string {
	return "Column " + strconv.Itoa(i+1)
}

// fieldAliases maps header substrings onto the canonical record fields. Later
// columns win when several headers map to the same field. "status" is checked
// before "product name" so a "Product Status" column lands on status.
var fieldAliases = []struct {
	token string
	field string
}{
	{"brand", "brandName"},
	{"status", "status"},
	{"product name", "brandName"},
	{"generic", "genericName"},
	{"molecule", "genericName"},
	{"strength", "strength"},
	{"dosage", "dosageForm"},
	{"form", "dosageForm"},
	{"pack", "packSize"},
	{"reg no", "registrationNumber"},
	{"reg. no", "registrationNumber"},
	{"license", "registrationNumber"},
	{"expiry", "expiryDate"},
	{"expire", "expiryDate"},
	{"valid until", "expiryDate"},
	{"submission", "submissionDate"},
	{"approval date", "approvalDate"},
	{"manufacturer", "manufacturer"},
	{"mfg", "manufacturer"},
	{"country", "country"},
	{"market", "country"},
	{"price", "price"},
	{"cost", "price"},
	{"quantity", "quantity"},
	{"qty", "quantity"},
	{"remarks", "remarks"},
	{"comment", "remarks"},
}

func canonicalField(header string) string {
	lower := strings.ToLower(header)
	// "Registration No." style headers need both words; a bare "Registration
	// Status" column must not be mistaken for the number.
	if strings.Contains(lower, "registration") && strings.Contains(lower, "no") {
		return "registrationNumber"
	}
	for _, alias := range fieldAliases {
		if strings.Contains(lower, alias.token) {
			return alias.field
		}
	}
	return ""
}
