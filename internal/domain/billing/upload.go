package billing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column names of an uploaded usage batch.
const (
	ColumnDay            = "Day"
	ColumnCompany        = "Company"
	ColumnStore          = "Store"
	ColumnName           = "Name"
	ColumnTotalLabels    = "Total Labels"
	ColumnProductUpdated = "Product Updated"
)

// columnAliases maps every accepted key spelling to its canonical column
// name. Key normalization happens once here, at the boundary.
var columnAliases = map[string]string{
	"day":             ColumnDay,
	"Day":             ColumnDay,
	"company":         ColumnCompany,
	"Company":         ColumnCompany,
	"store":           ColumnStore,
	"Store":           ColumnStore,
	"name":            ColumnName,
	"Name":            ColumnName,
	"totalLabels":     ColumnTotalLabels,
	"Total Labels":    ColumnTotalLabels,
	"productUpdated":  ColumnProductUpdated,
	"Product Updated": ColumnProductUpdated,
}

// requiredColumns must all be present in an uploaded batch; Name is optional.
var requiredColumns = []string{
	ColumnDay,
	ColumnCompany,
	ColumnStore,
	ColumnTotalLabels,
	ColumnProductUpdated,
}

// RawUsageRow is one uploaded row before validation. Keys are the uploader's
// spelling, values are whatever the transport decoded (strings or numbers).
type RawUsageRow map[string]any

// UploadRequest is a request to ingest one customer's usage for one month.
type UploadRequest struct {
	CompanyID   int64
	CompanyCode string
	CompanyName string
	IssuedDate  string
	Currency    string
	TTM         decimal.NullDecimal
	Summaries   []RawUsageRow
}

// ValidationError is a terminal upload rejection. Lines are ordered
// human-readable messages, most general first.
type ValidationError struct {
	Lines []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return strings.Join(e.Lines, "\n")
}

func reject(lines ...string) *ValidationError {
	return &ValidationError{Lines: lines}
}

const generalBatchMessage = "Customer usage data is invalid. Check the contents of the uploaded file."

// ValidateUpload runs the full validation sequence over an upload request
// and returns the deduplicated, normalized summaries ready for persistence.
// Validation is all-or-nothing: the first failure rejects the whole batch.
func ValidateUpload(req UploadRequest) ([]*StoreSummary, error) {
	if req.CompanyCode == "" || req.CompanyName == "" || req.IssuedDate == "" || req.Currency == "" || req.Summaries == nil {
		return nil, reject("Invalid upload request payload.")
	}
	if len(req.Summaries) == 0 {
		return nil, reject("Customer usage data contains no records.")
	}

	if missing := missingColumns(req.Summaries[0]); len(missing) > 0 {
		return nil, reject(
			generalBatchMessage,
			fmt.Sprintf("Missing required columns: %s.", strings.Join(missing, ", ")),
		)
	}

	rows := make([]RawUsageRow, 0, len(req.Summaries))
	for _, raw := range req.Summaries {
		row := normalizeKeys(raw)
		if isBlankRow(row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, reject("Customer usage data contains no records.")
	}

	companies := distinctCompanies(rows)
	if len(companies) != 1 {
		return nil, reject(
			generalBatchMessage,
			"Customer usage data contains more than one company. Each upload must cover exactly one customer.",
		)
	}
	if companies[0] != req.CompanyCode {
		return nil, reject(
			"The selected customer does not match the company in the usage data. Check the contents of the uploaded file.",
			fmt.Sprintf("Selected customer: %s", req.CompanyCode),
			fmt.Sprintf("Usage data company: %s", companies[0]),
		)
	}

	month, err := ParseMonth(req.IssuedDate)
	if err != nil {
		return nil, reject("Target month format is invalid (YYYY-MM).")
	}

	deduped := make(map[SummaryKey]int)
	records := make([]*StoreSummary, 0, len(rows))
	for _, row := range rows {
		record, err := validateRow(row, req.CompanyCode, month)
		if err != nil {
			return nil, err
		}
		if idx, ok := deduped[record.Key()]; ok {
			// Last occurrence wins, mirroring the persisted replace semantics.
			records[idx] = record
			continue
		}
		deduped[record.Key()] = len(records)
		records = append(records, record)
	}

	return records, nil
}

// validateRow normalizes and validates a single non-blank row.
func validateRow(row RawUsageRow, companyCode string, month Month) (*StoreSummary, error) {
	dayRaw, _ := coerceString(row[ColumnDay])
	dayRaw = strings.TrimSpace(dayRaw)
	if len(dayRaw) < 7 {
		return nil, reject("Usage date is invalid.")
	}

	normalized := strings.ReplaceAll(dayRaw, "/", "-")
	if len(normalized) < 10 {
		return nil, reject("Usage date is invalid.")
	}

	if normalized[:7] != month.String() {
		return nil, reject(
			"Usage month does not match the target month.",
			"Check the contents of the usage data and select the correct target month.",
		)
	}

	date, err := parseDay(normalized[:10])
	if err != nil {
		return nil, reject(fmt.Sprintf("Usage date is invalid: %s", dayRaw))
	}

	storeCode, ok := coerceString(row[ColumnStore])
	storeCode = strings.TrimSpace(storeCode)
	if !ok || storeCode == "" {
		return nil, reject(fmt.Sprintf("Store code is invalid: %v", row[ColumnStore]))
	}

	totalLabels, okLabels := coerceNumber(row[ColumnTotalLabels])
	productUpdated, okUpdates := coerceNumber(row[ColumnProductUpdated])
	if !okLabels || !okUpdates {
		return nil, reject("Label count or product update count is not a number.")
	}

	var name *string
	if raw, ok := coerceString(row[ColumnName]); ok {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			name = &trimmed
		}
	}

	return &StoreSummary{
		CompanyCode:    companyCode,
		StoreCode:      storeCode,
		StoreName:      name,
		Date:           date,
		TotalLabels:    int64(math.Round(totalLabels)),
		ProductUpdated: int64(math.Round(productUpdated)),
	}, nil
}

// normalizeKeys rewrites a raw row onto canonical column names.
// Unknown keys pass through unchanged.
func normalizeKeys(row RawUsageRow) RawUsageRow {
	out := make(RawUsageRow, len(row))
	for k, v := range row {
		if canonical, ok := columnAliases[k]; ok {
			out[canonical] = v
		} else {
			out[k] = v
		}
	}
	return out
}

// missingColumns returns the required columns absent from the row's key set.
func missingColumns(row RawUsageRow) []string {
	present := make(map[string]bool, len(row))
	for k := range normalizeKeys(row) {
		present[k] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// isBlankRow reports whether every significant field is empty.
func isBlankRow(row RawUsageRow) bool {
	for _, col := range requiredColumns {
		if s, ok := coerceString(row[col]); ok && strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// distinctCompanies returns the distinct company codes in first-seen order.
func distinctCompanies(rows []RawUsageRow) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		company, _ := coerceString(row[ColumnCompany])
		if !seen[company] {
			seen[company] = true
			out = append(out, company)
		}
	}
	return out
}

// parseDay parses a normalized YYYY-MM-DD string as a UTC calendar date.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// coerceString converts a raw cell to a string. Numbers render without an
// exponent so store codes submitted as numbers keep their digits, and store
// codes submitted as strings (e.g. "007") are preserved exactly.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

// coerceNumber converts a raw cell to a finite float64.
func coerceNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
