package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUploadRequest() UploadRequest {
	return UploadRequest{
		CompanyID:   1,
		CompanyCode: "ACME",
		CompanyName: "Acme Corp",
		IssuedDate:  "2024-05",
		Currency:    "USD",
		TTM:         decimal.NullDecimal{},
		Summaries: []RawUsageRow{
			{
				"day":            "2024-05-01",
				"company":        "ACME",
				"store":          "S1",
				"name":           "Store One",
				"totalLabels":    float64(100),
				"productUpdated": float64(10),
			},
		},
	}
}

func TestValidateUpload(t *testing.T) {
	t.Run("accepts a valid batch", func(t *testing.T) {
		records, err := ValidateUpload(validUploadRequest())
		require.NoError(t, err)
		require.Len(t, records, 1)

		r := records[0]
		assert.Equal(t, "ACME", r.CompanyCode)
		assert.Equal(t, "S1", r.StoreCode)
		require.NotNil(t, r.StoreName)
		assert.Equal(t, "Store One", *r.StoreName)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), r.Date)
		assert.Equal(t, int64(100), r.TotalLabels)
		assert.Equal(t, int64(10), r.ProductUpdated)
	})

	t.Run("rejects missing top-level fields", func(t *testing.T) {
		req := validUploadRequest()
		req.Currency = ""

		_, err := ValidateUpload(req)
		requireRejection(t, err, "Invalid upload request payload.")
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries = []RawUsageRow{}

		_, err := ValidateUpload(req)
		requireRejection(t, err, "Customer usage data contains no records.")
	})

	t.Run("rejects missing required columns by name", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries = []RawUsageRow{
			{"day": "2024-05-01", "company": "ACME", "store": "S1"},
		}

		_, err := ValidateUpload(req)
		verr := requireValidationError(t, err)
		require.Len(t, verr.Lines, 2)
		assert.Equal(t, generalBatchMessage, verr.Lines[0])
		assert.Contains(t, verr.Lines[1], "Total Labels, Product Updated")
	})

	t.Run("accepts spreadsheet-style column names", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries = []RawUsageRow{
			{
				"Day":             "2024-05-01",
				"Company":         "ACME",
				"Store":           "S1",
				"Total Labels":    float64(5),
				"Product Updated": float64(2),
			},
		}

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].StoreName)
	})

	t.Run("rejects multiple companies in one batch", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries = append(req.Summaries, RawUsageRow{
			"day":            "2024-05-02",
			"company":        "OTHER",
			"store":          "S2",
			"totalLabels":    float64(1),
			"productUpdated": float64(1),
		})

		_, err := ValidateUpload(req)
		verr := requireValidationError(t, err)
		require.Len(t, verr.Lines, 2)
		assert.Contains(t, verr.Lines[1], "more than one company")
	})

	t.Run("rejects company mismatch with both values shown", func(t *testing.T) {
		req := validUploadRequest()
		req.CompanyCode = "WIDGETS"

		_, err := ValidateUpload(req)
		verr := requireValidationError(t, err)
		require.Len(t, verr.Lines, 3)
		assert.Contains(t, verr.Lines[1], "WIDGETS")
		assert.Contains(t, verr.Lines[2], "ACME")
	})

	t.Run("rejects malformed target month", func(t *testing.T) {
		req := validUploadRequest()
		req.IssuedDate = "2024/05"
		for i := range req.Summaries {
			req.Summaries[i]["day"] = "2024/05-01"
		}

		_, err := ValidateUpload(req)
		requireRejection(t, err, "Target month format is invalid (YYYY-MM).")
	})

	t.Run("rejects usage month mismatch", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["day"] = "2024-06-01"

		_, err := ValidateUpload(req)
		verr := requireValidationError(t, err)
		assert.Equal(t, "Usage month does not match the target month.", verr.Lines[0])
	})

	t.Run("rejects invalid calendar date with offending value", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["day"] = "2024-05-99"

		_, err := ValidateUpload(req)
		verr := requireValidationError(t, err)
		assert.Contains(t, verr.Lines[0], "2024-05-99")
	})

	t.Run("rejects truncated day values", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["day"] = "2024-05"

		_, err := ValidateUpload(req)
		requireRejection(t, err, "Usage date is invalid.")
	})

	t.Run("normalizes slash-separated dates", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["day"] = "2024/05/01"

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	})

	t.Run("rejects empty store code", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["store"] = "   "

		_, err := ValidateUpload(req)
		verr := requireValidationError(t, err)
		assert.Contains(t, verr.Lines[0], "Store code is invalid")
	})

	t.Run("preserves leading zeros in string store codes", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["store"] = "007"

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		assert.Equal(t, "007", records[0].StoreCode)
	})

	t.Run("coerces numeric store codes to strings", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["store"] = float64(42)

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		assert.Equal(t, "42", records[0].StoreCode)
	})

	t.Run("rejects non-numeric counts", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["totalLabels"] = "abc"

		_, err := ValidateUpload(req)
		requireRejection(t, err, "Label count or product update count is not a number.")
	})

	t.Run("coerces numeric strings in counts", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["totalLabels"] = "25"

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		assert.Equal(t, int64(25), records[0].TotalLabels)
	})

	t.Run("treats blank store name as absent", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries[0]["name"] = "   "

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		assert.Nil(t, records[0].StoreName)
	})

	t.Run("skips fully blank rows", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries = append(req.Summaries, RawUsageRow{
			"day": "", "company": "", "store": "", "totalLabels": "", "productUpdated": "",
		})

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("deduplicates by store and date with last occurrence winning", func(t *testing.T) {
		req := validUploadRequest()
		req.Summaries = append(req.Summaries, RawUsageRow{
			"day":            "2024-05-01",
			"company":        "ACME",
			"store":          "S1",
			"totalLabels":    float64(999),
			"productUpdated": float64(99),
		})

		records, err := ValidateUpload(req)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(999), records[0].TotalLabels)
		assert.Equal(t, int64(99), records[0].ProductUpdated)
	})
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	require.NotEmpty(t, verr.Lines)
	return verr
}

func requireRejection(t *testing.T, err error, firstLine string) {
	t.Helper()
	verr := requireValidationError(t, err)
	assert.Equal(t, firstLine, verr.Lines[0])
}
