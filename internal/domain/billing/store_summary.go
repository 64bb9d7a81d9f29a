package billing

import (
	"time"

	"github.com/labelworks/backend/internal/domain/shared"
)

// StoreSummary is one store's usage on one calendar day.
// The triple (CompanyCode, StoreCode, Date) is unique; a later upload for
// the same triple replaces the earlier value entirely.
type StoreSummary struct {
	shared.BaseEntity
	CompanyCode    string
	StoreCode      string
	StoreName      *string
	Date           time.Time
	TotalLabels    int64
	ProductUpdated int64
}

// Key returns the identity key of the summary within an upload batch.
func (s *StoreSummary) Key() SummaryKey {
	return SummaryKey{
		CompanyCode: s.CompanyCode,
		StoreCode:   s.StoreCode,
		Date:        s.Date.Format(dateLayout),
	}
}

// SummaryKey identifies a StoreSummary row.
type SummaryKey struct {
	CompanyCode string
	StoreCode   string
	Date        string
}
