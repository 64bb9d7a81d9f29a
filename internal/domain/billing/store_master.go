package billing

import "github.com/labelworks/backend/internal/domain/shared"

// StoreMaster maps (company code, store code) to the authoritative store
// display name. The billing core reads it to backfill missing names on
// uploaded summaries and never writes it.
type StoreMaster struct {
	shared.BaseEntity
	CompanyCode string
	StoreCode   string
	StoreName   string
}
