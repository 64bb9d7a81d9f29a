package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func summaryWithName(store string, name *string) *StoreSummary {
	return &StoreSummary{
		CompanyCode: "ACME",
		StoreCode:   store,
		StoreName:   name,
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUnnamedStoreCodes(t *testing.T) {
	named := "Named Store"
	records := []*StoreSummary{
		summaryWithName("S1", nil),
		summaryWithName("S2", &named),
		summaryWithName("S1", nil),
		summaryWithName("S3", nil),
	}

	codes := UnnamedStoreCodes(records)
	assert.Equal(t, []string{"S1", "S3"}, codes)
}

func TestResolveStoreNames(t *testing.T) {
	records := []*StoreSummary{
		summaryWithName("S1", nil),
		summaryWithName("S2", nil),
	}

	ResolveStoreNames(records, map[string]string{"S1": "First Store"})

	assert.NotNil(t, records[0].StoreName)
	assert.Equal(t, "First Store", *records[0].StoreName)
	assert.Nil(t, records[1].StoreName, "records without a directory match keep a nil name")
}

func TestResolveStoreNamesKeepsExplicitNames(t *testing.T) {
	uploaded := "Uploaded Name"
	records := []*StoreSummary{summaryWithName("S1", &uploaded)}

	ResolveStoreNames(records, map[string]string{"S1": "Directory Name"})

	assert.Equal(t, "Uploaded Name", *records[0].StoreName)
}
