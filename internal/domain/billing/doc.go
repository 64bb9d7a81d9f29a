// Package billing contains the invoicing core: customer master data,
// per-store daily usage summaries, issued monthly invoices, and the
// validation rules applied to uploaded usage batches.
package billing
