package domain

import "time"

// Review is a single customer review as returned by the reviews API.
// Immutable once fetched; the analysis pipeline owns it for the duration of
// one request and discards it after the report is produced.
type Review struct {
	Body        string
	Rating      int
	Date        time.Time // zero when the API date could not be parsed
	RawDate     string
	SellerReply string
}

// Product is the catalog metadata for one marketplace article.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Rating      float64
	ReviewCount int
	Price       float64
}
