// Package entity contains the core business objects of the project.
package entity

// Product is a catalog entry as returned by the product endpoints.
type Product struct {
	ID          string   // The server-assigned product identifier.
	Name        string   // Display name.
	Price       float64  // Current unit price.
	Images      []string // Image URLs, possibly empty.
	Description string   // Long-form description.
	Category    string   // Category name or slug.
	Brand       string   // Brand name.
	Stock       int      // Units in stock as last reported.
	Rating      float64  // Average review rating.
}

// Image returns the primary image URL, or empty when the product has none.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// Review is a customer review attached to a product.
type Review struct {
	ID        string // The server-assigned review identifier.
	ProductID string // The reviewed product.
	Author    string // Display name of the reviewer.
	Rating    int    // Star rating, 1 to 5.
	Comment   string // Free-form review text.
}

// ReviewDraft is the payload for creating or updating a review. A non-empty
// ReviewID marks the draft as an update of an existing review.
type ReviewDraft struct {
	ReviewID string
	ProductID string `validate:"required"`
	Rating    int    `validate:"required,min=1,max=5"`
	Comment string
}

// IsUpdate reports whether the draft targets an existing review.
func (d ReviewDraft) IsUpdate() bool {
	return d.ReviewID != ""
}
