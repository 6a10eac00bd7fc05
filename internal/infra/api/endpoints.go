package api

import "net/url"

// Endpoint table for the storefront API. Paths are joined to the configured
// base URL by the resty client.
const (
	epLogin       = "/auth/login"
	epRegister    = "/auth/register"
	epGoogleLogin = "/auth/google-login"
	epVerifyEmail = "/auth/verify-email"

	epProfile        = "/customers/profile"
	epChangePassword = "/customers/change-password"
	epAddresses      = "/customers/addresses"

	epMyOrders = "/orders/my-orders"
	epOrders   = "/orders"

	epProducts = "/products"

	epFavorites = "/favorites"

	epCart         = "/cart"
	epCartAddItem  = "/cart/add-item"
	epCartClear    = "/cart/clear"

	epCreatePaymentLink = "/payments/create-payment-link"

	epSearchByImage = "/ai/search-by-image"
)

func epAddress(addressID string) string {
	return epAddresses + "/" + url.PathEscape(addressID)
}

func epOrder(orderID string) string {
	return epOrders + "/" + url.PathEscape(orderID)
}

func epOrderCancel(orderID string) string {
	return epOrder(orderID) + "/cancel"
}

func epProduct(productID string) string {
	return epProducts + "/" + url.PathEscape(productID)
}

func epProductReviews(productID string) string {
	return epProduct(productID) + "/reviews"
}

func epProductReview(productID, reviewID string) string {
	return epProductReviews(productID) + "/" + url.PathEscape(reviewID)
}

func epFavorite(productID string) string {
	return epFavorites + "/" + url.PathEscape(productID)
}

func epFavoriteToggle(productID string) string {
	return epFavorites + "/toggle/" + url.PathEscape(productID)
}

func epCartItem(lineID string) string {
	return epCart + "/" + url.PathEscape(lineID)
}
