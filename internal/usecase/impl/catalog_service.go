package impl

import (
	"context"
	"io"
	"log/slog"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	store    service.SessionStore
	catalog  service.CatalogAPI
	vision   service.VisionAPI
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	store service.SessionStore,
	catalog service.CatalogAPI,
	vision service.VisionAPI,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		store:    store,
		catalog:  catalog,
		vision:   vision,
		validate: validate,
		logger:   logger,
	}
}

// Products lists products matching the query. Browsing is anonymous-friendly.
func (srv *catalogService) Products(ctx context.Context, query service.ProductQuery) []entity.Product {
	products, err := srv.catalog.Products(ctx, query)
	if err != nil {
		srv.logger.Warn("Product listing failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load products."))

		return []entity.Product{}
	}

	return products
}

// Product returns one product, or nil when it cannot be loaded.
func (srv *catalogService) Product(ctx context.Context, productID string) *entity.Product {
	product, err := srv.catalog.Product(ctx, productID)
	if err != nil {
		srv.logger.Warn("Product fetch failed", "productID", productID, "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load product."))

		return nil
	}

	return product
}

// SubmitReview creates or updates the customer's review of a product.
func (srv *catalogService) SubmitReview(ctx context.Context, productID string, draft entity.ReviewDraft) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	draft.ProductID = productID

	if err := srv.validate.Struct(draft); err != nil {
		srv.logger.Debug("Review input rejected", "error", err)

		return usecase.Fail(domainerrors.ErrValidationFailed.Message())
	}

	var err error
	if draft.IsUpdate() {
		err = srv.catalog.UpdateReview(ctx, token, draft)
	} else {
		err = srv.catalog.CreateReview(ctx, token, draft)
	}

	if err != nil {
		srv.logger.Warn("Review submission failed", "productID", productID, "error", err)

		return srv.fail(err, "Failed to submit review.")
	}

	return usecase.OK("Review submitted successfully.")
}

// DeleteReview removes the customer's review.
func (srv *catalogService) DeleteReview(ctx context.Context, productID, reviewID string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.catalog.DeleteReview(ctx, token, productID, reviewID); err != nil {
		srv.logger.Warn("Review deletion failed", "reviewID", reviewID, "error", err)

		return srv.fail(err, "Failed to delete review.")
	}

	return usecase.OK("Review deleted successfully.")
}

// SearchByImage uploads a photo and returns visually similar products.
func (srv *catalogService) SearchByImage(ctx context.Context, filename string, image io.Reader) []entity.Product {
	data, err := io.ReadAll(image)
	if err != nil {
		srv.logger.Warn("Image read failed", "error", err)
		srv.store.SetLastError("Failed to read the image.")

		return []entity.Product{}
	}

	products, err := srv.vision.SearchByImage(ctx, filename, data)
	if err != nil {
		srv.logger.Warn("Image search failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Image search failed."))

		return []entity.Product{}
	}

	return products
}

func (srv *catalogService) fail(err error, fallback string) usecase.Result {
	message := domainerrors.MessageOf(err, fallback)
	srv.store.SetLastError(message)

	return usecase.Fail(message)
}
