package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"medimart/config"
	"medimart/internal/domain/repository"
	"medimart/internal/domain/service"
	"medimart/internal/infra/api"
	logs "medimart/internal/infra/log"
	"medimart/internal/infra/persistence/blobstore"
	"medimart/internal/infra/state"
	"medimart/internal/usecase"
	"medimart/internal/usecase/impl"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - login:     Sign in and persist the session
// - logout:    Sign out and clear the persisted session
// - register:  Create a new account
// - profile:   Show the signed-in account
// - products:  Browse the catalog
// - cart:      Show or mutate the cart
// - orders:    List, inspect or cancel orders
// - checkout:  Place an order from the current cart
// - favorites: Show or toggle the wishlist

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	productsCmd := flag.NewFlagSet("products", flag.ExitOnError)
	cartCmd := flag.NewFlagSet("cart", flag.ExitOnError)
	ordersCmd := flag.NewFlagSet("orders", flag.ExitOnError)
	checkoutCmd := flag.NewFlagSet("checkout", flag.ExitOnError)
	favoritesCmd := flag.NewFlagSet("favorites", flag.ExitOnError)

	loginUsername := loginCmd.String("username", "", "Account username")
	loginPassword := loginCmd.String("password", "", "Account password")

	registerUsername := registerCmd.String("username", "", "Account username")
	registerPassword := registerCmd.String("password", "", "Account password")
	registerName := registerCmd.String("name", "", "Display name")
	registerEmail := registerCmd.String("email", "", "Contact email")

	productsSearch := productsCmd.String("search", "", "Search term")
	productsCategory := productsCmd.String("category", "", "Category filter")
	productsPage := productsCmd.Int("page", 1, "Page number")
	productsLimit := productsCmd.Int("limit", 20, "Page size")

	cartAdd := cartCmd.String("add", "", "Product ID to add")
	cartQty := cartCmd.Int("qty", 1, "Quantity for -add")
	cartRemove := cartCmd.String("remove", "", "Cart line ID to remove")
	cartClear := cartCmd.Bool("clear", false, "Empty the cart")

	ordersCancel := ordersCmd.String("cancel", "", "Order ID to cancel")
	ordersReason := ordersCmd.String("reason", "", "Cancellation reason for -cancel")

	checkoutName := checkoutCmd.String("name", "", "Recipient name")
	checkoutPhone := checkoutCmd.String("phone", "", "Contact phone")
	checkoutAddress := checkoutCmd.String("address", "", "Full shipping address")
	checkoutMethod := checkoutCmd.String("method", "cod", "Payment method (cod or online)")
	checkoutNote := checkoutCmd.String("note", "", "Optional note for the order")

	favoritesToggle := favoritesCmd.String("toggle", "", "Product ID to toggle")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := cliFlags{
		Login: loginFlags{
			cmd:      loginCmd,
			username: loginUsername,
			password: loginPassword,
		},
		Register: registerFlags{
			cmd:      registerCmd,
			username: registerUsername,
			password: registerPassword,
			name:     registerName,
			email:    registerEmail,
		},
		Products: productsFlags{
			cmd:      productsCmd,
			search:   productsSearch,
			category: productsCategory,
			page:     productsPage,
			limit:    productsLimit,
		},
		Cart: cartFlags{
			cmd:    cartCmd,
			add:    cartAdd,
			qty:    cartQty,
			remove: cartRemove,
			clear:  cartClear,
		},
		Orders: ordersFlags{
			cmd:    ordersCmd,
			cancel: ordersCancel,
			reason: ordersReason,
		},
		Checkout: checkoutFlags{
			cmd:     checkoutCmd,
			name:    checkoutName,
			phone:   checkoutPhone,
			address: checkoutAddress,
			method:  checkoutMethod,
			note:    checkoutNote,
		},
		Favorites: favoritesFlags{
			cmd:    favoritesCmd,
			toggle: favoritesToggle,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	Login     loginFlags
	Register  registerFlags
	Products  productsFlags
	Cart      cartFlags
	Orders    ordersFlags
	Checkout  checkoutFlags
	Favorites favoritesFlags
}

type loginFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
}

type registerFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
	name     *string
	email    *string
}

type productsFlags struct {
	cmd      *flag.FlagSet
	search   *string
	category *string
	page     *int
	limit    *int
}

type cartFlags struct {
	cmd    *flag.FlagSet
	add    *string
	qty    *int
	remove *string
	clear  *bool
}

type ordersFlags struct {
	cmd    *flag.FlagSet
	cancel *string
	reason *string
}

type checkoutFlags struct {
	cmd     *flag.FlagSet
	name    *string
	phone   *string
	address *string
	method  *string
	note    *string
}

type favoritesFlags struct {
	cmd    *flag.FlagSet
	toggle *string
}

// deps is populated from the Fx graph before the subcommand runs.
type deps struct {
	fx.In

	Store     service.SessionStore
	Sessions  usecase.SessionUsecase
	Carts     usecase.CartUsecase
	Addresses usecase.AddressUsecase
	Orders    usecase.OrderUsecase
	Catalog   usecase.CatalogUsecase
	Favorites usecase.FavoriteUsecase
	Payments  usecase.PaymentUsecase
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	var resolved deps

	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.NopLogger,
		fx.Populate(&resolved),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		_ = app.Stop(ctx)
	}()

	switch os.Args[1] {
	case "login":
		return handleLogin(ctx, &resolved, flags)
	case "logout":
		return runLogout(ctx, &resolved)
	case "register":
		return handleRegister(ctx, &resolved, flags)
	case "profile":
		return runProfile(ctx, &resolved)
	case "products":
		return handleProducts(ctx, &resolved, flags)
	case "cart":
		return handleCart(ctx, &resolved, flags)
	case "orders":
		return handleOrders(ctx, &resolved, flags)
	case "checkout":
		return handleCheckout(ctx, &resolved, flags)
	case "favorites":
		return handleFavorites(ctx, &resolved, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		newValidator,
	)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func injectRepo() fx.Option {
	return fx.Provide(
		newCredentialRepository,
	)
}

func newCredentialRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.CredentialRepository, error) {
	store, err := blobstore.New(cfg.Storage.Dir, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open credential store")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

func injectService() fx.Option {
	return fx.Provide(
		state.NewStore,
		api.New,
		api.NewAuthAPI,
		api.NewCustomerAPI,
		api.NewCartAPI,
		api.NewOrderAPI,
		api.NewCatalogAPI,
		api.NewFavoriteAPI,
		api.NewPaymentAPI,
		api.NewVisionAPI,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewSessionService,
		impl.NewCartService,
		impl.NewAddressService,
		impl.NewOrderService,
		impl.NewCatalogService,
		impl.NewFavoriteService,
		impl.NewPaymentService,
	)
}

func printUsage() {
	fmt.Println("Usage: medimart <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  login       Sign in and persist the session")
	fmt.Println("  logout      Sign out and clear the persisted session")
	fmt.Println("  register    Create a new account")
	fmt.Println("  profile     Show the signed-in account")
	fmt.Println("  products    Browse the catalog")
	fmt.Println("  cart        Show or mutate the cart")
	fmt.Println("  orders      List or cancel orders")
	fmt.Println("  checkout    Place an order from the current cart")
	fmt.Println("  favorites   Show or toggle the wishlist")
	fmt.Println("")
	fmt.Println("Use 'medimart <command> -h' for more information about a command.")
}
