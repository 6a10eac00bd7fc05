package main

import (
	"context"
	"fmt"
	"os"

	"medimart/internal/domain/entity"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"

	"github.com/pkg/errors"
)

func handleLogin(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	if *flags.Login.username == "" || *flags.Login.password == "" {
		return errors.New("-username and -password are required")
	}

	result := app.Sessions.Login(ctx, *flags.Login.username, *flags.Login.password)
	if !result.Success {
		return errors.New(result.Message)
	}

	session := app.Store.Snapshot()
	fmt.Printf("%s\n", result.Message)
	fmt.Printf("Signed in as %s (%s)\n", session.User.Username, session.User.Role)

	return nil
}

func runLogout(ctx context.Context, app *deps) error {
	app.Sessions.Restore(ctx)

	result := app.Sessions.Logout(ctx)
	fmt.Printf("%s\n", result.Message)

	return nil
}

func handleRegister(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Register.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse register flags")
	}

	result := app.Sessions.Register(ctx, usecase.RegisterInput{
		Username: *flags.Register.username,
		Password: *flags.Register.password,
		Name:     *flags.Register.name,
		Email:    *flags.Register.email,
	})
	if !result.Success {
		return errors.New(result.Message)
	}

	fmt.Printf("%s\n", result.Message)

	return nil
}

func runProfile(ctx context.Context, app *deps) error {
	session := app.Sessions.Restore(ctx)
	if !session.Authenticated() {
		return errors.New("not signed in")
	}

	user := app.Sessions.FetchProfile(ctx)
	if user == nil {
		// Fall back to the restored snapshot when the refetch fails.
		user = session.User
	}

	fmt.Printf("Username:  %s\n", user.Username)
	fmt.Printf("Name:      %s\n", user.Profile.Name)
	fmt.Printf("Email:     %s\n", user.Profile.Email)
	fmt.Printf("Phone:     %s\n", user.Profile.Phone)
	fmt.Printf("Role:      %s\n", user.Role)

	addresses := app.Addresses.FetchAddresses(ctx)
	for _, address := range addresses {
		marker := " "
		if address.IsDefault {
			marker = "*"
		}
		fmt.Printf("Address %s %s (%s)\n", marker, address.ShippingLine(), address.Name)
	}

	return nil
}

func handleProducts(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Products.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse products flags")
	}

	products := app.Catalog.Products(ctx, service.ProductQuery{
		Search:   *flags.Products.search,
		Category: *flags.Products.category,
		Page:     *flags.Products.page,
		Limit:    *flags.Products.limit,
	})
	if len(products) == 0 {
		fmt.Println("No products found.")

		return nil
	}

	printProducts(products)

	return nil
}

func handleCart(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Cart.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse cart flags")
	}

	app.Sessions.Restore(ctx)

	switch {
	case *flags.Cart.add != "":
		result := app.Carts.AddToCart(ctx, entity.Product{ID: *flags.Cart.add}, *flags.Cart.qty)
		if !result.Success {
			return errors.New(result.Message)
		}
		fmt.Printf("%s\n", result.Message)

	case *flags.Cart.remove != "":
		result := app.Carts.RemoveCartItem(ctx, *flags.Cart.remove)
		if !result.Success {
			return errors.New(result.Message)
		}
		fmt.Printf("%s\n", result.Message)

	case *flags.Cart.clear:
		result := app.Carts.ClearCart(ctx)
		if !result.Success {
			return errors.New(result.Message)
		}
		fmt.Printf("%s\n", result.Message)
	}

	lines := app.Carts.FetchCart(ctx)
	if len(lines) == 0 {
		fmt.Println("Cart is empty.")

		return nil
	}

	for _, line := range lines {
		fmt.Printf("%-24s  %-30s  x%-3d  %10.2f\n", line.LineID, line.Name, line.Quantity, line.Price)
	}
	fmt.Printf("Subtotal: %.2f\n", entity.CartSubtotal(lines))

	return nil
}

func handleOrders(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Orders.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse orders flags")
	}

	app.Sessions.Restore(ctx)

	if *flags.Orders.cancel != "" {
		result := app.Orders.CancelOrder(ctx, *flags.Orders.cancel, *flags.Orders.reason)
		if !result.Success {
			return errors.New(result.Message)
		}
		fmt.Printf("%s\n", result.Message)

		return nil
	}

	orders := app.Orders.FetchMyOrders(ctx)
	if len(orders) == 0 {
		fmt.Println("No orders found.")

		return nil
	}

	for _, order := range orders {
		fmt.Printf("%-24s  %-12s  %10.2f  %s\n",
			order.ID, order.Status, order.Total, order.CreatedAt.Format("2006-01-02"))
	}

	return nil
}

func handleCheckout(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Checkout.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse checkout flags")
	}

	app.Sessions.Restore(ctx)

	lines := app.Carts.FetchCart(ctx)
	if len(lines) == 0 {
		return errors.New("cart is empty")
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	result := app.Orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
		Items:           items,
		ShippingAddress: *flags.Checkout.address,
		RecipientName:   *flags.Checkout.name,
		Phone:           *flags.Checkout.phone,
		PaymentMethod:   *flags.Checkout.method,
		Note:            *flags.Checkout.note,
	})
	if !result.Success {
		return errors.New(result.Message)
	}

	fmt.Printf("%s\n", result.Message)
	fmt.Printf("Order ID: %s\n", result.OrderID)

	if *flags.Checkout.method == "online" {
		link := app.Payments.CreatePaymentLink(ctx, result.OrderID, entity.CartSubtotal(lines))
		if !link.Success {
			return errors.New(link.Message)
		}
		fmt.Printf("Pay at: %s\n", link.CheckoutURL)
	}

	return nil
}

func handleFavorites(ctx context.Context, app *deps, flags *cliFlags) error {
	if err := flags.Favorites.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse favorites flags")
	}

	app.Sessions.Restore(ctx)

	if *flags.Favorites.toggle != "" {
		result := app.Favorites.ToggleFavorite(ctx, *flags.Favorites.toggle)
		if !result.Success {
			return errors.New(result.Message)
		}
		fmt.Printf("%s\n", result.Message)
	}

	products := app.Favorites.FetchFavorites(ctx)
	if len(products) == 0 {
		fmt.Println("No favorites yet.")

		return nil
	}

	printProducts(products)

	return nil
}

func printProducts(products []entity.Product) {
	for _, product := range products {
		fmt.Printf("%-24s  %-30s  %10.2f  %s\n", product.ID, product.Name, product.Price, product.Category)
	}
}
