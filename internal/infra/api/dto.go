package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"medimart/internal/domain/entity"
)

// The server's response shapes are loose: ids appear as "_id" or "id",
// numbers occasionally arrive quoted, collections sit at the top level or
// one or two envelopes deep, and references may or may not be populated.
// The types below absorb all of that and fail closed: a shape mismatch maps
// to a zero value or a dropped element, never an error surfaced to the
// customer.

// looseFloat decodes a JSON number or a quoted number; anything else is zero.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*f = 0

		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*f = 0

			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0

			return nil
		}
		*f = looseFloat(parsed)

		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		*f = 0

		return nil
	}
	*f = looseFloat(n)

	return nil
}

// looseTime decodes an RFC3339 timestamp; anything else is the zero time.
type looseTime time.Time

func (t *looseTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(bytes.TrimSpace(data), &s); err != nil {
		*t = looseTime(time.Time{})

		return nil
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		*t = looseTime(time.Time{})

		return nil
	}
	*t = looseTime(parsed)

	return nil
}

// recordID decodes from either "_id" or "id".
type recordID struct {
	Mongo string `json:"_id"`
	Plain string `json:"id"`
}

func (r recordID) value() string {
	if r.Mongo != "" {
		return r.Mongo
	}

	return r.Plain
}

// --- users ---

type profileDTO struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Gender      string       `json:"gender"`
	DateOfBirth string       `json:"dateOfBirth"`
	Addresses   []addressDTO `json:"addresses"`
}

type userDTO struct {
	recordID
	Username string      `json:"username"`
	Role     string      `json:"role"`
	Profile  *profileDTO `json:"profile"`
}

func (d userDTO) toEntity() *entity.User {
	profile := entity.Profile{}
	if d.Profile != nil {
		profile = entity.Profile{
			Name:        d.Profile.Name,
			Email:       d.Profile.Email,
			Phone:       d.Profile.Phone,
			Gender:      d.Profile.Gender,
			DateOfBirth: d.Profile.DateOfBirth,
			Addresses:   mapAddresses(d.Profile.Addresses),
		}
	}

	return entity.NewUser(d.value(), d.Username, d.Role, profile)
}

type loginEnvelope struct {
	User    *userDTO `json:"user"`
	Token   string   `json:"token"`
	Message string   `json:"message"`
}

// --- addresses ---

type addressDTO struct {
	recordID
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressType string `json:"addressType"`
	IsDefault   bool   `json:"isDefault"`
	City        string `json:"city"`
	District    string `json:"district"`
	Ward        string `json:"ward"`
	Address     string `json:"address"`
}

func (d addressDTO) toEntity() entity.Address {
	return entity.Address{
		ID:          d.value(),
		Name:        d.Name,
		Phone:       d.Phone,
		AddressType: d.AddressType,
		IsDefault:   d.IsDefault,
		City:        d.City,
		District:    d.District,
		Ward:        d.Ward,
		Address:     d.Address,
	}
}

func mapAddresses(dtos []addressDTO) []entity.Address {
	addresses := make([]entity.Address, 0, len(dtos))
	for _, dto := range dtos {
		addresses = append(addresses, dto.toEntity())
	}

	return addresses
}

// addressListEnvelope accepts {"addresses": [...]}, {"data": [...]} or a
// bare array.
type addressListEnvelope struct {
	Addresses []addressDTO `json:"addresses"`
	Data      []addressDTO `json:"data"`
}

func decodeAddressList(body []byte) []entity.Address {
	var envelope addressListEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Addresses) > 0 {
			return mapAddresses(envelope.Addresses)
		}
		if len(envelope.Data) > 0 {
			return mapAddresses(envelope.Data)
		}
	}

	var bare []addressDTO
	if err := json.Unmarshal(body, &bare); err == nil {
		return mapAddresses(bare)
	}

	return []entity.Address{}
}

// --- products ---

type productDTO struct {
	recordID
	Name        string     `json:"name"`
	Price       looseFloat `json:"price"`
	Image       string     `json:"image"`
	Images      []string   `json:"images"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Brand       string     `json:"brand"`
	Stock       int        `json:"stock"`
	Rating      looseFloat `json:"rating"`
}

func (d productDTO) toEntity() entity.Product {
	images := d.Images
	if len(images) == 0 && d.Image != "" {
		images = []string{d.Image}
	}

	return entity.Product{
		ID:          d.value(),
		Name:        d.Name,
		Price:       float64(d.Price),
		Images:      images,
		Description: d.Description,
		Category:    d.Category,
		Brand:       d.Brand,
		Stock:       d.Stock,
		Rating:      float64(d.Rating),
	}
}

func mapProducts(dtos []productDTO) []entity.Product {
	products := make([]entity.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, dto.toEntity())
	}

	return products
}

// productListEnvelope accepts {"products": [...]}, {"data": {"products":
// [...]}} (any nesting depth), {"favorites": [...]} or a bare array.
type productListEnvelope struct {
	Products  []productDTO         `json:"products"`
	Favorites []productDTO         `json:"favorites"`
	Data      *productListEnvelope `json:"data"`
}

func (e *productListEnvelope) flatten() []productDTO {
	for current := e; current != nil; current = current.Data {
		if len(current.Products) > 0 {
			return current.Products
		}
		if len(current.Favorites) > 0 {
			return current.Favorites
		}
	}

	return nil
}

func decodeProductList(body []byte) []entity.Product {
	var envelope productListEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if dtos := envelope.flatten(); len(dtos) > 0 {
			return mapProducts(dtos)
		}
	}

	var bare []productDTO
	if err := json.Unmarshal(body, &bare); err == nil {
		return mapProducts(bare)
	}

	return []entity.Product{}
}

// productEnvelope accepts {"product": {...}} or a bare object.
type productEnvelope struct {
	Product *productDTO `json:"product"`
}

// productRef is a product reference that may arrive populated (an object),
// as a raw id string, or null when the product has been deleted. A raw id
// keeps the id but counts as unpopulated; null marks the reference dead.
type productRef struct {
	populated bool
	id        string
	product   productDTO
}

func (r *productRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		// A bare reference carries the id and nothing else.
		_ = json.Unmarshal(trimmed, &r.id)
		r.populated = false

		return nil
	}
	if len(trimmed) == 0 || trimmed[0] != '{' {
		r.populated = false

		return nil
	}

	var dto productDTO
	if err := json.Unmarshal(trimmed, &dto); err != nil {
		r.populated = false

		return nil
	}

	r.populated = true
	r.id = dto.value()
	r.product = dto

	return nil
}

// --- cart ---

type cartItemDTO struct {
	recordID
	Quantity int        `json:"quantity"`
	Product  productRef `json:"productId"`
}

type cartEnvelope struct {
	Items []cartItemDTO `json:"items"`
	Cart  *cartEnvelope `json:"cart"`
	Data  *cartEnvelope `json:"data"`
}

func (e *cartEnvelope) flatten() []cartItemDTO {
	for current := e; current != nil; {
		if len(current.Items) > 0 {
			return current.Items
		}
		switch {
		case current.Cart != nil:
			current = current.Cart
		case current.Data != nil:
			current = current.Data
		default:
			current = nil
		}
	}

	return nil
}

// mapCartLines converts cart item DTOs, dropping lines whose product
// reference did not resolve to an object and lines without a positive
// quantity. The server never intentionally returns either, but a deleted
// product must degrade to a shorter cart, not a crash.
func mapCartLines(dtos []cartItemDTO) []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(dtos))
	for _, dto := range dtos {
		if !dto.Product.populated || dto.Quantity < 1 {
			continue
		}

		product := dto.Product.product.toEntity()
		lines = append(lines, entity.CartLine{
			LineID:    dto.value(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image(),
			Quantity:  dto.Quantity,
		})
	}

	return lines
}

// --- orders ---

type orderItemDTO struct {
	Product   productRef `json:"productId"`
	Quantity  int        `json:"quantity"`
	UnitPrice looseFloat `json:"unitPrice"`
	Price     looseFloat `json:"price"`
}

type orderDTO struct {
	recordID
	Status          string         `json:"status"`
	Items           []orderItemDTO `json:"items"`
	ShippingAddress string         `json:"shippingAddress"`
	RecipientName   string         `json:"recipientName"`
	Phone           string         `json:"phone"`
	PaymentMethod   string         `json:"paymentMethod"`
	Note            string         `json:"note"`
	CancelReason    string         `json:"cancelReason"`
	Total           looseFloat     `json:"total"`
	TotalAmount     looseFloat     `json:"totalAmount"`
	CreatedAt       looseTime      `json:"createdAt"`
}

func (d orderDTO) toEntity() entity.Order {
	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		unitPrice := float64(item.UnitPrice)
		if unitPrice == 0 {
			unitPrice = float64(item.Price)
		}

		mapped := entity.OrderItem{
			ProductID: item.Product.id,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		}
		if item.Product.populated {
			mapped.Name = item.Product.product.Name
		}
		items = append(items, mapped)
	}

	total := float64(d.Total)
	if total == 0 {
		total = float64(d.TotalAmount)
	}

	status := entity.OrderStatus(d.Status)
	if !status.IsValid() {
		status = entity.OrderPending
	}

	return entity.Order{
		ID:              d.value(),
		Status:          status,
		Items:           items,
		ShippingAddress: d.ShippingAddress,
		RecipientName:   d.RecipientName,
		Phone:           d.Phone,
		PaymentMethod:   d.PaymentMethod,
		Note:            d.Note,
		CancelReason:    d.CancelReason,
		Total:           total,
		CreatedAt:       time.Time(d.CreatedAt),
	}
}

type orderListEnvelope struct {
	Orders []orderDTO         `json:"orders"`
	Data   *orderListEnvelope `json:"data"`
}

func decodeOrderList(body []byte) []entity.Order {
	var dtos []orderDTO

	var envelope orderListEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		for current := &envelope; current != nil; current = current.Data {
			if len(current.Orders) > 0 {
				dtos = current.Orders

				break
			}
		}
	}

	if dtos == nil {
		if err := json.Unmarshal(body, &dtos); err != nil {
			return []entity.Order{}
		}
	}

	orders := make([]entity.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, dto.toEntity())
	}

	return orders
}

// orderEnvelope accepts {"order": {...}} or a bare object.
type orderEnvelope struct {
	Order *orderDTO `json:"order"`
}

// --- payments ---

type paymentLinkEnvelope struct {
	CheckoutURL string               `json:"checkoutUrl"`
	PaymentURL  string               `json:"paymentUrl"`
	Data        *paymentLinkEnvelope `json:"data"`
}

func (e *paymentLinkEnvelope) url() string {
	for current := e; current != nil; current = current.Data {
		if current.CheckoutURL != "" {
			return current.CheckoutURL
		}
		if current.PaymentURL != "" {
			return current.PaymentURL
		}
	}

	return ""
}

// --- favorites ---

type toggleEnvelope struct {
	Favorited  *bool  `json:"favorited"`
	IsFavorite *bool  `json:"isFavorite"`
	Message    string `json:"message"`
}

func (e toggleEnvelope) state() bool {
	if e.Favorited != nil {
		return *e.Favorited
	}
	if e.IsFavorite != nil {
		return *e.IsFavorite
	}

	return false
}

// --- messages ---

type messageEnvelope struct {
	Message string `json:"message"`
}
