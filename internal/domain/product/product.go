package product

import (
	"fmt"
	"time"

	"gymstack/internal/shared/id"
)

// Product is an org-scoped sellable item (supplements, passes, merch).
type Product struct {
	id             uint
	sid            string
	organizationID uint
	name           string
	description    string
	price          uint64
	currency       string
	stock          int
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProduct(organizationID uint, name, description string, price uint64, currency string, stock int) (*Product, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	now := time.Now()
	return &Product{
		sid:            id.MustGenerateWithPrefix(id.PrefixProduct, id.DefaultLength),
		organizationID: organizationID,
		name:           name,
		description:    description,
		price:          price,
		currency:       currency,
		stock:          stock,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructProduct(
	productID uint,
	sid string,
	organizationID uint,
	name, description string,
	price uint64,
	currency string,
	stock int,
	version int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}

	return &Product{
		id:             productID,
		sid:            sid,
		organizationID: organizationID,
		name:           name,
		description:    description,
		price:          price,
		currency:       currency,
		stock:          stock,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Product) ID() uint             { return p.id }
func (p *Product) SID() string          { return p.sid }
func (p *Product) OrganizationID() uint { return p.organizationID }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() uint64        { return p.price }
func (p *Product) Currency() string     { return p.currency }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) Version() int         { return p.version }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) SetID(productID uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if productID == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = productID
	return nil
}

// Update patches mutable product fields. Nil pointers leave values unchanged.
func (p *Product) Update(name, description string, price *uint64, stock *int) error {
	if name != "" {
		p.name = name
	}
	if description != "" {
		p.description = description
	}
	if price != nil {
		p.price = *price
	}
	if stock != nil {
		if *stock < 0 {
			return fmt.Errorf("stock cannot be negative")
		}
		p.stock = *stock
	}
	p.touch()
	return nil
}

// AdjustStock applies a delta to the stock count.
func (p *Product) AdjustStock(delta int) error {
	if p.stock+delta < 0 {
		return fmt.Errorf("insufficient stock")
	}
	p.stock += delta
	p.touch()
	return nil
}

func (p *Product) touch() {
	p.updatedAt = time.Now()
	p.version++
}
