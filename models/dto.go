package models

import (
	"time"
)

// Transfer objects returned by the API. Each entity has exactly one
// conversion function so the mapping stays statically checkable.

// ProductDTO is the API representation of a catalog product
type ProductDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// CustomerDTO is the API representation of an order's customer record
type CustomerDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UserSummaryDTO is the API representation of a user account, without
// the password hash
type UserSummaryDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// OrderDetailDTO is one order line with its derived total
type OrderDetailDTO struct {
	ID              uint    `json:"id"`
	ProductID       uint    `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductImageURL string  `json:"productImageUrl,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	TotalPrice      float64 `json:"totalPrice"`
}

// OrderDTO is the full API representation of an order
type OrderDTO struct {
	ID            uint             `json:"id"`
	OrderDate     time.Time        `json:"orderDate"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Customer      *CustomerDTO     `json:"customer,omitempty"`
	UserAccount   *UserSummaryDTO  `json:"userAccount,omitempty"`
	OrderDetails  []OrderDetailDTO `json:"orderDetails"`
	TotalAmount   float64          `json:"totalAmount"`
}

// ToProductDTO converts a product entity to its transfer object
func ToProductDTO(p *Product) ProductDTO {
	dto := ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Description: p.Description,
		Category:    p.Category,
	}
	if p.ImageURL != nil {
		dto.ImageURL = *p.ImageURL
	}
	return dto
}

// ToCustomerDTO converts a customer entity to its transfer object
func ToCustomerDTO(c *Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

// ToUserSummaryDTO converts a user account to its transfer object
func ToUserSummaryDTO(u *User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Address:  u.Address,
	}
}

// ToOrderDetailDTO converts an order line to its transfer object.
// TotalPrice is always recomputed as quantity × unitPrice rather than stored.
func ToOrderDetailDTO(d *OrderDetail) OrderDetailDTO {
	dto := OrderDetailDTO{
		ID:        d.ID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
	}
	if d.Product.ID != 0 {
		dto.ProductName = d.Product.Name
		if d.Product.ImageURL != nil {
			dto.ProductImageURL = *d.Product.ImageURL
		}
	}
	dto.TotalPrice = float64(d.Quantity) * d.UnitPrice
	return dto
}

// ToOrderDTO converts an order entity with its loaded associations to the
// transfer object returned by the API
func ToOrderDTO(o *Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID,
		OrderDate:     o.OrderDate,
		Status:        o.Status,
		Notes:         o.Notes,
		PaymentMethod: o.PaymentMethod,
		OrderDetails:  make([]OrderDetailDTO, 0, len(o.OrderDetails)),
	}

	if o.Customer.ID != 0 {
		customer := ToCustomerDTO(&o.Customer)
		dto.Customer = &customer
	}
	if o.User.ID != 0 {
		user := ToUserSummaryDTO(&o.User)
		dto.UserAccount = &user
	}

	for i := range o.OrderDetails {
		line := ToOrderDetailDTO(&o.OrderDetails[i])
		dto.OrderDetails = append(dto.OrderDetails, line)
		dto.TotalAmount += line.TotalPrice
	}

	return dto
}
