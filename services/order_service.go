package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/salem2025/sport-store-api/models"
)

// CreateOrderInput is the plain-data request for placing an order
type CreateOrderInput struct {
	Notes         string
	PaymentMethod string
	Items         []OrderItemInput
}

// OrderItemInput is one requested (product, quantity) pair
type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

// OrderService orchestrates the order lifecycle: creation with stock
// reservation, cancellation with stock restore, status transitions and
// access-checked queries. Every mutating operation runs inside a single
// database transaction.
type OrderService struct {
	db  *gorm.DB
	log *logrus.Logger
}

// NewOrderService creates an order service bound to the given database
func NewOrderService(db *gorm.DB, log *logrus.Logger) *OrderService {
	return &OrderService{db: db, log: log}
}

// CreateOrderForUser places a new order for the given user.
//
// The customer record is resolved (or lazily created) by the user's email,
// each line captures the product's current price, and stock is taken with a
// conditional decrement so two concurrent orders cannot jointly oversell.
// Any failure rolls the whole operation back, including decrements already
// applied for earlier lines.
func (s *OrderService) CreateOrderForUser(user *models.User, input CreateOrderInput) (*models.OrderDTO, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	s.log.Infof("Creating order for user %q with %d item(s)", user.Username, len(input.Items))

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer, err := s.findOrCreateCustomer(tx, user)
		if err != nil {
			return err
		}

		order := models.Order{
			OrderDate:     time.Now(),
			Status:        models.StatusPending,
			Notes:         input.Notes,
			PaymentMethod: input.PaymentMethod,
			CustomerID:    customer.ID,
			UserID:        user.ID,
		}

		for _, item := range input.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrProductNotFound, item.ProductID)
				}
				return fmt.Errorf("failed to load product %d: %w", item.ProductID, err)
			}

			// Atomic check-and-decrement: the WHERE clause guards the
			// stock level so a stale read cannot oversell.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to reserve stock for product %d: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{
					ProductName: product.Name,
					Required:    item.Quantity,
					Available:   product.Quantity,
				}
			}

			order.OrderDetails = append(order.OrderDetails, models.OrderDetail{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price, // price captured at order time
			})
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Order %d created successfully", orderID)
	return s.GetOrderByID(orderID)
}

// CancelOrderByUser cancels a PENDING order owned by the given user and
// restores every line's quantity to its product. Only the owning user may
// cancel through this path; admins use the status-update operation.
func (s *OrderService) CancelOrderByUser(orderID uint, user *models.User) (*models.OrderDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Preload("OrderDetails").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to load order %d: %w", orderID, err)
		}

		if order.UserID != user.ID {
			return ErrNotOrderOwner
		}
		if order.Status != models.StatusPending {
			return ErrOrderNotCancellable
		}

		for _, detail := range order.OrderDetails {
			res := tx.Model(&models.Product{}).
				Where("id = ?", detail.ProductID).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", detail.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to restore stock for product %d: %w", detail.ProductID, res.Error)
			}
		}

		if err := tx.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Order %d cancelled by user %q, stock restored", orderID, user.Username)
	return s.GetOrderByID(orderID)
}

// UpdateOrderStatus moves an order to a new lifecycle status. The status
// must belong to the closed status set and the move must be allowed by the
// transition table; free-form strings are rejected.
func (s *OrderService) UpdateOrderStatus(orderID uint, status string) (*models.OrderDTO, error) {
	normalized := models.NormalizeStatus(status)
	if !models.IsValidStatus(normalized) {
		return nil, &InvalidStatusError{Status: status}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to load order %d: %w", orderID, err)
		}

		if !models.CanTransition(order.Status, normalized) {
			return &InvalidTransitionError{From: order.Status, To: normalized}
		}

		return tx.Model(&order).Update("status", normalized).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("Order %d status changed to %s", orderID, normalized)
	return s.GetOrderByID(orderID)
}

// DeleteOrder removes an order and its lines, reporting whether a row
// existed. PENDING orders are refused because they still hold reserved
// stock; cancelling first keeps stock accounting consistent.
func (s *OrderService) DeleteOrder(orderID uint) (bool, error) {
	existed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load order %d: %w", orderID, err)
		}

		if order.Status == models.StatusPending {
			return ErrOrderHoldsStock
		}

		// Lines are owned by the order and go with it
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderDetail{}).Error; err != nil {
			return fmt.Errorf("failed to delete order lines: %w", err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		existed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if existed {
		s.log.Infof("Order %d deleted", orderID)
	}
	return existed, nil
}

// GetAllOrders returns every order, newest first
func (s *OrderService) GetAllOrders() ([]models.OrderDTO, error) {
	var orders []models.Order
	if err := s.preloaded(s.db).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return s.toDTOs(orders), nil
}

// GetOrdersByStatus returns orders matching a status, case-insensitively
func (s *OrderService) GetOrdersByStatus(status string) ([]models.OrderDTO, error) {
	var orders []models.Order
	err := s.preloaded(s.db).
		Where("UPPER(status) = ?", models.NormalizeStatus(status)).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return s.toDTOs(orders), nil
}

// GetOrderByID fetches a single order, or nil (not an error) when absent
// so callers can branch without error handling.
func (s *OrderService) GetOrderByID(orderID uint) (*models.OrderDTO, error) {
	var order models.Order
	if err := s.preloaded(s.db).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	dto := s.toDTO(&order)
	return &dto, nil
}

// GetOrdersByUser returns every order placed by the given user
func (s *OrderService) GetOrdersByUser(userID uint) ([]models.OrderDTO, error) {
	var orders []models.Order
	err := s.preloaded(s.db).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return s.toDTOs(orders), nil
}

// GetOrdersByUserAndStatus returns a user's orders filtered by status
func (s *OrderService) GetOrdersByUserAndStatus(userID uint, status string) ([]models.OrderDTO, error) {
	var orders []models.Order
	err := s.preloaded(s.db).
		Where("user_id = ? AND UPPER(status) = ?", userID, models.NormalizeStatus(status)).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return s.toDTOs(orders), nil
}

// CanUserAccessOrder reports whether the requester may read the order.
// Admins may read everything; other users only their own orders. A missing
// order fails closed.
func (s *OrderService) CanUserAccessOrder(orderID uint, user *models.User, role string) bool {
	if models.IsAdminRole(role) {
		return true
	}
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return false
	}
	return order.UserID == user.ID
}

// findOrCreateCustomer resolves the customer record for a user by email,
// creating one from the user's contact details on first order.
func (s *OrderService) findOrCreateCustomer(tx *gorm.DB, user *models.User) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("email = ?", user.Email).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	s.log.Infof("No customer record for %q, creating one", user.Email)
	customer = models.Customer{
		Name:    user.FullName,
		Phone:   user.Phone,
		Email:   user.Email,
		Address: user.Address,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// preloaded attaches the association preloads every order query needs
func (s *OrderService) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("User").
		Preload("OrderDetails").
		Preload("OrderDetails.Product")
}

func (s *OrderService) toDTO(order *models.Order) models.OrderDTO {
	for i := range order.OrderDetails {
		ResolveProductImageURL(&order.OrderDetails[i].Product)
	}
	return models.ToOrderDTO(order)
}

func (s *OrderService) toDTOs(orders []models.Order) []models.OrderDTO {
	dtos := make([]models.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, s.toDTO(&orders[i]))
	}
	return dtos
}
