package service

import (
	"context"
	"errors"
	"fmt"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"
	"pos-backend/internal/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Membership tier thresholds on lifetime spend (VND).
var (
	silverThreshold   = decimal.NewFromInt(2_000_000)
	goldThreshold     = decimal.NewFromInt(10_000_000)
	platinumThreshold = decimal.NewFromInt(30_000_000)
)

// MembershipLevelFor maps lifetime spend to a tier.
func MembershipLevelFor(totalSpent decimal.Decimal) string {
	switch {
	case totalSpent.GreaterThanOrEqual(platinumThreshold):
		return model.MembershipPlatinum
	case totalSpent.GreaterThanOrEqual(goldThreshold):
		return model.MembershipGold
	case totalSpent.GreaterThanOrEqual(silverThreshold):
		return model.MembershipSilver
	default:
		return model.MembershipBronze
	}
}

// PointAdjustmentRequest moves loyalty points. Points is always
// positive; Type decides the sign.
type PointAdjustmentRequest struct {
	Type      string `json:"type" binding:"required"`
	Points    int    `json:"points" binding:"required"`
	Reference string `json:"reference"`
	Note      string `json:"note"`
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, in validation.CustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, in validation.CustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	GetCustomer(ctx context.Context, id uint) (*model.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*model.Customer, error)
	ListCustomers(ctx context.Context, storeCode string, page, limit int, search string) ([]model.Customer, int64, error)
	AdjustPoints(ctx context.Context, id uint, req PointAdjustmentRequest) (*model.Customer, error)
	ListPointHistory(ctx context.Context, id uint) ([]model.PointTransaction, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
}

func NewCustomerService(customerRepo repository.CustomerRepository, txManager repository.TransactionManager) CustomerService {
	return &customerService{customerRepo: customerRepo, txManager: txManager}
}

func (s *customerService) CreateCustomer(ctx context.Context, in validation.CustomerInput) (*model.Customer, error) {
	customer, verrs := validation.ValidateCustomer(in)
	if verrs != nil {
		return nil, verrs
	}

	if customer.CustomerID == "" {
		code, err := s.nextCustomerCode(ctx)
		if err != nil {
			return nil, err
		}
		customer.CustomerID = code
	} else if existing, err := s.customerRepo.FindByCustomerID(ctx, customer.CustomerID); err == nil && existing != nil {
		return nil, fmt.Errorf("customer code %s already in use", customer.CustomerID)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check customer code: %w", err)
	}

	customer.MembershipLevel = MembershipLevelFor(customer.TotalSpent)

	if err := s.customerRepo.Create(ctx, &customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, in validation.CustomerInput) (*model.Customer, error) {
	existing, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	normalized, verrs := validation.ValidateCustomer(in)
	if verrs != nil {
		return nil, verrs
	}

	existing.Name = normalized.Name
	existing.Phone = normalized.Phone
	existing.Email = normalized.Email
	// Points and spend move only through AdjustPoints and checkout.

	if err := s.customerRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return existing, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("customer not found: %w", err)
	}
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

func (s *customerService) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	return s.customerRepo.FindByPhone(ctx, phone)
}

func (s *customerService) ListCustomers(ctx context.Context, storeCode string, page, limit int, search string) ([]model.Customer, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.customerRepo.List(ctx, storeCode, page, limit, search)
}

// AdjustPoints applies one point movement under a row lock. The balance
// snapshots on the movement row come from the locked read, so the
// history always replays to the stored balance.
func (s *customerService) AdjustPoints(ctx context.Context, id uint, req PointAdjustmentRequest) (*model.Customer, error) {
	if req.Points <= 0 {
		return nil, validation.Errors{{
			Field:   "points",
			Code:    validation.CodeOutOfRange,
			Message: "points must be positive",
		}}
	}

	var updated *model.Customer
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := s.customerRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("customer not found: %w", err)
		}

		delta := req.Points
		switch req.Type {
		case model.PointEarned, model.PointAdjusted:
		case model.PointRedeemed, model.PointExpired:
			delta = -req.Points
		default:
			return validation.Errors{{
				Field:   "type",
				Code:    validation.CodeInvalidEnum,
				Message: fmt.Sprintf("invalid point transaction type %q", req.Type),
			}}
		}

		newBalance := customer.Points + delta
		if newBalance < 0 {
			return fmt.Errorf("insufficient points: balance %d, requested %d", customer.Points, req.Points)
		}

		pt, verrs := validation.ValidatePointTransaction(validation.PointTransactionInput{
			CustomerRef:     customer.ID,
			Type:            req.Type,
			Points:          delta,
			PreviousBalance: customer.Points,
			NewBalance:      newBalance,
			Reference:       req.Reference,
			Note:            req.Note,
			StoreCode:       customer.StoreCode,
		})
		if verrs != nil {
			return verrs
		}

		customer.Points = newBalance
		if err := s.customerRepo.Update(txCtx, customer); err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		if err := s.customerRepo.CreatePointTransaction(txCtx, &pt); err != nil {
			return fmt.Errorf("failed to record point movement: %w", err)
		}

		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *customerService) ListPointHistory(ctx context.Context, id uint) ([]model.PointTransaction, error) {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	return s.customerRepo.ListPointTransactions(ctx, id)
}

func (s *customerService) nextCustomerCode(ctx context.Context) (string, error) {
	// Phone-less walk-ins still need a stable code; derive from count.
	_, total, err := s.customerRepo.List(ctx, "", 1, 1, "")
	if err != nil {
		return "", fmt.Errorf("failed to generate customer code: %w", err)
	}
	return fmt.Sprintf("CUS-%06d", total+1), nil
}
