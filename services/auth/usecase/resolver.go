package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/internal/utils"
	"github.com/shopauth/shopauth/services/auth"
)

const (
	// loginEmailDomain forms the synthetic handle that uniquely derives
	// from a normalized phone and survives Shopify's inconsistent phone
	// indexing
	loginEmailDomain = "whatsapp.login"

	// customerTag marks customers created by this auth flow
	customerTag = "whatsapp_auth"
)

// loginEmail derives the stable synthetic handle for a normalized phone
func loginEmail(phone string) string {
	return fmt.Sprintf("%s@%s", phone, loginEmailDomain)
}

// resolutionStrategy is one step of the customer resolution policy. A
// strategy returns (nil, nil) for a clean miss, letting the next strategy
// run; any error aborts the chain.
type resolutionStrategy struct {
	name string
	find func(ctx context.Context, phone string) (*models.Customer, error)
}

// resolveCustomer produces exactly one customer identity for a verified
// normalized phone, idempotently across repeated logins. Shopify offers no
// atomic find-or-create, so resolution is an ordered list of strategies
// tried in turn, short-circuiting on the first match. The creation step
// tolerates duplicate-phone conflicts by falling through to a listing scan:
// search-before-create is not atomic, and a race or prior partial state can
// leave a customer the earlier searches missed.
func (u *AuthUC) resolveCustomer(ctx context.Context, phone string) (*models.Customer, error) {
	strategies := []resolutionStrategy{
		{name: "search_by_login_email", find: u.findByLoginEmail},
		{name: "search_by_phone", find: u.findByPhone},
		{name: "create_customer", find: u.createCustomer},
		{name: "list_and_match", find: u.findInListing},
	}

	for _, strategy := range strategies {
		customer, err := strategy.find(ctx, phone)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			logger.Info("Resolved customer",
				logger.String("strategy", strategy.name),
				logger.Int64("customer_id", customer.ID),
				logger.String("phone", phone))
			return customer, nil
		}
	}

	logger.Error("Customer resolution exhausted all strategies",
		logger.String("phone", phone))

	return nil, auth.ErrCustomerResolutionFailed
}

// findByLoginEmail looks the customer up by the synthetic login email
func (u *AuthUC) findByLoginEmail(ctx context.Context, phone string) (*models.Customer, error) {
	customers, err := u.commerceGW.SearchCustomers(ctx, "email:"+loginEmail(phone))
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, nil
	}
	return &customers[0], nil
}

// findByPhone looks the customer up by the phone field, trying the
// leading-"+" form then the bare-digits form. Shopify may index either.
func (u *AuthUC) findByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	for _, form := range []string{utils.E164Phone(phone), phone} {
		customers, err := u.commerceGW.SearchCustomers(ctx, "phone:"+form)
		if err != nil {
			return nil, err
		}
		if len(customers) > 0 {
			return &customers[0], nil
		}
	}
	return nil, nil
}

// createCustomer requests creation of a new customer tagged as originating
// from this flow. A duplicate-phone conflict is treated as a miss so the
// listing fallback can locate the existing record.
func (u *AuthUC) createCustomer(ctx context.Context, phone string) (*models.Customer, error) {
	customer, err := u.commerceGW.CreateCustomer(ctx, &models.CustomerInput{
		Email: loginEmail(phone),
		Phone: utils.E164Phone(phone),
		Tags:  customerTag,
	})
	if err != nil {
		if errors.Is(err, auth.ErrPhoneTaken) {
			logger.Warn("Phone already claimed, falling back to listing",
				logger.String("phone", phone))
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

// findInListing scans the customer listing for a phone match in either form
func (u *AuthUC) findInListing(ctx context.Context, phone string) (*models.Customer, error) {
	customers, err := u.commerceGW.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	plusForm := utils.E164Phone(phone)
	for i := range customers {
		if customers[i].Phone == plusForm || customers[i].Phone == phone {
			return &customers[i], nil
		}
	}

	return nil, nil
}
