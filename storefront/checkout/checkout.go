// Package checkout drives order submission and wallet payment for the
// storefront.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ishaan-Rai09/coffee-shop/models"
	"github.com/Ishaan-Rai09/coffee-shop/storefront/cart"
	"github.com/Ishaan-Rai09/coffee-shop/storefront/client"
	"github.com/Ishaan-Rai09/coffee-shop/storefront/session"
	"github.com/Ishaan-Rai09/coffee-shop/storefront/wallet"
)

// State is the checkout flow position:
// Idle → Submitting → {OrderCreated → WalletConnecting →
// WalletConfirming → Paid} | Failed. Failed permits a retry.
type State string

const (
	StateIdle             State = "idle"
	StateSubmitting       State = "submitting"
	StateOrderCreated     State = "order_created"
	StateWalletConnecting State = "wallet_connecting"
	StateWalletConfirming State = "wallet_confirming"
	StatePaid             State = "paid"
	StateFailed           State = "failed"
)

// PaymentMethodWallet is the payment method requiring an external
// wallet confirmation.
const PaymentMethodWallet = "MetaMask"

var (
	ErrEmptyCart  = errors.New("checkout: cart is empty")
	ErrNoOrder    = errors.New("checkout: no order to pay for")
	ErrNoProvider = errors.New("checkout: wallet provider is not available")
)

// Flow runs one checkout: a cart snapshot submitted as an order,
// optionally followed by a wallet payment. Errors are surfaced to the
// caller and never retried automatically.
type Flow struct {
	api      *client.Client
	cart     *cart.Store
	sessions session.Store
	provider wallet.Provider
	network  wallet.Network
	payTo    string
	pricing  PricingOptions

	state   State
	order   *models.Order
	account string
}

type Option func(*Flow)

// WithProvider wires the wallet provider used for the MetaMask payment
// method.
func WithProvider(p wallet.Provider, network wallet.Network, payTo string) Option {
	return func(f *Flow) {
		f.provider = p
		f.network = network
		f.payTo = payTo
	}
}

// WithPricing overrides the default checkout pricing preset.
func WithPricing(opts PricingOptions) Option {
	return func(f *Flow) {
		f.pricing = opts
	}
}

func NewFlow(api *client.Client, cartStore *cart.Store, sessions session.Store, opts ...Option) *Flow {
	f := &Flow{
		api:      api,
		cart:     cartStore,
		sessions: sessions,
		network:  wallet.TelosTestnet,
		pricing:  CheckoutPricing,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) State() State { return f.state }

// Order returns the created order, if submission has succeeded.
func (f *Flow) Order() *models.Order { return f.order }

func (f *Flow) fail(err error) error {
	f.state = StateFailed
	return err
}

// Submit validates the cart, prices it, and creates the order. The
// order items are a snapshot of the cart at this moment; later cart
// mutations do not touch them. For non-wallet payment methods the cart
// is cleared immediately; wallet methods keep it until payment lands.
func (f *Flow) Submit(ctx context.Context, address models.ShippingAddress, paymentMethod string) (*models.Order, error) {
	if f.state != StateIdle && f.state != StateFailed {
		return nil, fmt.Errorf("checkout: cannot submit from state %q", f.state)
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return nil, f.fail(ErrEmptyCart)
	}

	f.state = StateSubmitting

	orderItems := make([]client.OrderItemInput, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, client.OrderItemInput{
			Name:    item.Name,
			Qty:     item.Quantity,
			Image:   item.Image,
			Price:   item.Price,
			Product: item.ID,
		})
	}

	quote := Price(f.cart.TotalAmount(), f.pricing)

	order, err := f.api.CreateOrder(ctx, client.OrderRequest{
		OrderItems:      orderItems,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		ItemsPrice:      quote.ItemsPrice,
		TaxPrice:        quote.TaxPrice,
		ShippingPrice:   quote.ShippingPrice,
		TotalPrice:      quote.TotalPrice,
	})
	if err != nil {
		return nil, f.fail(err)
	}

	f.order = order
	f.state = StateOrderCreated

	if paymentMethod != PaymentMethodWallet {
		f.cart.Clear()
		if err := f.cart.Save(ctx, f.sessions); err != nil {
			return order, err
		}
	}
	return order, nil
}

// Pay connects the wallet, ensures the expected chain, sends the value
// transfer, and records the transaction hash as the payment
// confirmation id. On success the cart is cleared.
func (f *Flow) Pay(ctx context.Context) (*models.Order, error) {
	if f.order == nil {
		return nil, f.fail(ErrNoOrder)
	}
	if f.provider == nil {
		return nil, f.fail(ErrNoProvider)
	}

	f.state = StateWalletConnecting
	if err := f.connect(ctx); err != nil {
		return nil, f.fail(err)
	}
	if err := f.ensureNetwork(ctx); err != nil {
		return nil, f.fail(err)
	}

	f.state = StateWalletConfirming
	tx := wallet.Transaction{
		From:  f.account,
		To:    f.payTo,
		Value: wallet.ToWeiHex(f.order.TotalPrice),
		Gas:   "0x5208", // 21000 gas limit
	}
	result, err := f.provider.Request(ctx, "eth_sendTransaction", tx)
	if err != nil {
		return nil, f.fail(err)
	}
	txHash, ok := result.(string)
	if !ok || txHash == "" {
		return nil, f.fail(errors.New("checkout: provider returned no transaction hash"))
	}

	confirmation := client.PaymentConfirmation{
		ID:         txHash,
		Status:     "COMPLETED",
		UpdateTime: time.Now().UTC().Format(time.RFC3339),
	}
	confirmation.Payer.EmailAddress = f.payerEmail(ctx)

	order, err := f.api.PayOrder(ctx, f.order.ID, confirmation)
	if err != nil {
		return nil, f.fail(err)
	}

	f.order = order
	f.cart.Clear()
	if err := f.cart.Save(ctx, f.sessions); err != nil {
		return order, err
	}
	f.state = StatePaid
	return order, nil
}

func (f *Flow) connect(ctx context.Context) error {
	result, err := f.provider.Request(ctx, "eth_requestAccounts")
	if err != nil {
		return err
	}
	accounts, ok := result.([]string)
	if !ok || len(accounts) == 0 {
		return errors.New("checkout: wallet returned no accounts")
	}
	f.account = accounts[0]
	return nil
}

// ensureNetwork switches the provider to the expected chain, adding it
// first when the provider does not know it (code 4902).
func (f *Flow) ensureNetwork(ctx context.Context) error {
	result, err := f.provider.Request(ctx, "eth_chainId")
	if err != nil {
		return err
	}
	if chainID, _ := result.(string); chainID == f.network.ChainID {
		return nil
	}

	_, err = f.provider.Request(ctx, "wallet_switchEthereumChain",
		map[string]string{"chainId": f.network.ChainID})
	if err == nil {
		return nil
	}

	var provErr *wallet.ProviderError
	if errors.As(err, &provErr) && provErr.Code == wallet.CodeUnrecognizedChain {
		if _, addErr := f.provider.Request(ctx, "wallet_addEthereumChain", f.network); addErr != nil {
			return addErr
		}
		return nil
	}
	return err
}

func (f *Flow) payerEmail(ctx context.Context) string {
	info, err := session.LoadUserInfo(ctx, f.sessions)
	if err == nil && info != nil && info.Email != "" {
		return info.Email
	}
	return f.account
}
