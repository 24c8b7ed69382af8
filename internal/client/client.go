// Package client implements the resource accessors behind the public
// fakturoid.Client interface: the generic collection accessor, the singleton
// loaders, and the event invokers.
package client

import (
	"fmt"

	"github.com/fakturoid-community/fakturoid-go/internal/auth"
	"github.com/fakturoid-community/fakturoid-go/internal/http"
	"github.com/fakturoid-community/fakturoid-go/pkg/fakturoid"
	"github.com/go-playground/validator/v10"
)

// Client implements fakturoid.Client. All accessors share one HTTP session
// and one token manager.
type Client struct {
	httpClient   *http.Client
	tokenManager *auth.ClientCredentialsManager
	session      fakturoid.RouteParams

	subjects       *CollectionClient[fakturoid.Subject, *fakturoid.Subject]
	invoices       *CollectionClient[fakturoid.Invoice, *fakturoid.Invoice]
	expenses       *CollectionClient[fakturoid.Expense, *fakturoid.Expense]
	users          *CollectionClient[fakturoid.User, *fakturoid.User]
	bankAccounts   *CollectionClient[fakturoid.BankAccount, *fakturoid.BankAccount]
	inventoryItems *CollectionClient[fakturoid.InventoryItem, *fakturoid.InventoryItem]
	generators     *CollectionClient[fakturoid.Generator, *fakturoid.Generator]

	account     *LoadableClient[fakturoid.Account, *fakturoid.Account]
	currentUser *LoadableClient[fakturoid.User, *fakturoid.User]

	invoiceEvents *EventsClient[fakturoid.InvoiceAction]
	expenseEvents *EventsClient[fakturoid.LockableAction]
}

// New creates the aggregate client from a validated config. The base URL and
// user agent must already be normalized by the caller.
func New(config *fakturoid.Config) (*Client, error) {
	if config == nil {
		return nil, fakturoid.ErrConfigRequired
	}

	if config.Slug == "" {
		return nil, fakturoid.ErrSlugRequired
	}

	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fakturoid.ErrClientCredentialsRequired
	}

	tokenManager, err := auth.NewClientCredentialsManager(
		config.BaseURL+"/oauth/token", config.ClientID, config.ClientSecret, config.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("creating token manager: %w", err)
	}

	opts := []http.Option{
		http.WithUserAgent(config.UserAgent),
		http.WithLogger(config.Logger),
		http.WithDebug(config.Debug),
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, opts...)
	validate := validator.New()
	session := fakturoid.RouteParams{"slug": config.Slug}

	c := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		session:      session,
	}

	c.subjects = NewCollectionClient[fakturoid.Subject](httpClient, validate, session, "subjects")
	c.invoices = NewCollectionClient[fakturoid.Invoice](httpClient, validate, session, "invoices")
	c.expenses = NewCollectionClient[fakturoid.Expense](httpClient, validate, session, "expenses")
	c.users = NewCollectionClient[fakturoid.User](httpClient, validate, session, "users")
	c.bankAccounts = NewCollectionClient[fakturoid.BankAccount](httpClient, validate, session, "bank_accounts")
	c.inventoryItems = NewCollectionClient[fakturoid.InventoryItem](httpClient, validate, session, "inventory_items")
	c.generators = NewCollectionClient[fakturoid.Generator](httpClient, validate, session, "generators")

	c.account = NewLoadableClient[fakturoid.Account](httpClient, session, accountTemplate, "account")
	c.currentUser = NewLoadableClient[fakturoid.User](httpClient, session, currentUserTemplate, "user")

	c.invoiceEvents = NewEventsClient[fakturoid.InvoiceAction](httpClient, session, "invoices")
	c.expenseEvents = NewEventsClient[fakturoid.LockableAction](httpClient, session, "expenses")

	return c, nil
}

// Subjects implements fakturoid.Client.
func (c *Client) Subjects() fakturoid.SubjectsClient { return c.subjects }

// Invoices implements fakturoid.Client.
func (c *Client) Invoices() fakturoid.InvoicesClient { return c.invoices }

// Expenses implements fakturoid.Client.
func (c *Client) Expenses() fakturoid.ExpensesClient { return c.expenses }

// Users implements fakturoid.Client.
func (c *Client) Users() fakturoid.UsersClient { return c.users }

// BankAccounts implements fakturoid.Client.
func (c *Client) BankAccounts() fakturoid.BankAccountsClient { return c.bankAccounts }

// InventoryItems implements fakturoid.Client.
func (c *Client) InventoryItems() fakturoid.InventoryItemsClient { return c.inventoryItems }

// Generators implements fakturoid.Client.
func (c *Client) Generators() fakturoid.GeneratorsClient { return c.generators }

// Account implements fakturoid.Client.
func (c *Client) Account() fakturoid.AccountClient { return c.account }

// CurrentUser implements fakturoid.Client.
func (c *Client) CurrentUser() fakturoid.CurrentUserClient { return c.currentUser }

// InvoiceEvents implements fakturoid.Client.
func (c *Client) InvoiceEvents() fakturoid.InvoiceEventsClient { return c.invoiceEvents }

// ExpenseEvents implements fakturoid.Client.
func (c *Client) ExpenseEvents() fakturoid.ExpenseEventsClient { return c.expenseEvents }

// TokenManager exposes the credential manager for introspection, e.g. by the
// CLI's token command.
func (c *Client) TokenManager() *auth.ClientCredentialsManager { return c.tokenManager }
