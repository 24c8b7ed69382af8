package fakturoid

import (
	"context"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://app.fakturoid.cz/api/v3"

// DefaultUserAgent identifies this library when none is configured. The API
// requires a User-Agent with contact information on every request.
const DefaultUserAgent = "fakturoid-go (https://github.com/fakturoid-community/fakturoid-go)"

// Client provides access to all Fakturoid API resources.
type Client interface {
	Subjects() SubjectsClient
	Invoices() InvoicesClient
	Expenses() ExpensesClient
	Users() UsersClient
	BankAccounts() BankAccountsClient
	InventoryItems() InventoryItemsClient
	Generators() GeneratorsClient

	// Account and CurrentUser are singleton resources with only Load.
	Account() AccountClient
	CurrentUser() CurrentUserClient

	// InvoiceEvents and ExpenseEvents fire state-transition actions.
	InvoiceEvents() InvoiceEventsClient
	ExpenseEvents() ExpenseEventsClient
}

// CollectionClient provides typed CRUD and search operations over one
// resource collection.
type CollectionClient[T any] interface {
	// Get fetches one entity by id. A missing entity yields an error
	// matchable with IsNotFound.
	Get(ctx context.Context, id int64) (*T, error)

	// List eagerly fetches all pages.
	List(ctx context.Context, params *ListParams) ([]T, error)

	// Index returns a lazy, forward-only iterator. Every call starts a fresh
	// page-1 request.
	Index(ctx context.Context, params *ListParams) *Iterator[T]

	// Search returns a lazy iterator over the full-text search endpoint.
	Search(ctx context.Context, params *SearchParams) *Iterator[T]

	// Find lists the collection and keeps only items whose wire fields
	// exactly equal all given filter values. This is a client-side O(n) scan
	// over Index, not a server-side filter; filters that are also accepted
	// query parameters narrow the scan, anything else re-scans the full
	// collection.
	Find(ctx context.Context, filters map[string]interface{}) ([]T, error)

	// Create posts the entity's explicitly-set fields and returns the
	// server's version, bound to the collection.
	Create(ctx context.Context, entity *T) (*T, error)

	// Update patches only the fields changed since the entity was loaded.
	Update(ctx context.Context, entity *T) (*T, error)

	// Delete removes the entity by id.
	Delete(ctx context.Context, id int64) error

	// Save dispatches to Update when the entity has an id, Create otherwise.
	Save(ctx context.Context, entity *T) (*T, error)
}

// LoadableClient provides access to a singleton resource.
type LoadableClient[T any] interface {
	Load(ctx context.Context) (*T, error)
}

// EventsClient fires state-transition events against a single entity.
// Success is signaled by HTTP status alone; there is no response payload.
type EventsClient[A ~string] interface {
	Fire(ctx context.Context, id int64, event A) error
}

// Typed per-resource client surfaces.
type (
	SubjectsClient       = CollectionClient[Subject]
	InvoicesClient       = CollectionClient[Invoice]
	ExpensesClient       = CollectionClient[Expense]
	UsersClient          = CollectionClient[User]
	BankAccountsClient   = CollectionClient[BankAccount]
	InventoryItemsClient = CollectionClient[InventoryItem]
	GeneratorsClient     = CollectionClient[Generator]
	AccountClient        = LoadableClient[Account]
	CurrentUserClient    = LoadableClient[User]
	InvoiceEventsClient  = EventsClient[InvoiceAction]
	ExpenseEventsClient  = EventsClient[LockableAction]
)

// Logger defines the logging interface used by the client. Implementations
// can adapt any logging library; the CLI wires zap through this interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration, read once at construction.
type Config struct {
	// Slug is the tenant account subdomain, e.g. "acme" for
	// acme.fakturoid.cz. Required.
	Slug string

	// ClientID and ClientSecret are the OAuth2 client credentials. Required.
	ClientID     string
	ClientSecret string

	// UserAgent identifies the caller; defaults to DefaultUserAgent.
	UserAgent string

	// BaseURL overrides the API endpoint; defaults to DefaultBaseURL.
	BaseURL string

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives client log output. Nil disables logging.
	Logger Logger

	// HTTPTimeout bounds every request round trip.
	HTTPTimeout time.Duration

	// RetryMax enables transport-level retries when positive. The client
	// itself never retries; this is opt-in behavior of the underlying
	// transport.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}
