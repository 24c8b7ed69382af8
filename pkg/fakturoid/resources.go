package fakturoid

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// VATMode describes an account's VAT registration.
type VATMode string

// VAT modes.
const (
	VATModePayer            VATMode = "vat_payer"
	VATModeNonPayer         VATMode = "non_vat_payer"
	VATModeIdentifiedPerson VATMode = "identified_person"
)

// VATPriceMode describes how line prices relate to VAT.
type VATPriceMode string

// VAT price modes.
const (
	VATPriceModeWithVAT          VATPriceMode = "with_vat"
	VATPriceModeWithoutVAT       VATPriceMode = "without_vat"
	VATPriceModeNumericalWithVAT VATPriceMode = "numerical_with_vat"
	VATPriceModeFromTotalWithVAT VATPriceMode = "from_total_with_vat"
)

// Language is a document language code.
type Language string

// Document languages.
const (
	LanguageCZ Language = "cz"
	LanguageSK Language = "sk"
	LanguageEN Language = "en"
	LanguageDE Language = "de"
	LanguageFR Language = "fr"
	LanguageIT Language = "it"
	LanguageES Language = "es"
	LanguageRU Language = "ru"
	LanguagePL Language = "pl"
	LanguageHU Language = "hu"
	LanguageRO Language = "ro"
)

// PaymentMethod is an invoice payment method.
type PaymentMethod string

// Payment methods.
const (
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodPayPal PaymentMethod = "paypal"
)

// InvoiceAction is a state-transition event fired against an invoice.
type InvoiceAction string

// Invoice actions.
const (
	InvoiceActionMarkAsSent          InvoiceAction = "mark_as_sent"
	InvoiceActionCancel              InvoiceAction = "cancel"
	InvoiceActionUndoCancel          InvoiceAction = "undo_cancel"
	InvoiceActionLock                InvoiceAction = "lock"
	InvoiceActionUnlock              InvoiceAction = "unlock"
	InvoiceActionMarkAsUncollectible InvoiceAction = "mark_as_uncollectible"
	InvoiceActionUndoUncollectible   InvoiceAction = "undo_uncollectible"
	InvoiceActionPay                 InvoiceAction = "pay"
	InvoiceActionPayProforma         InvoiceAction = "pay_proforma"
	InvoiceActionRemovePayment       InvoiceAction = "remove_payment"
)

// LockableAction is a state-transition event on resources that only support
// locking.
type LockableAction string

// Lockable actions.
const (
	LockableActionLock   LockableAction = "lock"
	LockableActionUnlock LockableAction = "unlock"
)

// idRouteParams exposes a server-assigned id as the ${id} route parameter.
func idRouteParams(id *int64) RouteParams {
	params := RouteParams{}
	if id != nil {
		params["id"] = strconv.FormatInt(*id, 10)
	}

	return params
}

// Subject is a customer or supplier on the account.
type Subject struct {
	Tracked `json:"-" yaml:"-"`

	ID             *int64  `json:"id,omitempty"              yaml:"id,omitempty"`
	CustomID       *string `json:"custom_id,omitempty"       yaml:"custom_id,omitempty"`
	Name           *string `json:"name,omitempty"            yaml:"name,omitempty"`
	FullName       *string `json:"full_name,omitempty"       yaml:"full_name,omitempty"`
	Street         *string `json:"street,omitempty"          yaml:"street,omitempty"`
	City           *string `json:"city,omitempty"            yaml:"city,omitempty"`
	Zip            *string `json:"zip,omitempty"             yaml:"zip,omitempty"`
	Country        *string `json:"country,omitempty"         yaml:"country,omitempty"`
	RegistrationNo *string `json:"registration_no,omitempty" yaml:"registration_no,omitempty"`
	VATNo          *string `json:"vat_no,omitempty"          yaml:"vat_no,omitempty"`
	LocalVATNo     *string `json:"local_vat_no,omitempty"    yaml:"local_vat_no,omitempty"`
	Email          *string `json:"email,omitempty"           yaml:"email,omitempty"           validate:"omitempty,email"`
	EmailCopy      *string `json:"email_copy,omitempty"      yaml:"email_copy,omitempty"      validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"           yaml:"phone,omitempty"`
	Web            *string `json:"web,omitempty"             yaml:"web,omitempty"             validate:"omitempty,url"`
	Note           *string `json:"note,omitempty"            yaml:"note,omitempty"`
	PrivateNote    *string `json:"private_note,omitempty"    yaml:"private_note,omitempty"`

	// Server-computed fields.
	AvatarURL *string    `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	HTMLURL   *string    `json:"html_url,omitempty"   yaml:"html_url,omitempty"`
	URL       *string    `json:"url,omitempty"        yaml:"url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity.
func (s *Subject) ResourceID() *int64 { return s.ID }

// RouteParams implements RouteParamProvider.
func (s *Subject) RouteParams() RouteParams { return idRouteParams(s.ID) }

// Schema implements Entity.
func (s *Subject) Schema() Schema {
	return Schema{
		ReadOnly: []string{"id", "avatar_url", "html_url", "url", "created_at", "updated_at"},
	}
}

// Line is a document line on invoices, expenses, and generators. A loaded
// line can be flagged with Destroy to remove it on the next update.
type Line struct {
	ID                  *int64           `json:"id,omitempty"                     yaml:"id,omitempty"`
	Name                *string          `json:"name,omitempty"                   yaml:"name,omitempty"`
	Quantity            *decimal.Decimal `json:"quantity,omitempty"               yaml:"quantity,omitempty"`
	UnitName            *string          `json:"unit_name,omitempty"              yaml:"unit_name,omitempty"`
	UnitPrice           *decimal.Decimal `json:"unit_price,omitempty"             yaml:"unit_price,omitempty"`
	VATRate             *decimal.Decimal `json:"vat_rate,omitempty"               yaml:"vat_rate,omitempty"`
	UnitPriceWithoutVAT *decimal.Decimal `json:"unit_price_without_vat,omitempty" yaml:"unit_price_without_vat,omitempty"`
	UnitPriceWithVAT    *decimal.Decimal `json:"unit_price_with_vat,omitempty"    yaml:"unit_price_with_vat,omitempty"`
	Destroy             *bool            `json:"_destroy,omitempty"               yaml:"_destroy,omitempty"`
}

// Invoice is an issued document billed to a subject.
type Invoice struct {
	Tracked `json:"-" yaml:"-"`

	ID                    *int64           `json:"id,omitempty"                      yaml:"id,omitempty"`
	CustomID              *string          `json:"custom_id,omitempty"               yaml:"custom_id,omitempty"`
	Number                *string          `json:"number,omitempty"                  yaml:"number,omitempty"`
	SubjectID             *int64           `json:"subject_id,omitempty"              yaml:"subject_id,omitempty"`
	Due                   *int             `json:"due,omitempty"                     yaml:"due,omitempty"`
	IssuedOn              *Date            `json:"issued_on,omitempty"               yaml:"issued_on,omitempty"`
	TaxableFulfillmentDue *Date            `json:"taxable_fulfillment_due,omitempty" yaml:"taxable_fulfillment_due,omitempty"`
	Note                  *string          `json:"note,omitempty"                    yaml:"note,omitempty"`
	FooterNote            *string          `json:"footer_note,omitempty"             yaml:"footer_note,omitempty"`
	PaymentMethod         *PaymentMethod   `json:"payment_method,omitempty"          yaml:"payment_method,omitempty"          validate:"omitempty,oneof=bank card cash cod paypal"`
	Currency              *string          `json:"currency,omitempty"                yaml:"currency,omitempty"                validate:"omitempty,len=3"`
	ExchangeRate          *decimal.Decimal `json:"exchange_rate,omitempty"           yaml:"exchange_rate,omitempty"`
	Language              *Language        `json:"language,omitempty"                yaml:"language,omitempty"`
	Tags                  []string         `json:"tags,omitempty"                    yaml:"tags,omitempty"`
	Lines                 []Line           `json:"lines,omitempty"                   yaml:"lines,omitempty"`

	// Server-computed fields.
	Status          *string          `json:"status,omitempty"           yaml:"status,omitempty"`
	DueOn           *Date            `json:"due_on,omitempty"           yaml:"due_on,omitempty"`
	Subtotal        *decimal.Decimal `json:"subtotal,omitempty"         yaml:"subtotal,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"            yaml:"total,omitempty"`
	NativeSubtotal  *decimal.Decimal `json:"native_subtotal,omitempty"  yaml:"native_subtotal,omitempty"`
	NativeTotal     *decimal.Decimal `json:"native_total,omitempty"     yaml:"native_total,omitempty"`
	RemainingAmount *decimal.Decimal `json:"remaining_amount,omitempty" yaml:"remaining_amount,omitempty"`
	SentAt          *time.Time       `json:"sent_at,omitempty"          yaml:"sent_at,omitempty"`
	PaidOn          *Date            `json:"paid_on,omitempty"          yaml:"paid_on,omitempty"`
	LockedAt        *time.Time       `json:"locked_at,omitempty"        yaml:"locked_at,omitempty"`
	CancelledAt     *time.Time       `json:"cancelled_at,omitempty"     yaml:"cancelled_at,omitempty"`
	HTMLURL         *string          `json:"html_url,omitempty"         yaml:"html_url,omitempty"`
	PublicHTMLURL   *string          `json:"public_html_url,omitempty"  yaml:"public_html_url,omitempty"`
	URL             *string          `json:"url,omitempty"              yaml:"url,omitempty"`
	PDFURL          *string          `json:"pdf_url,omitempty"          yaml:"pdf_url,omitempty"`
	CreatedAt       *time.Time       `json:"created_at,omitempty"       yaml:"created_at,omitempty"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"       yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity.
func (i *Invoice) ResourceID() *int64 { return i.ID }

// RouteParams implements RouteParamProvider.
func (i *Invoice) RouteParams() RouteParams { return idRouteParams(i.ID) }

// Schema implements Entity. The server requires subject_id on every update
// even when unchanged.
func (i *Invoice) Schema() Schema {
	return Schema{
		ReadOnly: []string{
			"id", "status", "due_on", "subtotal", "total", "native_subtotal",
			"native_total", "remaining_amount", "sent_at", "paid_on", "locked_at",
			"cancelled_at", "html_url", "public_html_url", "url", "pdf_url",
			"created_at", "updated_at",
		},
		AlwaysInclude: []string{"subject_id"},
	}
}

// Expense is a received document from a supplier.
type Expense struct {
	Tracked `json:"-" yaml:"-"`

	ID                    *int64           `json:"id,omitempty"                      yaml:"id,omitempty"`
	CustomID              *string          `json:"custom_id,omitempty"               yaml:"custom_id,omitempty"`
	Number                *string          `json:"number,omitempty"                  yaml:"number,omitempty"`
	OriginalNumber        *string          `json:"original_number,omitempty"         yaml:"original_number,omitempty"`
	SubjectID             *int64           `json:"subject_id,omitempty"              yaml:"subject_id,omitempty"`
	DocumentType          *string          `json:"document_type,omitempty"           yaml:"document_type,omitempty"`
	IssuedOn              *Date            `json:"issued_on,omitempty"               yaml:"issued_on,omitempty"`
	DueOn                 *Date            `json:"due_on,omitempty"                  yaml:"due_on,omitempty"`
	TaxableFulfillmentDue *Date            `json:"taxable_fulfillment_due,omitempty" yaml:"taxable_fulfillment_due,omitempty"`
	Description           *string          `json:"description,omitempty"             yaml:"description,omitempty"`
	Currency              *string          `json:"currency,omitempty"                yaml:"currency,omitempty"               validate:"omitempty,len=3"`
	ExchangeRate          *decimal.Decimal `json:"exchange_rate,omitempty"           yaml:"exchange_rate,omitempty"`
	Tags                  []string         `json:"tags,omitempty"                    yaml:"tags,omitempty"`
	Lines                 []Line           `json:"lines,omitempty"                   yaml:"lines,omitempty"`

	// Server-computed fields.
	Status         *string          `json:"status,omitempty"          yaml:"status,omitempty"`
	SupplierName   *string          `json:"supplier_name,omitempty"   yaml:"supplier_name,omitempty"`
	Subtotal       *decimal.Decimal `json:"subtotal,omitempty"        yaml:"subtotal,omitempty"`
	Total          *decimal.Decimal `json:"total,omitempty"           yaml:"total,omitempty"`
	NativeSubtotal *decimal.Decimal `json:"native_subtotal,omitempty" yaml:"native_subtotal,omitempty"`
	NativeTotal    *decimal.Decimal `json:"native_total,omitempty"    yaml:"native_total,omitempty"`
	PaidOn         *Date            `json:"paid_on,omitempty"         yaml:"paid_on,omitempty"`
	LockedAt       *time.Time       `json:"locked_at,omitempty"       yaml:"locked_at,omitempty"`
	HTMLURL        *string          `json:"html_url,omitempty"        yaml:"html_url,omitempty"`
	URL            *string          `json:"url,omitempty"             yaml:"url,omitempty"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity.
func (e *Expense) ResourceID() *int64 { return e.ID }

// RouteParams implements RouteParamProvider.
func (e *Expense) RouteParams() RouteParams { return idRouteParams(e.ID) }

// Schema implements Entity.
func (e *Expense) Schema() Schema {
	return Schema{
		ReadOnly: []string{
			"id", "status", "supplier_name", "subtotal", "total",
			"native_subtotal", "native_total", "paid_on", "locked_at",
			"html_url", "url", "created_at", "updated_at",
		},
		AlwaysInclude: []string{"subject_id"},
	}
}

// User is an account user. It doubles as the loadable current-user resource.
type User struct {
	Tracked `json:"-" yaml:"-"`

	ID       *int64  `json:"id,omitempty"        yaml:"id,omitempty"`
	FullName *string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"     yaml:"email,omitempty"     validate:"omitempty,email"`

	// Server-computed fields.
	AvatarURL      *string `json:"avatar_url,omitempty"      yaml:"avatar_url,omitempty"`
	DefaultAccount *string `json:"default_account,omitempty" yaml:"default_account,omitempty"`
	Permission     *string `json:"permission,omitempty"      yaml:"permission,omitempty"`
}

// ResourceID implements Entity.
func (u *User) ResourceID() *int64 { return u.ID }

// RouteParams implements RouteParamProvider.
func (u *User) RouteParams() RouteParams { return idRouteParams(u.ID) }

// Schema implements Entity.
func (u *User) Schema() Schema {
	return Schema{
		ReadOnly: []string{"id", "avatar_url", "default_account", "permission"},
	}
}

// Account is the loadable singleton describing the tenant account itself.
type Account struct {
	Tracked `json:"-" yaml:"-"`

	Subdomain            *string        `json:"subdomain,omitempty"              yaml:"subdomain,omitempty"`
	Name                 *string        `json:"name,omitempty"                   yaml:"name,omitempty"`
	FullName             *string        `json:"full_name,omitempty"              yaml:"full_name,omitempty"`
	Email                *string        `json:"email,omitempty"                  yaml:"email,omitempty"                  validate:"omitempty,email"`
	InvoiceEmail         *string        `json:"invoice_email,omitempty"          yaml:"invoice_email,omitempty"          validate:"omitempty,email"`
	Phone                *string        `json:"phone,omitempty"                  yaml:"phone,omitempty"`
	Web                  *string        `json:"web,omitempty"                    yaml:"web,omitempty"                    validate:"omitempty,url"`
	RegistrationNo       *string        `json:"registration_no,omitempty"        yaml:"registration_no,omitempty"`
	VATNo                *string        `json:"vat_no,omitempty"                 yaml:"vat_no,omitempty"`
	VATMode              *VATMode       `json:"vat_mode,omitempty"               yaml:"vat_mode,omitempty"               validate:"omitempty,oneof=vat_payer non_vat_payer identified_person"`
	VATPriceMode         *VATPriceMode  `json:"vat_price_mode,omitempty"         yaml:"vat_price_mode,omitempty"`
	Street               *string        `json:"street,omitempty"                 yaml:"street,omitempty"`
	City                 *string        `json:"city,omitempty"                   yaml:"city,omitempty"`
	Zip                  *string        `json:"zip,omitempty"                    yaml:"zip,omitempty"`
	Country              *string        `json:"country,omitempty"                yaml:"country,omitempty"`
	Currency             *string        `json:"currency,omitempty"               yaml:"currency,omitempty"               validate:"omitempty,len=3"`
	UnitName             *string        `json:"unit_name,omitempty"              yaml:"unit_name,omitempty"`
	VATRate              *int           `json:"vat_rate,omitempty"               yaml:"vat_rate,omitempty"`
	DisplayedNote        *string        `json:"displayed_note,omitempty"         yaml:"displayed_note,omitempty"`
	InvoiceNote          *string        `json:"invoice_note,omitempty"           yaml:"invoice_note,omitempty"`
	Due                  *int           `json:"due,omitempty"                    yaml:"due,omitempty"`
	InvoiceLanguage      *Language      `json:"invoice_language,omitempty"       yaml:"invoice_language,omitempty"`
	InvoicePaymentMethod *PaymentMethod `json:"invoice_payment_method,omitempty" yaml:"invoice_payment_method,omitempty"`

	// Server-computed fields.
	Plan      *string          `json:"plan,omitempty"       yaml:"plan,omitempty"`
	PlanPrice *decimal.Decimal `json:"plan_price,omitempty" yaml:"plan_price,omitempty"`
	CreatedAt *time.Time       `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity. Accounts are addressed by slug, not id.
func (a *Account) ResourceID() *int64 { return nil }

// RouteParams implements RouteParamProvider.
func (a *Account) RouteParams() RouteParams { return RouteParams{} }

// Schema implements Entity.
func (a *Account) Schema() Schema {
	return Schema{
		ReadOnly: []string{"plan", "plan_price", "created_at", "updated_at"},
	}
}

// BankAccount is a bank account configured on the tenant account.
type BankAccount struct {
	Tracked `json:"-" yaml:"-"`

	ID                *int64  `json:"id,omitempty"                 yaml:"id,omitempty"`
	Name              *string `json:"name,omitempty"               yaml:"name,omitempty"`
	Currency          *string `json:"currency,omitempty"           yaml:"currency,omitempty" validate:"omitempty,len=3"`
	Number            *string `json:"number,omitempty"             yaml:"number,omitempty"`
	IBAN              *string `json:"iban,omitempty"               yaml:"iban,omitempty"`
	SwiftBIC          *string `json:"swift_bic,omitempty"          yaml:"swift_bic,omitempty"`
	Pairing           *bool   `json:"pairing,omitempty"            yaml:"pairing,omitempty"`
	ExpensePairing    *bool   `json:"expense_pairing,omitempty"    yaml:"expense_pairing,omitempty"`
	PaymentAdjustment *bool   `json:"payment_adjustment,omitempty" yaml:"payment_adjustment,omitempty"`
	Default           *bool   `json:"default,omitempty"            yaml:"default,omitempty"`

	// Server-computed fields.
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity.
func (b *BankAccount) ResourceID() *int64 { return b.ID }

// RouteParams implements RouteParamProvider.
func (b *BankAccount) RouteParams() RouteParams { return idRouteParams(b.ID) }

// Schema implements Entity.
func (b *BankAccount) Schema() Schema {
	return Schema{
		ReadOnly: []string{"id", "created_at", "updated_at"},
	}
}

// InventoryItem is a stock-tracked item usable on document lines.
type InventoryItem struct {
	Tracked `json:"-" yaml:"-"`

	ID                  *int64           `json:"id,omitempty"                    yaml:"id,omitempty"`
	Name                *string          `json:"name,omitempty"                  yaml:"name,omitempty"`
	SKU                 *string          `json:"sku,omitempty"                   yaml:"sku,omitempty"`
	ArticleNumber       *string          `json:"article_number,omitempty"        yaml:"article_number,omitempty"`
	UnitName            *string          `json:"unit_name,omitempty"             yaml:"unit_name,omitempty"`
	TrackQuantity       *bool            `json:"track_quantity,omitempty"        yaml:"track_quantity,omitempty"`
	Quantity            *decimal.Decimal `json:"quantity,omitempty"              yaml:"quantity,omitempty"`
	MinQuantity         *decimal.Decimal `json:"min_quantity,omitempty"          yaml:"min_quantity,omitempty"`
	MaxQuantity         *decimal.Decimal `json:"max_quantity,omitempty"          yaml:"max_quantity,omitempty"`
	NativePurchasePrice *decimal.Decimal `json:"native_purchase_price,omitempty" yaml:"native_purchase_price,omitempty"`
	NativeRetailPrice   *decimal.Decimal `json:"native_retail_price,omitempty"   yaml:"native_retail_price,omitempty"`
	VATRate             *decimal.Decimal `json:"vat_rate,omitempty"              yaml:"vat_rate,omitempty"`
	SupplyType          *string          `json:"supply_type,omitempty"           yaml:"supply_type,omitempty"`
	PrivateNote         *string          `json:"private_note,omitempty"          yaml:"private_note,omitempty"`
	SuggestFor          *string          `json:"suggest_for,omitempty"           yaml:"suggest_for,omitempty"`

	// Server-computed fields.
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity.
func (i *InventoryItem) ResourceID() *int64 { return i.ID }

// RouteParams implements RouteParamProvider.
func (i *InventoryItem) RouteParams() RouteParams { return idRouteParams(i.ID) }

// Schema implements Entity.
func (i *InventoryItem) Schema() Schema {
	return Schema{
		ReadOnly: []string{"id", "created_at", "updated_at"},
	}
}

// Generator is a recurring-invoice template.
type Generator struct {
	Tracked `json:"-" yaml:"-"`

	ID            *int64           `json:"id,omitempty"             yaml:"id,omitempty"`
	Name          *string          `json:"name,omitempty"           yaml:"name,omitempty"`
	SubjectID     *int64           `json:"subject_id,omitempty"     yaml:"subject_id,omitempty"`
	Recurring     *bool            `json:"recurring,omitempty"      yaml:"recurring,omitempty"`
	StartDate     *Date            `json:"start_date,omitempty"     yaml:"start_date,omitempty"`
	MonthsPeriod  *int             `json:"months_period,omitempty"  yaml:"months_period,omitempty"`
	Currency      *string          `json:"currency,omitempty"       yaml:"currency,omitempty"       validate:"omitempty,len=3"`
	ExchangeRate  *decimal.Decimal `json:"exchange_rate,omitempty"  yaml:"exchange_rate,omitempty"`
	PaymentMethod *PaymentMethod   `json:"payment_method,omitempty" yaml:"payment_method,omitempty" validate:"omitempty,oneof=bank card cash cod paypal"`
	Lines         []Line           `json:"lines,omitempty"          yaml:"lines,omitempty"`

	// Server-computed fields.
	Subtotal  *decimal.Decimal `json:"subtotal,omitempty"   yaml:"subtotal,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"      yaml:"total,omitempty"`
	HTMLURL   *string          `json:"html_url,omitempty"   yaml:"html_url,omitempty"`
	URL       *string          `json:"url,omitempty"        yaml:"url,omitempty"`
	CreatedAt *time.Time       `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ResourceID implements Entity.
func (g *Generator) ResourceID() *int64 { return g.ID }

// RouteParams implements RouteParamProvider.
func (g *Generator) RouteParams() RouteParams { return idRouteParams(g.ID) }

// Schema implements Entity.
func (g *Generator) Schema() Schema {
	return Schema{
		ReadOnly: []string{
			"id", "subtotal", "total", "html_url", "url", "created_at", "updated_at",
		},
		AlwaysInclude: []string{"subject_id"},
	}
}
