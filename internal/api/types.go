package api

import (
	"github.com/jayPrakash10/expense-front/internal/core"
)

// APIError is the uniform error arm of every gateway result. Transport
// failures, non-2xx responses and malformed bodies all collapse into it.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Pagination is the list metadata returned by paged endpoints.
type Pagination struct {
	Total      int `json:"total"`
	Limit      int `json:"limit"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// Response is the tagged result of a gateway call: either Data (with
// optional Meta) or Err is set, never both. Gateway calls do not return Go
// errors; callers branch on OK.
type Response[T any] struct {
	Data T
	Meta *Pagination
	Err  *APIError
}

// OK reports whether the call succeeded.
func (r Response[T]) OK() bool { return r.Err == nil }

// envelope is the backend's JSON body: {data, meta} on success.
type envelope[T any] struct {
	Data T           `json:"data"`
	Meta *Pagination `json:"meta,omitempty"`
}

// User mirrors the backend user document.
type User struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ProfileImg string `json:"profile_img,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// Settings mirrors the backend per-user settings document. QuickAdd holds
// subcategory ids shown as one-tap shortcuts on the dashboard.
type Settings struct {
	ID       string   `json:"_id,omitempty"`
	UserID   string   `json:"user_id,omitempty"`
	Currency string   `json:"currency,omitempty"`
	Language string   `json:"language,omitempty"`
	QuickAdd []string `json:"quick_add,omitempty"`
}

// ProfilePayload is returned by GET /users/profile.
type ProfilePayload struct {
	User     User     `json:"user"`
	Settings Settings `json:"settings"`
}

// AuthPayload is returned by the OTP-verify, signup and Google endpoints.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// OTPPayload acknowledges an OTP send.
type OTPPayload struct {
	Email string `json:"email"`
}

// GoogleCredentials is the identity extracted from a verified Google ID
// token and exchanged at POST /auth/google.
type GoogleCredentials struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ProfileImg string `json:"profile_img,omitempty"`
}

// Subcategory is a leaf spend category.
type Subcategory struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Category groups subcategories under a name and color.
type Category struct {
	ID            string        `json:"_id"`
	CategoryName  string        `json:"category_name"`
	CategoryColor string        `json:"category_color"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// CreateCategory is the create/update payload for categories.
type CreateCategory struct {
	CategoryName  string `json:"category_name,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
}

// NewSubcategory is one entry of a bulk subcategory create.
type NewSubcategory struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SubcategoryPatch updates a single subcategory.
type SubcategoryPatch struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// ExpenseInput is the create/update payload for an expense. Date is an
// RFC 3339 timestamp.
type ExpenseInput struct {
	SubcategoryID string  `json:"subcategory_id"`
	ModeOfPayment string  `json:"mode_of_payment"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
}

// ExpenseRecord is an expense as the backend returns it, with the category
// chain populated.
type ExpenseRecord struct {
	ID          string `json:"_id"`
	Subcategory struct {
		ID       string `json:"_id"`
		Name     string `json:"name"`
		Category struct {
			ID   string `json:"_id"`
			Name string `json:"name"`
		} `json:"category_id"`
	} `json:"subcategory_id"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	ModeOfPayment string  `json:"mode_of_payment"`
	CreatedAt     string  `json:"createdAt"`
}

// ListFilter narrows GET /expenses.
type ListFilter struct {
	Limit         int
	Page          int
	Mode          string
	StartDate     string
	EndDate       string
	SubcategoryID string
}

type dayEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type monthEntry struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

type modeEntry struct {
	Mode      string  `json:"mode"`
	Amount    float64 `json:"amount"`
	UsedCount int     `json:"usedCount"`
}

type categoryEntry struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Amount float64 `json:"amount"`
}

// MonthAnalyticsPayload is returned by GET /expenses/month. The daily series
// is sparse: only days with activity appear.
type MonthAnalyticsPayload struct {
	TotalAmount float64 `json:"totalAmount"`
	Analytics   struct {
		Daily        []dayEntry      `json:"daily"`
		PaymentModes []modeEntry     `json:"paymentModes"`
		Categories   []categoryEntry `json:"categories"`
	} `json:"analytics"`
	Expenses []ExpenseRecord `json:"expenses"`
}

// YearAnalyticsPayload is returned by GET /expenses/year, bucketed by month.
type YearAnalyticsPayload struct {
	TotalAmount float64 `json:"totalAmount"`
	Analytics   struct {
		Monthly      []monthEntry    `json:"monthly"`
		PaymentModes []modeEntry     `json:"paymentModes"`
		Categories   []categoryEntry `json:"categories"`
	} `json:"analytics"`
	Expenses []ExpenseRecord `json:"expenses"`
}

// OverviewPayload is returned by GET /expenses/overview.
type OverviewPayload struct {
	Summary *struct {
		MonthlyIncome float64 `json:"monthlyIncome"`
		TotalExpenses float64 `json:"totalExpenses"`
	} `json:"summary,omitempty"`
	Categories []categoryEntry `json:"categories"`
}

// Aggregate converts the wire payload into the domain month aggregate.
func (p MonthAnalyticsPayload) Aggregate() core.MonthAggregate {
	return core.MonthAggregate{
		TotalAmount:  p.TotalAmount,
		Daily:        toDayBuckets(p.Analytics.Daily),
		PaymentModes: toModeStats(p.Analytics.PaymentModes),
		Categories:   toCategoryStats(p.Analytics.Categories),
	}
}

// Aggregate converts the wire payload into the domain year aggregate.
func (p YearAnalyticsPayload) Aggregate() core.YearAggregate {
	monthly := make([]core.MonthBucket, len(p.Analytics.Monthly))
	for i, m := range p.Analytics.Monthly {
		monthly[i] = core.MonthBucket{Month: m.Month, Amount: m.Amount}
	}
	return core.YearAggregate{
		TotalAmount:  p.TotalAmount,
		Monthly:      monthly,
		PaymentModes: toModeStats(p.Analytics.PaymentModes),
		Categories:   toCategoryStats(p.Analytics.Categories),
	}
}

// Aggregate converts the wire payload into the domain overview aggregate.
func (p OverviewPayload) Aggregate() core.OverviewAggregate {
	out := core.OverviewAggregate{Categories: toCategoryStats(p.Categories)}
	if p.Summary != nil {
		out.Summary = &core.OverviewSummary{
			MonthlyIncome: p.Summary.MonthlyIncome,
			TotalExpenses: p.Summary.TotalExpenses,
		}
	}
	return out
}

func toDayBuckets(entries []dayEntry) []core.DayBucket {
	out := make([]core.DayBucket, len(entries))
	for i, e := range entries {
		out[i] = core.DayBucket{Date: e.Date, Amount: e.Amount}
	}
	return out
}

func toModeStats(entries []modeEntry) []core.ModeStat {
	out := make([]core.ModeStat, len(entries))
	for i, e := range entries {
		out[i] = core.ModeStat{Mode: core.PaymentMode(e.Mode), Amount: e.Amount, UsedCount: e.UsedCount}
	}
	return out
}

func toCategoryStats(entries []categoryEntry) []core.CategoryStat {
	out := make([]core.CategoryStat, len(entries))
	for i, e := range entries {
		out[i] = core.CategoryStat{Name: e.Name, Color: e.Color, Amount: e.Amount}
	}
	return out
}
