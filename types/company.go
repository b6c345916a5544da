package types

// Company is a business listed for sale on the marketplace.
// All thirteen fields are always present in API responses.
type Company struct {
	// ID is the unique identifier of the listing.
	ID int `json:"id" db:"id"`

	// Name is the trading name of the business.
	Name string `json:"name" db:"name"`

	// Industry is the sector the business operates in.
	Industry string `json:"industry" db:"industry"`

	// Status is the listing state, e.g. "Active".
	Status string `json:"status" db:"status"`

	// Location is where the business is based.
	Location string `json:"location" db:"location"`

	// Revenue is the annual revenue of the business.
	Revenue float64 `json:"revenue" db:"revenue"`

	// Ebitda is earnings before interest, taxes, depreciation and
	// amortization.
	Ebitda float64 `json:"ebitda" db:"ebitda"`

	// Employees is the headcount of the business.
	Employees int `json:"employees" db:"employees"`

	// FoundedYear is the year the business was founded.
	FoundedYear int `json:"founded_year" db:"founded_year"`

	// AskingPrice is the price the owner is asking for the business.
	AskingPrice float64 `json:"asking_price" db:"asking_price"`

	// Description is the owner's free-text pitch for the listing.
	Description string `json:"description" db:"description"`

	// OwnerID references the user that listed the company. It is stored
	// as given; no referential check against users is performed.
	OwnerID int `json:"owner_id" db:"owner_id"`

	// ViewsThisMonth counts listing page views in the current month.
	ViewsThisMonth int `json:"views_this_month" db:"views_this_month"`

	// InquiriesThisMonth counts buyer inquiries in the current month.
	InquiriesThisMonth int `json:"inquiries_this_month" db:"inquiries_this_month"`
}
