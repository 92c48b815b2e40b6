package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/backend-apotek/internal/common"
	"github.com/noah-isme/backend-apotek/internal/expiry"
)

// DateFormat is the wire format for expiry dates.
const DateFormat = "2006-01-02"

// MedicineView is the medicine payload returned to clients, annotated with
// the expiry status derived at response time.
type MedicineView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Symptoms        []string        `json:"symptoms"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	ExpiryDate      string          `json:"expiryDate"`
	Description     string          `json:"description"`
	ExpiryStatus    expiry.Status   `json:"expiryStatus"`
	DaysUntilExpiry int             `json:"daysUntilExpiry"`
}

// NewMedicineView assembles the client payload for a medicine.
func NewMedicineView(m Medicine, now time.Time) MedicineView {
	status, days := expiry.Evaluate(m.ExpiryDate, now)
	symptoms := m.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return MedicineView{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		Symptoms:        symptoms,
		Price:           m.Price,
		Stock:           m.Stock,
		ExpiryDate:      m.ExpiryDate.Format(DateFormat),
		Description:     m.Description,
		ExpiryStatus:    status,
		DaysUntilExpiry: days,
	}
}

// NewMedicineViews maps a record slice into view payloads preserving order.
func NewMedicineViews(records []Medicine, now time.Time) []MedicineView {
	out := make([]MedicineView, 0, len(records))
	for _, m := range records {
		out = append(out, NewMedicineView(m, now))
	}
	return out
}

// MedicineInput is the validated payload for create and update operations.
// Price and expiry date arrive as strings and are parsed at this boundary;
// the store only ever sees fully typed records.
type MedicineInput struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Symptoms    []string `json:"symptoms"`
	Price       string   `json:"price" validate:"required"`
	Stock       int      `json:"stock" validate:"gte=0"`
	ExpiryDate  string   `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	Description string   `json:"description"`
}

// ToMedicine parses the input into a typed record, rejecting non-numeric or
// negative prices.
func (in MedicineInput) ToMedicine() (Medicine, error) {
	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		return Medicine{}, common.ValidationError("price must be a decimal number", nil)
	}
	if price.IsNegative() {
		return Medicine{}, common.ValidationError("price must not be negative", nil)
	}
	expiryDate, err := time.Parse(DateFormat, in.ExpiryDate)
	if err != nil {
		return Medicine{}, common.ValidationError("expiryDate must use format YYYY-MM-DD", nil)
	}
	return Medicine{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Symptoms:    in.Symptoms,
		Price:       price,
		Stock:       in.Stock,
		ExpiryDate:  expiryDate,
		Description: in.Description,
	}, nil
}
