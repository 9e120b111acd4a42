package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentStatus is the state of an investment record.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentFailed    InvestmentStatus = "failed"
	InvestmentRefunded  InvestmentStatus = "refunded"
)

// Investment is the record of one confirmed payment. PaymentID is the
// processor's identifier and is unique across all investments.
type Investment struct {
	ID            uuid.UUID        `json:"id"`
	InvestorID    uuid.UUID        `json:"-"`
	CampaignID    uuid.UUID        `json:"-"`
	Investor      *AccountRef      `json:"investor,omitempty"`
	Campaign      *CampaignRef     `json:"campaign,omitempty"`
	Amount        int64            `json:"amount"`
	PaymentID     string           `json:"paymentId"`
	Status        InvestmentStatus `json:"status"`
	PaymentMethod string           `json:"paymentMethod"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CampaignRef is the projection of a campaign embedded in investments and
// conversations.
type CampaignRef struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	GoalAmount   int64      `json:"goalAmount,omitempty"`
	RaisedAmount int64      `json:"raisedAmount,omitempty"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	CreatorID    *uuid.UUID `json:"creatorId,omitempty"`
}

// Contribution is a processor-confirmed payment to be applied by the funding
// ledger.
type Contribution struct {
	CampaignID    uuid.UUID
	InvestorID    uuid.UUID
	Amount        int64
	PaymentID     string
	PaymentMethod string
}

// Validate checks the contribution before it reaches the ledger.
func (c Contribution) Validate() error {
	switch {
	case c.CampaignID == uuid.Nil:
		return Validationf("campaign id is required")
	case c.InvestorID == uuid.Nil:
		return Validationf("investor id is required")
	case c.Amount < MinInvestmentAmount:
		return Validationf("amount must be at least %d", MinInvestmentAmount)
	case c.PaymentID == "":
		return Validationf("payment id is required")
	}
	return nil
}

// PaymentStatus is the processor-side state of a payment intent.
type PaymentStatus string

const (
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPending    PaymentStatus = "requires_action"
	PaymentCanceled   PaymentStatus = "canceled"
	PaymentFailed     PaymentStatus = "failed"
)

// PaymentIntent is the processor's view of a payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       PaymentStatus
	CampaignID   uuid.UUID
	InvestorID   uuid.UUID
	Method       string
}

// PlatformStats are the public aggregate counters.
type PlatformStats struct {
	TotalCampaigns int   `json:"totalCampaigns"`
	TotalUsers     int   `json:"totalUsers"`
	TotalFunded    int64 `json:"totalFunded"`
	SuccessRate    int   `json:"successRate"`
}

// AdminStats are the admin dashboard counters.
type AdminStats struct {
	TotalUsers       int   `json:"totalUsers"`
	TotalCampaigns   int   `json:"totalCampaigns"`
	TotalInvestments int   `json:"totalInvestments"`
	TotalFunded      int64 `json:"totalFunded"`
}
