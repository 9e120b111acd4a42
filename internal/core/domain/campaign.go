package domain

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Funding limits in integer units (cents).
const (
	MinGoalAmount       int64 = 1000_00
	MinInvestmentAmount int64 = 1_00
)

// Category is the fixed set of campaign categories.
type Category string

const (
	CategoryTechnology  Category = "Technology"
	CategoryHealth      Category = "Health"
	CategoryEducation   Category = "Education"
	CategoryEnvironment Category = "Environment"
	CategoryArts        Category = "Arts"
	CategorySocial      Category = "Social"
	CategoryOther       Category = "Other"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnology, CategoryHealth, CategoryEducation, CategoryEnvironment,
		CategoryArts, CategorySocial, CategoryOther,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Campaign is a fundraising project owned by a startup account.
// Amounts are stored in integer units (cents). RaisedAmount always equals the
// sum of Backers amounts and of completed investments for the campaign.
type Campaign struct {
	ID           uuid.UUID        `json:"id"`
	CreatorID    uuid.UUID        `json:"-"`
	Creator      *AccountRef      `json:"creator,omitempty"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	GoalAmount   int64            `json:"goalAmount"`
	RaisedAmount int64            `json:"raisedAmount"`
	Deadline     time.Time        `json:"deadline"`
	Category     Category         `json:"category"`
	Status       CampaignStatus   `json:"status"`
	Images       []string         `json:"images"`
	Featured     bool             `json:"featured"`
	BackerCount  int              `json:"backerCount"`
	Backers      []Backer         `json:"backers,omitempty"`
	Updates      []CampaignUpdate `json:"updates,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// FullyFunded reports whether the raised amount reached the goal.
func (c *Campaign) FullyFunded() bool {
	return c.RaisedAmount >= c.GoalAmount
}

// MarshalJSON adds the derived fullyFunded flag.
func (c Campaign) MarshalJSON() ([]byte, error) {
	type plain Campaign
	return json.Marshal(struct {
		plain
		FullyFunded bool `json:"fullyFunded"`
	}{plain(c), c.FullyFunded()})
}

// OwnedBy reports whether the identity may modify the campaign.
func (c *Campaign) OwnedBy(id Identity) bool {
	return id.IsAdmin() || c.CreatorID == id.AccountID
}

// Validate checks the document-level constraints of a campaign. It is run on
// create and again on every update.
func (c *Campaign) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	switch {
	case c.Title == "":
		return Validationf("title is required")
	case utf8.RuneCountInString(c.Title) > 200:
		return Validationf("title must be at most 200 characters")
	case strings.TrimSpace(c.Description) == "":
		return Validationf("description is required")
	case c.GoalAmount < MinGoalAmount:
		return Validationf("goal amount must be at least %d", MinGoalAmount)
	case c.RaisedAmount < 0:
		return Validationf("raised amount must not be negative")
	case c.Deadline.IsZero():
		return Validationf("deadline is required")
	case !c.Category.Valid():
		return Validationf("unknown category %q", c.Category)
	case !c.Status.Valid():
		return Validationf("unknown status %q", c.Status)
	}
	return nil
}

// Backer is one investor's cumulative contribution to a campaign. There is
// exactly one backer per (campaign, investor).
type Backer struct {
	CampaignID    uuid.UUID  `json:"-"`
	InvestorID    uuid.UUID  `json:"-"`
	Investor      AccountRef `json:"investor"`
	Amount        int64      `json:"amount"`
	FirstBackedAt time.Time  `json:"date"`
}

// CampaignUpdate is a free-text progress note posted by the campaign owner.
type CampaignUpdate struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"-"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"date"`
}

// CampaignFilter selects campaigns for listing. A nil Status means active.
type CampaignFilter struct {
	Category  *Category
	Status    *CampaignStatus
	CreatorID *uuid.UUID
	// AllStatuses disables the status filter entirely (admin listings).
	AllStatuses bool
	Page        PageRequest
}

// CreatorStats are derived on demand from a creator's campaigns.
type CreatorStats struct {
	TotalCampaigns int   `json:"totalCampaigns"`
	TotalRaised    int64 `json:"totalRaised"`
	TotalBackers   int   `json:"totalBackers"`
	SuccessRate    int   `json:"successRate"`
}

// ComputeCreatorStats aggregates the statistics of the given campaigns.
// SuccessRate is the rounded percentage of campaigns that reached their goal.
func ComputeCreatorStats(campaigns []Campaign) CreatorStats {
	var st CreatorStats
	funded := 0
	for i := range campaigns {
		c := &campaigns[i]
		st.TotalCampaigns++
		st.TotalRaised += c.RaisedAmount
		st.TotalBackers += c.BackerCount
		if c.FullyFunded() {
			funded++
		}
	}
	st.SuccessRate = Percent(funded, st.TotalCampaigns)
	return st
}

// Percent returns part/total as a rounded percentage, 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*100 + total/2) / total
}
