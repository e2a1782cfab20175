package view

import (
	"fmt"
	"time"

	"github.com/daskplus/portal/internal/models"
	"github.com/daskplus/portal/internal/portal/client"
)

// OverviewView feeds the dashboard's opening section
type OverviewView struct {
	Welcome         string
	CustomerName    string
	PolicyStatus    string
	PolicyBadge     string
	TotalCoverage   string
	PolicyCount     string
	DaysToPayment   string
	MonthlyPremium  string
	TierName        string
	TierIcon        string
	ScoreProgress   string
	CustomerScore   int
	ReferralCode    string
	ReferralEarning string
	Activities      []ActivityItem
}

// ActivityItem is one row of the recent-activity feed
type ActivityItem struct {
	Kind   string
	Icon   string
	Title  string
	Detail string
	Date   string
}

// BuildOverview assembles the overview section from the profile and
// stats payloads. It derives presentation only; every business number
// comes from the server.
func BuildOverview(customer *client.Customer, stats *client.Stats, payments []client.Payment, now time.Time) OverviewView {
	tier := models.TierForScore(stats.CustomerScore)

	status := "Pasif"
	badge := "danger"
	if stats.ActivePolicies > 0 {
		status = "Aktif"
		badge = "success"
	}

	days := 0
	if t, err := time.Parse("2006-01-02", stats.NextPaymentDate); err == nil {
		days = int(t.Sub(now).Hours() / 24)
		if days < 0 {
			days = 0
		}
	}

	progress := float64(stats.CustomerScore) / float64(models.MaxCustomerScore) * 100
	if progress > 100 {
		progress = 100
	}

	return OverviewView{
		Welcome:         fmt.Sprintf("Hoş Geldiniz, %s!", customer.FirstName),
		CustomerName:    customer.FullName,
		PolicyStatus:    status,
		PolicyBadge:     badge,
		TotalCoverage:   CurrencyInt(stats.TotalCoverage),
		PolicyCount:     fmt.Sprintf("%d Adet", stats.TotalPolicies),
		DaysToPayment:   fmt.Sprintf("%d Gün Kaldı", days),
		MonthlyPremium:  Currency(stats.MonthlyPremiumTotal),
		TierName:        string(tier),
		TierIcon:        tier.Icon(),
		ScoreProgress:   fmt.Sprintf("%.0f%%", progress),
		CustomerScore:   stats.CustomerScore,
		ReferralCode:    stats.ReferralCode,
		ReferralEarning: Currency(stats.ReferralEarnings),
		Activities:      BuildActivities(stats, payments),
	}
}

// BuildActivities derives the recent-activity feed. The list is built
// from scratch on every call so re-rendering never duplicates rows.
func BuildActivities(stats *client.Stats, payments []client.Payment) []ActivityItem {
	items := make([]ActivityItem, 0, 3)

	if len(payments) > 0 {
		p := payments[0]
		items = append(items, ActivityItem{
			Kind:   "payment",
			Icon:   "credit-card",
			Title:  "Prim ödemesi",
			Detail: fmt.Sprintf("%s - %s", p.PolicyNumber, Currency(p.Amount)),
			Date:   LongDate(p.PaymentDate),
		})
	}

	if stats.ActivePolicies > 0 {
		items = append(items, ActivityItem{
			Kind:   "policy",
			Icon:   "file-contract",
			Title:  "Poliçe durumu",
			Detail: fmt.Sprintf("%d aktif poliçe", stats.ActivePolicies),
			Date:   LongDate(stats.NextPaymentDate),
		})
	}

	level := "Düşük"
	if stats.AvgRiskScore > 0.7 {
		level = "Yüksek"
	} else if stats.AvgRiskScore > 0.4 {
		level = "Orta"
	}
	items = append(items, ActivityItem{
		Kind:   "risk",
		Icon:   "chart-line",
		Title:  "Risk değerlendirmesi",
		Detail: fmt.Sprintf("Ortalama risk: %s (%s)", RiskScore(stats.AvgRiskScore), level),
	})

	return items
}

// PolicyCard is one card of the policy list section
type PolicyCard struct {
	Title      string
	Expired    bool
	BadgeClass string
	BadgeText  string
	Address    string
	Package    string
	Coverage   string
	Premium    string
	StartDate  string
	EndDate    string
	RiskWidth  string
	RiskColor  string
	BuildingID string
}

// BuildPolicyCards maps the policy list onto cards. An empty input
// yields an empty slice, which renders as an empty container.
func BuildPolicyCards(policies []client.PolicySummary) []PolicyCard {
	cards := make([]PolicyCard, 0, len(policies))
	for i, p := range policies {
		band := models.BandForRisk(p.RiskScore)

		badgeClass, badgeText := "success", "Aktif"
		if p.Status != "Aktif" {
			badgeClass, badgeText = "danger", p.Status
		}

		cards = append(cards, PolicyCard{
			Title:      fmt.Sprintf("Ev Deprem Sigortası #%d", i+1),
			Expired:    p.Status != "Aktif",
			BadgeClass: badgeClass,
			BadgeText:  badgeText,
			Address:    p.Address,
			Package:    p.PackageType,
			Coverage:   CurrencyInt(p.Coverage),
			Premium:    Currency(p.PremiumMonthly),
			StartDate:  LongDate(p.StartDate),
			EndDate:    LongDate(p.EndDate),
			RiskWidth:  Percent(p.RiskScore),
			RiskColor:  band.Color(),
			BuildingID: p.BuildingID,
		})
	}
	return cards
}

// PaymentRow is one row of the payments table
type PaymentRow struct {
	StatusClass  string
	StatusIcon   string
	StatusText   string
	PolicyNumber string
	Address      string
	Amount       string
	Date         string
	Method       string
	ActionLabel  string
}

// BuildPaymentRows maps payments onto table rows
func BuildPaymentRows(payments []client.Payment) []PaymentRow {
	rows := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		status := models.PaymentStatus(p.Status)

		action := "Detaylar"
		if status == models.PaymentCompleted {
			action = "Makbuz"
		}

		rows = append(rows, PaymentRow{
			StatusClass:  status.CSSClass(),
			StatusIcon:   status.Icon(),
			StatusText:   p.Status,
			PolicyNumber: p.PolicyNumber,
			Address:      p.BuildingAddress,
			Amount:       Currency(p.Amount),
			Date:         LongDate(p.PaymentDate),
			Method:       p.PaymentMethod,
			ActionLabel:  action,
		})
	}
	return rows
}

// PolicyDetailView feeds the policy-details panel
type PolicyDetailView struct {
	PolicyNumber   string
	Package        string
	Status         string
	StartDate      string
	EndDate        string
	RenewalDate    string
	Coverage       string
	InsuranceValue string
	Deductible     string
	AnnualPremium  string
	MonthlyPremium string
	Address        string
	District       string
	City           string
	BuildingAge    int
	StructureType  string
	Floors         int
	AreaM2         string
	RiskScore      string
	RiskLevel      string
	RiskWidth      string
	RiskColor      string
	SoilType       string
	Liquefaction   string
	FaultDistance  string
	NearestFault   string
	CoverageRows   []CoverageRow
}

// CoverageRow is one labeled coverage term
type CoverageRow struct {
	Label string
	Value string
}

// BuildPolicyDetail maps the detail payload onto the panel's view model
func BuildPolicyDetail(p *client.PolicyDetails) PolicyDetailView {
	band := models.BandForRisk(p.Risk.RiskScore)

	rows := make([]CoverageRow, 0, len(p.CoverageDetails))
	for _, key := range []string{"structural_damage", "contents", "additional_living", "liability", "parametric_trigger"} {
		if v, ok := p.CoverageDetails[key]; ok {
			rows = append(rows, CoverageRow{Label: TitleWords(key), Value: v})
		}
	}

	return PolicyDetailView{
		PolicyNumber:   p.PolicyNumber,
		Package:        p.PackageType,
		Status:         p.Status,
		StartDate:      LongDate(p.Dates.StartDate),
		EndDate:        LongDate(p.Dates.EndDate),
		RenewalDate:    LongDate(p.Dates.RenewalDate),
		Coverage:       CurrencyInt(p.Coverage.MaxCoverageTL),
		InsuranceValue: Currency(p.Coverage.InsuranceValueTL),
		Deductible:     Currency(p.Coverage.DeductibleTL),
		AnnualPremium:  Currency(p.Coverage.AnnualPremiumTL),
		MonthlyPremium: Currency(p.Coverage.MonthlyPremiumTL),
		Address:        p.Building.Address,
		District:       p.Building.District,
		City:           p.Building.City,
		BuildingAge:    p.Building.BuildingAge,
		StructureType:  p.Building.StructureType,
		Floors:         p.Building.Floors,
		AreaM2:         fmt.Sprintf("%.0f m²", p.Building.AreaM2),
		RiskScore:      RiskScore(p.Risk.RiskScore),
		RiskLevel:      p.Risk.RiskLevel,
		RiskWidth:      Percent(p.Risk.RiskScore),
		RiskColor:      band.Color(),
		SoilType:       p.Risk.SoilType,
		Liquefaction:   Percent(p.Risk.LiquefactionRisk),
		FaultDistance:  FaultDistance(p.Risk.DistanceToFaultKm),
		NearestFault:   p.Risk.NearestFault,
		CoverageRows:   rows,
	}
}
