package view

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daskplus/portal/internal/portal/client"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1200", "₺1.200"},
		{"906.25", "₺906,25"},
		{"1500000", "₺1.500.000"},
		{"0", "₺0"},
		{"999", "₺999"},
		{"1000", "₺1.000"},
		{"412.5", "₺412,50"},
		{"-250", "-₺250"},
	}

	for _, tt := range tests {
		d, _ := decimal.NewFromString(tt.amount)
		if got := Currency(d); got != tt.want {
			t.Errorf("Currency(%s) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestLongDate(t *testing.T) {
	if got := LongDate("2025-01-02"); got != "2 Ocak 2025" {
		t.Errorf("LongDate = %s, want 2 Ocak 2025", got)
	}
	if got := LongDate("2026-08-15"); got != "15 Ağustos 2026" {
		t.Errorf("LongDate = %s, want 15 Ağustos 2026", got)
	}
	if got := LongDate("garbage"); got != "garbage" {
		t.Errorf("unparseable input should pass through, got %s", got)
	}
}

func TestTitleWords(t *testing.T) {
	if got := TitleWords("ahmet_yilmaz"); got != "Ahmet Yilmaz" {
		t.Errorf("TitleWords = %s", got)
	}
	if got := TitleWords("STRUCTURAL_DAMAGE"); got != "Structural Damage" {
		t.Errorf("TitleWords = %s", got)
	}
}

func testStats() *client.Stats {
	return &client.Stats{
		CustomerID:          "cust-1",
		CustomerName:        "Ayşe Demir",
		TotalPolicies:       2,
		ActivePolicies:      2,
		TotalCoverage:       1_000_000,
		MonthlyPremiumTotal: decimal.NewFromInt(1200),
		NextPaymentDate:     "2025-09-24",
		ReferralCode:        "REFABC123",
		ReferralEarnings:    decimal.NewFromInt(500),
		CustomerScore:       340,
		AvgRiskScore:        0.4521,
	}
}

func TestBuildOverviewWelcome(t *testing.T) {
	customer := &client.Customer{FirstName: "Ayşe", FullName: "Ayşe Demir"}
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	ov := BuildOverview(customer, testStats(), nil, now)

	if ov.Welcome != "Hoş Geldiniz, Ayşe!" {
		t.Errorf("welcome = %q", ov.Welcome)
	}
	if ov.TotalCoverage != "₺1.000.000" {
		t.Errorf("coverage = %s", ov.TotalCoverage)
	}
	if ov.PolicyCount != "2 Adet" {
		t.Errorf("policy count = %s", ov.PolicyCount)
	}
	if ov.DaysToPayment != "23 Gün Kaldı" {
		t.Errorf("days = %s", ov.DaysToPayment)
	}
	if ov.TierName != "Altın" || ov.TierIcon != "🥇" {
		t.Errorf("tier = %s %s", ov.TierName, ov.TierIcon)
	}
	if ov.ScoreProgress != "68%" {
		t.Errorf("score progress = %s", ov.ScoreProgress)
	}
}

func TestBuildActivitiesRebuilds(t *testing.T) {
	stats := testStats()
	payments := []client.Payment{{
		PolicyNumber: "DSK-1",
		Amount:       decimal.NewFromInt(1200),
		PaymentDate:  "2025-08-01",
	}}

	first := BuildActivities(stats, payments)
	second := BuildActivities(stats, payments)

	if len(first) != len(second) {
		t.Errorf("rebuild changed length: %d vs %d", len(first), len(second))
	}
	if len(first) != 3 {
		t.Errorf("expected 3 activities, got %d", len(first))
	}
	if first[0].Kind != "payment" || !strings.Contains(first[0].Detail, "₺1.200") {
		t.Errorf("payment activity = %+v", first[0])
	}
	if !strings.Contains(first[2].Detail, "Orta") {
		t.Errorf("risk activity should band 0.4521 as Orta, got %+v", first[2])
	}
}

func TestBuildPolicyCards(t *testing.T) {
	policies := []client.PolicySummary{
		{PolicyNumber: "DSK-1", Status: "Aktif", Coverage: 750_000, PremiumMonthly: decimal.NewFromInt(900), RiskScore: 0.25},
		{PolicyNumber: "DSK-2", Status: "Pasif", Coverage: 250_000, PremiumMonthly: decimal.NewFromInt(400), RiskScore: 0.71},
	}

	cards := BuildPolicyCards(policies)

	if cards[0].Title != "Ev Deprem Sigortası #1" {
		t.Errorf("title = %s", cards[0].Title)
	}
	if cards[0].Expired {
		t.Error("active policy should not be expired")
	}
	if cards[0].RiskColor != "#10b981" {
		t.Errorf("low risk color = %s", cards[0].RiskColor)
	}
	if !cards[1].Expired || cards[1].BadgeClass != "danger" {
		t.Errorf("passive card = %+v", cards[1])
	}
	if cards[1].RiskColor != "#ef4444" {
		t.Errorf("high risk color = %s", cards[1].RiskColor)
	}
	if cards[1].RiskWidth != "71%" {
		t.Errorf("risk width = %s", cards[1].RiskWidth)
	}
}

func TestBuildPaymentRows(t *testing.T) {
	payments := []client.Payment{
		{PolicyNumber: "DSK-1", Amount: decimal.NewFromInt(1200), Status: "Tamamlandı", PaymentDate: "2025-08-01"},
		{PolicyNumber: "DSK-1", Amount: decimal.NewFromFloat(906.25), Status: "Beklemede", PaymentDate: "2025-09-01"},
	}

	rows := BuildPaymentRows(payments)

	if rows[0].StatusClass != "completed" || rows[0].ActionLabel != "Makbuz" {
		t.Errorf("completed row = %+v", rows[0])
	}
	if rows[0].Amount != "₺1.200" {
		t.Errorf("amount = %s", rows[0].Amount)
	}
	if rows[1].StatusClass != "pending" || rows[1].ActionLabel != "Detaylar" {
		t.Errorf("pending row = %+v", rows[1])
	}
	if rows[1].StatusIcon != "clock" {
		t.Errorf("pending icon = %s", rows[1].StatusIcon)
	}
}

func TestRenderPaymentRowMarkup(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	rows := BuildPaymentRows([]client.Payment{
		{PolicyNumber: "DSK-1", Amount: decimal.NewFromInt(1200), Status: "Tamamlandı", PaymentDate: "2025-08-01"},
	})
	html, err := r.Render("payments", rows)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(html, `class="payment-row completed"`) {
		t.Errorf("expected completed row class in %s", html)
	}
	if !strings.Contains(html, "₺1.200") {
		t.Errorf("expected formatted amount in %s", html)
	}
}

func TestRenderEmptyPolicyList(t *testing.T) {
	r, _ := NewRenderer()

	html, err := r.Render("policy-list", BuildPolicyCards(nil))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(html, `id="policy-list"`) {
		t.Error("expected the container element")
	}
	if strings.Contains(html, "data-building") {
		t.Errorf("empty list should render no cards: %s", html)
	}
}

func TestRenderIdempotence(t *testing.T) {
	r, _ := NewRenderer()
	customer := &client.Customer{FirstName: "Ayşe", FullName: "Ayşe Demir"}
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	payments := []client.Payment{{PolicyNumber: "DSK-1", Amount: decimal.NewFromInt(1200), PaymentDate: "2025-08-01"}}
	ov := BuildOverview(customer, testStats(), payments, now)

	first, err := r.Render("overview", ov)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, _ := r.Render("overview", ov)

	if first != second {
		t.Error("rendering the same view model twice should yield identical output")
	}
	if !strings.Contains(first, "Hoş Geldiniz, Ayşe!") {
		t.Error("expected the welcome heading")
	}
	if count := strings.Count(first, "<li class=\"activity"); count != 3 {
		t.Errorf("expected 3 activity rows, got %d", count)
	}
}

func TestModalStates(t *testing.T) {
	m := NewModal()

	if !m.IsLoading() || m.IsError() {
		t.Error("new modal should be loading")
	}

	m.ShowContent("<p>detay</p>")
	if m.State() != ModalContent || m.IsLoading() || m.IsError() {
		t.Error("content state should exclude the others")
	}

	m.ShowError("sunucu hatası")
	if !m.IsError() || m.Content() != "" {
		t.Error("error state should clear content")
	}

	m.Reset()
	if !m.IsLoading() || m.Message() != "" {
		t.Error("reset should return to loading")
	}
}

func TestRenderModalError(t *testing.T) {
	r, _ := NewRenderer()
	m := NewModal()
	m.ShowError("sunucu hatası")

	html, err := r.Render("modal", m)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(html, "Hata: sunucu hatası") {
		t.Errorf("expected error text in %s", html)
	}
	if strings.Contains(html, "modal-loading") || strings.Contains(html, "modal-content") {
		t.Errorf("error modal should render only the error block: %s", html)
	}
}
