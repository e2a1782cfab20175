package view

import (
	"fmt"
	"html/template"
	"strings"
)

// Renderer turns view models into section HTML. Rendering is pure:
// the same view model always yields the same markup.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the section templates
func NewRenderer() (*Renderer, error) {
	tmpl := template.New("sections")
	for name, text := range sectionTemplates {
		var err error
		tmpl, err = tmpl.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// SafeHTML marks already-rendered section markup as safe for reuse
// inside another template, such as the modal's content block.
func SafeHTML(s string) template.HTML { return template.HTML(s) }

// Render executes the named section template
func (r *Renderer) Render(name string, data interface{}) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return b.String(), nil
}

var sectionTemplates = map[string]string{
	"overview": `<section id="overview" class="dashboard-section">
  <h1 class="welcome">{{.Welcome}}</h1>
  <div class="status-cards">
    <div class="card policy-status"><span class="badge {{.PolicyBadge}}">{{.PolicyStatus}}</span></div>
    <div class="card coverage"><span class="value">{{.TotalCoverage}}</span></div>
    <div class="card policies"><span class="value">{{.PolicyCount}}</span></div>
    <div class="card next-payment"><span class="value">{{.DaysToPayment}}</span><span class="premium">{{.MonthlyPremium}}</span></div>
  </div>
  <div class="member-tier">
    <span class="tier-icon">{{.TierIcon}}</span>
    <span class="tier-name">{{.TierName}}</span>
    <div class="score-progress"><div class="bar" style="width: {{.ScoreProgress}}"></div></div>
    <span class="score">{{.CustomerScore}}</span>
  </div>
  <div class="referral">
    <span class="code">{{.ReferralCode}}</span>
    <span class="earnings">{{.ReferralEarning}}</span>
  </div>
  <ul class="activity-list">
{{- range .Activities}}
    <li class="activity {{.Kind}}"><i class="fa-{{.Icon}}"></i><span class="title">{{.Title}}</span><span class="detail">{{.Detail}}</span>{{if .Date}}<span class="date">{{.Date}}</span>{{end}}</li>
{{- end}}
  </ul>
</section>
`,

	"policy-list": `<div id="policy-list" class="policy-cards">
{{- range .}}
  <div class="policy-card{{if .Expired}} expired{{end}}" data-building="{{.BuildingID}}">
    <h3>{{.Title}}</h3>
    <span class="badge {{.BadgeClass}}">{{.BadgeText}}</span>
    <p class="address">{{.Address}}</p>
    <p class="package">{{.Package}}</p>
    <p class="coverage">{{.Coverage}}</p>
    <p class="premium">{{.Premium}}/ay</p>
    <p class="dates">{{.StartDate}} - {{.EndDate}}</p>
    <div class="risk-bar"><div class="fill" style="width: {{.RiskWidth}}; background-color: {{.RiskColor}}"></div></div>
  </div>
{{- end}}
</div>
`,

	"payments": `<table id="payments" class="payments-table">
  <tbody>
{{- range .}}
    <tr class="payment-row {{.StatusClass}}">
      <td><i class="fa-{{.StatusIcon}}"></i><span class="status">{{.StatusText}}</span></td>
      <td>{{.PolicyNumber}}</td>
      <td>{{.Address}}</td>
      <td class="amount">{{.Amount}}</td>
      <td>{{.Date}}</td>
      <td>{{.Method}}</td>
      <td><button class="action">{{.ActionLabel}}</button></td>
    </tr>
{{- else}}
    <tr class="empty"><td colspan="7">Henüz ödeme kaydı bulunmuyor</td></tr>
{{- end}}
  </tbody>
</table>
`,

	"policy-details": `<section id="policy-details" class="detail-panel">
  <h2>{{.PolicyNumber}}</h2>
  <span class="package">{{.Package}}</span>
  <span class="status">{{.Status}}</span>
  <dl class="dates">
    <dt>Başlangıç</dt><dd>{{.StartDate}}</dd>
    <dt>Bitiş</dt><dd>{{.EndDate}}</dd>
    <dt>Yenileme</dt><dd>{{.RenewalDate}}</dd>
  </dl>
  <dl class="coverage">
    <dt>Teminat</dt><dd>{{.Coverage}}</dd>
    <dt>Sigorta Bedeli</dt><dd>{{.InsuranceValue}}</dd>
    <dt>Muafiyet</dt><dd>{{.Deductible}}</dd>
    <dt>Yıllık Prim</dt><dd>{{.AnnualPremium}}</dd>
    <dt>Aylık Prim</dt><dd>{{.MonthlyPremium}}</dd>
  </dl>
  <div class="building">
    <p class="address">{{.Address}}, {{.District}}/{{.City}}</p>
    <p>{{.StructureType}}, {{.Floors}} kat, {{.AreaM2}}, {{.BuildingAge}} yaşında</p>
  </div>
  <div class="risk">
    <span class="score">{{.RiskScore}}</span>
    <span class="level">{{.RiskLevel}}</span>
    <div class="risk-bar"><div class="fill" style="width: {{.RiskWidth}}; background-color: {{.RiskColor}}"></div></div>
    <p>Zemin: {{.SoilType}}, Sıvılaşma: {{.Liquefaction}}, Fay: {{.NearestFault}} ({{.FaultDistance}})</p>
  </div>
  <dl class="coverage-details">
{{- range .CoverageRows}}
    <dt>{{.Label}}</dt><dd>{{.Value}}</dd>
{{- end}}
  </dl>
</section>
`,

	"modal": `<div class="modal">
{{- if .IsLoading}}
  <div class="modal-loading"><div class="spinner"></div></div>
{{- else if .IsError}}
  <div class="modal-error">Hata: {{.Message}}</div>
{{- else}}
  <div class="modal-content">{{.Content}}</div>
{{- end}}
</div>
`,
}
