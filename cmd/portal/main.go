// DASK+ portal client: renders the customer dashboard from the API
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/daskplus/portal/internal/portal/client"
	"github.com/daskplus/portal/internal/portal/nav"
	"github.com/daskplus/portal/internal/portal/notify"
	"github.com/daskplus/portal/internal/portal/session"
	"github.com/daskplus/portal/internal/portal/view"
)

const requestTimeout = 30 * time.Second

func main() {
	apiURL := flag.String("api", envOr("DASKPLUS_API", "http://localhost:8080"), "customer API base URL")
	sessionFile := flag.String("session-file", "", "session file path (default: user config dir)")
	outFile := flag.String("out", "", "write rendered HTML to this file instead of stdout")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	path := *sessionFile
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	store, err := session.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	app := &app{
		baseURL: strings.TrimRight(*apiURL, "/"),
		store:   store,
		notify:  notify.New(),
		render:  renderer,
		out:     out,
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := app.run(ctx, args[0], args[1:]); err != nil {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Kullanım: portal [seçenekler] <komut>

Komutlar:
  login <e-posta> <şifre>     Giriş yap
  dashboard                   Panoyu görüntüle
  policies                    Poliçeleri listele
  policy-details [bina-no]    Poliçe detaylarını göster
  payments                    Ödeme geçmişini görüntüle
  claims                      Hasar taleplerini listele
  claim <poliçe> <tarih> <açıklama>
                              Hasar bildirimi gönder
  settings <ad> <değer>       Ayar kaydet
  darkmode on|off             Karanlık modu değiştir
  logout                      Çıkış yap

Seçenekler:
`)
	flag.PrintDefaults()
}

type app struct {
	baseURL string
	store   *session.Store
	notify  *notify.Notifier
	render  *view.Renderer
	out     io.Writer
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "dashboard":
		return a.sections().Activate(ctx, "overview")
	case "policies", "payments", "claims":
		return a.sections().Activate(ctx, command)
	case "policy-details":
		if len(args) > 0 {
			return a.policyDetails(ctx, args)
		}
		return a.sections().Activate(ctx, "policy-details")
	case "claim":
		return a.claim(ctx, args)
	case "settings":
		return a.settings(args)
	case "darkmode":
		return a.darkMode(args)
	case "logout":
		return a.logout(ctx)
	default:
		fmt.Fprintf(os.Stderr, "bilinmeyen komut: %s\n", command)
		usage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireClient resolves the stored session into an API client. A
// missing session tells the user to sign in instead of failing with a
// 401 later.
func (a *app) requireClient() (*client.Client, error) {
	sess, err := a.store.Require()
	if err != nil {
		if errors.Is(err, session.ErrSessionMissing) {
			a.notify.Info("Lütfen giriş yapın")
		} else {
			a.notify.Error("Oturum bilgisi okunamadı")
		}
		return nil, err
	}
	return client.New(a.baseURL, sess.Token, sess.CustomerID), nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "kullanım: portal login <e-posta> <şifre>")
		return errors.New("bad arguments")
	}

	result, err := client.Login(ctx, a.baseURL, args[0], args[1])
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			a.notify.Error(apiErr.Message)
		} else {
			a.notify.Error("Bağlantı hatası. Lütfen daha sonra tekrar deneyiniz.")
		}
		return err
	}

	if err := a.store.SetSession(result.Token, result.Customer.CustomerID, result.Customer.FullName, result.Customer.Email); err != nil {
		a.notify.Error("Oturum kaydedilemedi")
		return err
	}

	a.notify.Successf("Hoşgeldiniz, %s!", result.Customer.Name)
	return nil
}

// dashboard fetches the profile first and aborts when it fails; the
// remaining sections are fetched concurrently since none depends on
// another.
func (a *app) dashboard(ctx context.Context) error {
	c, err := a.requireClient()
	if err != nil {
		return err
	}

	customer, err := c.Customer(ctx)
	if err != nil {
		a.notify.Error("Müşteri bilgileri yüklenemedi")
		return err
	}

	var (
		wg       sync.WaitGroup
		stats    *client.Stats
		policies []client.PolicySummary
		payments []client.Payment

		statsErr, policiesErr, paymentsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		stats, statsErr = c.DashboardStats(ctx)
	}()
	go func() {
		defer wg.Done()
		policies, policiesErr = c.CustomerPolicies(ctx)
	}()
	go func() {
		defer wg.Done()
		payments, paymentsErr = c.PaymentHistory(ctx)
	}()
	wg.Wait()

	if statsErr != nil {
		a.notify.Error("Pano verileri yüklenemedi")
		return statsErr
	}

	// The stored copies let other commands and a future offline view
	// reuse the last known payloads.
	a.store.Mirror("dashboard_stats", stats)

	overview := view.BuildOverview(customer, stats, payments, time.Now())
	html, err := a.render.Render("overview", overview)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, html)

	if policiesErr == nil {
		a.store.Mirror("customer_policies", policies)
		cards, err := a.render.Render("policy-list", view.BuildPolicyCards(policies))
		if err == nil {
			fmt.Fprintln(a.out, cards)
		}
	} else {
		a.notify.Error("Poliçeler yüklenemedi")
	}

	if paymentsErr == nil {
		table, err := a.render.Render("payments", view.BuildPaymentRows(payments))
		if err == nil {
			fmt.Fprintln(a.out, table)
		}
	} else {
		a.notify.Error("Ödeme geçmişi yüklenemedi")
	}

	return nil
}

// sections returns the dashboard navigation with each section's loader
// bound to its fetch-and-render command.
func (a *app) sections() *nav.Nav {
	n := nav.New()
	n.Register("overview", "Genel Bakış", func(ctx context.Context) error {
		return a.dashboard(ctx)
	})
	n.Register("policies", "Poliçelerim", func(ctx context.Context) error {
		return a.policies(ctx)
	})
	n.Register("policy-details", "Poliçe Detayları", func(ctx context.Context) error {
		return a.policyDetails(ctx, nil)
	})
	n.Register("payments", "Ödemeler", func(ctx context.Context) error {
		return a.payments(ctx)
	})
	n.Register("claims", "Hasar Talepleri", func(ctx context.Context) error {
		return a.claims(ctx)
	})
	return n
}

func (a *app) policies(ctx context.Context) error {
	c, err := a.requireClient()
	if err != nil {
		return err
	}

	policies, err := c.CustomerPolicies(ctx)
	if err != nil {
		a.notify.Error("Poliçeler yüklenemedi")
		return err
	}

	html, err := a.render.Render("policy-list", view.BuildPolicyCards(policies))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, html)
	return nil
}

// policyDetails drives the detail modal: it starts loading, swaps to
// the rendered panel on success and to the error message on failure.
func (a *app) policyDetails(ctx context.Context, args []string) error {
	c, err := a.requireClient()
	if err != nil {
		return err
	}

	buildingID := ""
	if len(args) > 0 {
		buildingID = args[0]
	}

	modal := view.NewModal()

	details, err := c.PolicyDetails(ctx, buildingID)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			modal.ShowError(apiErr.Message)
		} else {
			modal.ShowError("Poliçe detayları yüklenemedi")
		}
	} else {
		panel, rerr := a.render.Render("policy-details", view.BuildPolicyDetail(details))
		if rerr != nil {
			return rerr
		}
		modal.ShowContent(view.SafeHTML(panel))
		a.store.Mirror("current_policy", details)
	}

	html, rerr := a.render.Render("modal", modal)
	if rerr != nil {
		return rerr
	}
	fmt.Fprintln(a.out, html)
	return err
}

func (a *app) payments(ctx context.Context) error {
	c, err := a.requireClient()
	if err != nil {
		return err
	}

	payments, err := c.PaymentHistory(ctx)
	if err != nil {
		a.notify.Error("Ödeme geçmişi yüklenemedi")
		return err
	}

	html, err := a.render.Render("payments", view.BuildPaymentRows(payments))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, html)
	return nil
}

func (a *app) claims(ctx context.Context) error {
	c, err := a.requireClient()
	if err != nil {
		return err
	}

	claims, err := c.ClaimHistory(ctx)
	if err != nil {
		a.notify.Error("Hasar talepleri yüklenemedi")
		return err
	}

	if len(claims) == 0 {
		a.notify.Info("Henüz hasar talebi bulunmuyor")
		return nil
	}
	for _, cl := range claims {
		fmt.Fprintf(a.out, "%s  %s  %s  %s\n", cl.ClaimRef, cl.PolicyNumber, view.LongDate(cl.IncidentDate), cl.Status)
	}
	return nil
}

func (a *app) claim(ctx context.Context, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "kullanım: portal claim <poliçe-no> <tarih> <açıklama>")
		return errors.New("bad arguments")
	}

	c, err := a.requireClient()
	if err != nil {
		return err
	}

	description := strings.Join(args[2:], " ")
	result, err := c.SubmitClaim(ctx, args[0], args[1], description)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			a.notify.Error(apiErr.Message)
		} else {
			a.notify.Error("Hasar bildirimi gönderilemedi")
		}
		return err
	}

	a.notify.Success("Hasar raporunuz başarıyla gönderildi! En kısa sürede sizinle iletişime geçeceğiz.")
	a.notify.Infof("Talep numarası: %s", result.ClaimRef)
	return nil
}

func (a *app) settings(args []string) error {
	if len(args) == 2 && args[0] == "darkmode" {
		return a.darkMode(args[1:])
	}
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "kullanım: portal settings <ad> <değer>")
		return errors.New("bad arguments")
	}

	if err := a.store.SetSetting(args[0], args[1]); err != nil {
		a.notify.Error("Ayar kaydedilemedi")
		return err
	}
	a.notify.Success("Ayar kaydedildi!")
	return nil
}

func (a *app) darkMode(args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintln(os.Stderr, "kullanım: portal darkmode on|off")
		return errors.New("bad arguments")
	}

	if err := a.store.SetDarkMode(args[0] == "on"); err != nil {
		a.notify.Error("Ayar kaydedilemedi")
		return err
	}
	a.notify.Success("Ayar kaydedildi!")
	return nil
}

func (a *app) logout(ctx context.Context) error {
	sess, err := a.store.Require()
	if err == nil {
		c := client.New(a.baseURL, sess.Token, sess.CustomerID)
		if err := c.Logout(ctx); err != nil {
			// Local state is cleared regardless; the server session
			// expires on its own.
			a.notify.Error("Sunucu oturumu kapatılamadı")
		}
	}

	if err := a.store.Clear(); err != nil {
		a.notify.Error("Oturum temizlenemedi")
		return err
	}
	a.notify.Success("Çıkış yapıldı")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
