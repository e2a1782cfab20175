package notify

import (
	"strings"
	"testing"
)

func TestLeveledMessages(t *testing.T) {
	var buf strings.Builder
	n := NewWithWriter(&buf)

	n.Success("Ayar kaydedildi!")
	n.Error("Ödeme geçmişi yüklenemedi")
	n.Info("Lütfen giriş yapın")

	msgs := n.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len = %d", len(msgs))
	}
	if msgs[0].Level != LevelSuccess || msgs[0].Text != "Ayar kaydedildi!" {
		t.Errorf("msgs[0] = %+v", msgs[0])
	}
	if msgs[1].Level != LevelError {
		t.Errorf("msgs[1] = %+v", msgs[1])
	}

	out := buf.String()
	if !strings.Contains(out, "✓ Ayar kaydedildi!") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "✗ Ödeme geçmişi yüklenemedi") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "• Lütfen giriş yapın") {
		t.Errorf("output = %q", out)
	}
}

func TestFormattedMessages(t *testing.T) {
	var buf strings.Builder
	n := NewWithWriter(&buf)

	n.Successf("Hoşgeldiniz, %s!", "Ayşe Demir")
	n.Errorf("Hata: %s", "sunucu hatası")

	if !strings.Contains(buf.String(), "Hoşgeldiniz, Ayşe Demir!") {
		t.Errorf("output = %q", buf.String())
	}
	if got := n.Messages()[1].Text; got != "Hata: sunucu hatası" {
		t.Errorf("text = %q", got)
	}
}
