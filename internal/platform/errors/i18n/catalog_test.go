package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	if fallback := GetCatalog("missing-locale"); fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if empty := GetCatalog(""); empty != base {
		t.Fatal("expected empty locale to use en-US catalog")
	}
}

func TestGetCatalogNegotiatesAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"pt-BR,pt;q=0.9,en;q=0.5", "pt-BR"},
		{"en-GB", BaseLocale},
		{"fr-FR", BaseLocale},
		{";;;", BaseLocale},
	}
	for _, tt := range tests {
		if got := GetCatalog(tt.header).Locale(); got != tt.want {
			t.Fatalf("GetCatalog(%q).Locale() = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUSCatalog.messages {
		if _, ok := ptBRCatalog.messages[code]; !ok {
			t.Fatalf("pt-BR catalog missing %s", code)
		}
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("de-DE", map[Code]string{"code": "ok"})
	RegisterCatalog("de-DE", custom)
	if got := GetCatalog("de-DE"); got != custom {
		t.Fatal("expected registered catalog")
	}
	if got := GetCatalog("de"); got != custom {
		t.Fatal("expected matcher to pick up registered catalog")
	}
}
