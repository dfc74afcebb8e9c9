package validate

import (
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"https", "https://blog.example.org", true},
		{"http", "http://example.org/blog", true},
		{"empty", "", false},
		{"no scheme", "blog.example.org", false},
		{"ftp", "ftp://example.org", false},
		{"no host", "https://", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			v.URL("url", tc.value)
			if v.IsValid() != tc.valid {
				t.Errorf("URL(%q): valid=%v, want %v (err: %v)", tc.value, v.IsValid(), tc.valid, v.Err())
			}
		})
	}
}

func TestTimezone(t *testing.T) {
	v := New()
	v.Timezone("timezone", "Etc/UTC")
	v.Timezone("timezone", "Europe/Vienna")
	if !v.IsValid() {
		t.Fatalf("valid timezones rejected: %v", v.Err())
	}

	v = New()
	v.Timezone("timezone", "Mars/Olympus_Mons")
	if v.IsValid() {
		t.Fatal("expected unknown timezone to fail")
	}
}

func TestLanguageTag(t *testing.T) {
	v := New()
	v.LanguageTag("lang", "en")
	v.LanguageTag("lang", "pt-BR")
	if !v.IsValid() {
		t.Fatalf("valid language tags rejected: %v", v.Err())
	}

	v = New()
	v.LanguageTag("lang", "no-such-lang-tag-at-all")
	if v.IsValid() {
		t.Fatal("expected bogus language tag to fail")
	}
}

func TestPathTemplate(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		placeholders int
		valid        bool
	}{
		{"all feed", "feeds/atom.xml", 0, true},
		{"category feed", "feeds/%s.atom.xml", 1, true},
		{"missing placeholder", "feeds/category.atom.xml", 1, false},
		{"extra placeholder", "feeds/%s/%s.xml", 1, false},
		{"wrong verb", "feeds/%d.atom.xml", 1, false},
		{"unexpected placeholder", "feeds/%s.xml", 0, false},
		{"absolute", "/feeds/%s.xml", 1, false},
		{"escaping", "../feeds/%s.xml", 1, false},
		{"empty", "", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			v.PathTemplate("feeds.categoryAtom", tc.value, tc.placeholders)
			if v.IsValid() != tc.valid {
				t.Errorf("PathTemplate(%q, %d): valid=%v, want %v (err: %v)",
					tc.value, tc.placeholders, v.IsValid(), tc.valid, v.Err())
			}
		})
	}
}

func TestErrorsAccumulate(t *testing.T) {
	v := New()
	v.NonEmpty("author", "")
	v.Positive("pagination", 0)
	v.URL("url", "not a url")

	err := v.Err()
	if err == nil {
		t.Fatal("expected accumulated error")
	}
	verrs, ok := err.(Errors)
	if !ok {
		t.Fatalf("expected validate.Errors, got %T", err)
	}
	if len(verrs.All()) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(verrs.All()), err)
	}
	for _, want := range []string{"author", "pagination", "url"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error string missing field %q: %s", want, err)
		}
	}
}
