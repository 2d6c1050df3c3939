package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleServices = `
# Network services, Internet style
tcpmux		1/tcp				# TCP port service multiplexer
ssh		22/tcp				# SSH Remote Login Protocol
domain		53/tcp
domain		53/udp
http		80/tcp		www		# WorldWideWeb HTTP
www-alt		80/tcp
bogus		notaport/tcp
short
custom-db	47001/tcp	cdb
syslog		514/udp
`

func TestLookup_BuiltIn(t *testing.T) {
	r := New()
	cases := map[int]string{
		22:    "ssh",
		80:    "http",
		443:   "https",
		5432:  "postgresql",
		47123: Unknown,
		0:     Unknown,
	}
	for port, want := range cases {
		if got := r.Lookup(port); got != want {
			t.Errorf("Lookup(%d) = %q, want %q", port, got, want)
		}
		// idempotent
		if got := r.Lookup(port); got != want {
			t.Errorf("second Lookup(%d) = %q, want %q", port, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(sampleServices))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Service{
		{Port: 1, Name: "tcpmux"},
		{Port: 22, Name: "ssh"},
		{Port: 53, Name: "domain"},
		{Port: 80, Name: "http"},
		{Port: 47001, Name: "custom-db"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLoadFile_MergesOverBuiltIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services")
	if err := os.WriteFile(path, []byte(sampleServices), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := New()
	before := r.Len()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := r.Lookup(47001); got != "custom-db" {
		t.Fatalf("Lookup(47001) = %q, want custom-db", got)
	}
	if got := r.Lookup(22); got != "ssh" {
		t.Fatalf("Lookup(22) = %q, want ssh", got)
	}
	if r.Len() != before+1 {
		t.Fatalf("Len() = %d, want %d", r.Len(), before+1)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	r := New()
	if err := r.LoadFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if r.Lookup(22) != "ssh" {
		t.Fatal("built-in table changed after failed load")
	}
}

func TestAll_SortedByPort(t *testing.T) {
	all := New().All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Port >= all[i].Port {
			t.Fatalf("entries %v and %v out of order", all[i-1], all[i])
		}
	}
}

func TestSearch(t *testing.T) {
	r := New()

	got := r.Search("postgres")
	if len(got) == 0 || got[0].Name != "postgresql" {
		t.Fatalf("Search(postgres) = %v, want postgresql first", got)
	}

	got = r.Search("ssh")
	if len(got) == 0 || got[0] != (Service{Port: 22, Name: "ssh"}) {
		t.Fatalf("Search(ssh) = %v, want ssh first", got)
	}

	got = r.Search("http")
	if len(got) < 2 || got[0].Name != "http" || !strings.HasPrefix(got[1].Name, "http") {
		t.Fatalf("Search(http) = %v, want http then prefix matches", got)
	}

	if got := r.Search("zzzzqqq"); len(got) != 0 {
		t.Fatalf("Search(zzzzqqq) = %v, want nothing", got)
	}
}
