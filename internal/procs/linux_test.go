//go:build linux

package procs

import (
	"reflect"
	"testing"
)

func TestParseLsof(t *testing.T) {
	out := []byte(`COMMAND   PID USER   FD   TYPE DEVICE SIZE/OFF NODE NAME
sshd      812 root    3u  IPv4  21391      0t0  TCP *:22 (LISTEN)
sshd      812 root    4u  IPv6  21393      0t0  TCP *:22 (LISTEN)
postgres 1044 pg      5u  IPv6  24588      0t0  TCP [::1]:5432 (LISTEN)
node     2210 dev    21u  IPv4  51021      0t0  TCP 127.0.0.1:3000 (LISTEN)
garbage line
`)
	want := []Owner{
		{Port: 22, PID: 812, Process: "sshd", User: "root", Address: "*"},
		{Port: 5432, PID: 1044, Process: "postgres", User: "pg", Address: "[::1]"},
		{Port: 3000, PID: 2210, Process: "node", User: "dev", Address: "127.0.0.1"},
	}
	if got := parseLsof(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
}

func TestParseSS(t *testing.T) {
	out := []byte(`State  Recv-Q Send-Q Local Address:Port  Peer Address:Port Process
LISTEN 0      128          0.0.0.0:22         0.0.0.0:*     users:(("sshd",pid=812,fd=3))
LISTEN 0      244        127.0.0.1:5432       0.0.0.0:*     users:(("postgres",pid=1044,fd=5))
LISTEN 0      4096            [::]:22            [::]:*     users:(("sshd",pid=812,fd=4))
LISTEN 0      511                *:8080             *:*
`)
	want := []Owner{
		{Port: 22, PID: 812, Process: "sshd", Address: "0.0.0.0"},
		{Port: 5432, PID: 1044, Process: "postgres", Address: "127.0.0.1"},
		{Port: 8080, Address: "*"},
	}
	if got := parseSS(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
}
