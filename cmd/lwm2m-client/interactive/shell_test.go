package interactive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

type setCall struct {
	objectID, instanceID, resourceID uint16
	value                            string
}

type fakeValues struct {
	calls []setCall
}

func (f *fakeValues) Set(objectID, instanceID, resourceID uint16, value string) {
	f.calls = append(f.calls, setCall{objectID, instanceID, resourceID, value})
}

func newTestShell(t *testing.T) (*Shell, *client.Client, *bytes.Buffer, *fakeValues) {
	t.Helper()
	c := client.New(client.DefaultConfig())
	if err := c.Configure("dev", nil, nil); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	var out bytes.Buffer
	values := &fakeValues{}
	return NewWithWriter(c, values, &out), c, &out, values
}

func TestShellServerCommands(t *testing.T) {
	sh, c, out, _ := newTestShell(t)

	sh.Execute("add 1 coap://a 300")
	sh.Execute("add 2 coaps+tcp://b 0 psk q")
	if got := len(c.Servers()); got != 2 {
		t.Fatalf("servers = %d, want 2\n%s", got, out)
	}
	s2, _ := c.Server(2)
	if s2.SecurityMode != client.SecurityPreSharedKey || !s2.QueueMode {
		t.Errorf("server 2 = %+v", s2)
	}

	out.Reset()
	sh.Execute("servers")
	if !strings.Contains(out.String(), "coap://a") || !strings.Contains(out.String(), "TQ") {
		t.Errorf("servers output:\n%s", out)
	}

	out.Reset()
	sh.Execute("add 1 coap://dup")
	if !strings.Contains(out.String(), "FORBIDDEN") {
		t.Errorf("duplicate add output: %s", out)
	}

	sh.Execute("remove all")
	if got := len(c.Servers()); got != 0 {
		t.Errorf("servers after remove all = %d", got)
	}

	out.Reset()
	sh.Execute("heartbeat")
	if !strings.Contains(out.String(), "PRECONDITION_FAILED") {
		t.Errorf("heartbeat output: %s", out)
	}
}

func TestShellSettings(t *testing.T) {
	sh, c, out, _ := newTestShell(t)
	sh.Execute("add 1 coap://a")

	out.Reset()
	sh.Execute("setting 1 lifetime 120")
	if !strings.Contains(out.String(), "LIFETIME = 120") {
		t.Errorf("setting output: %s", out)
	}

	sh.Execute("setting 1 binding UT")
	s, _ := c.Server(1)
	if s.Binding != client.BindingUDP|client.BindingTCP {
		t.Errorf("binding = %s", s.Binding)
	}

	sh.Execute("periods all 5 50")
	s, _ = c.Server(1)
	if s.DefaultMinPeriod != 5 || s.DefaultMaxPeriod != 50 {
		t.Errorf("periods = %d/%d", s.DefaultMinPeriod, s.DefaultMaxPeriod)
	}

	out.Reset()
	sh.Execute("setting 1 coap-ack-timeout")
	if !strings.Contains(out.String(), "Error") {
		t.Errorf("unset ack timeout output: %s", out)
	}

	out.Reset()
	sh.Execute("setting 1 bogus")
	if !strings.Contains(out.String(), "unknown setting") {
		t.Errorf("bogus setting output: %s", out)
	}
}

func TestShellObjectCommands(t *testing.T) {
	sh, c, out, values := newTestShell(t)

	data := model.DataHandlerFunc(func(model.DataOperation, uint16, []model.Value) ([]model.Value, error) { return nil, nil })
	res := []model.ResourceDescriptor{{ID: 1, Type: model.TypeString, Operations: model.OpRead}}
	if err := c.AddCustomObject(5000, []uint16{0}, res, model.Handlers{Data: data}); err != nil {
		t.Fatal(err)
	}

	sh.Execute("lock")
	if !c.NotificationsLocked() {
		t.Error("lock did not lock notifications")
	}
	sh.Execute("set 5000 0 1 hello")
	sh.Execute("unlock")
	if c.NotificationsLocked() {
		t.Error("unlock did not unlock notifications")
	}
	if len(values.calls) != 1 || values.calls[0].value != "hello" {
		t.Errorf("values = %+v", values.calls)
	}

	sh.Execute("create 5000 3")
	ids, _ := c.ObjectInstances(5000)
	if len(ids) != 2 || ids[1] != 3 {
		t.Errorf("instances = %v", ids)
	}
	sh.Execute("delete 5000 0")

	out.Reset()
	sh.Execute("objects")
	if !strings.Contains(out.String(), "/5000  instances: [3]") {
		t.Errorf("objects output: %s", out)
	}
}

func TestShellScheduling(t *testing.T) {
	sh, c, out, _ := newTestShell(t)

	sh.Execute("time 500")
	if c.Now() != 500 {
		t.Errorf("Now() = %d", c.Now())
	}

	out.Reset()
	sh.Execute("delay")
	if !strings.Contains(out.String(), "none") {
		t.Errorf("delay output: %s", out)
	}

	sh.Execute("add 1 coap://a")
	if err := c.SetServerState(1, client.StateRegistered, 0); err != nil {
		t.Fatal(err)
	}
	sh.Execute("observe 1 /3303/0/5700 30")

	out.Reset()
	sh.Execute("delay")
	if !strings.Contains(out.String(), "next wake: 30s") {
		t.Errorf("delay output: %s", out)
	}
}

func TestShellQuitAndUnknown(t *testing.T) {
	sh, _, out, _ := newTestShell(t)

	if sh.Execute("") {
		t.Error("empty line must not quit")
	}
	if sh.Execute("frobnicate") {
		t.Error("unknown command must not quit")
	}
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("output: %s", out)
	}
	if !sh.Execute("quit") {
		t.Error("quit must end the shell")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Path
		wantErr bool
	}{
		{"/3", model.ObjectPath(3), false},
		{"3/0", model.InstancePath(3, 0), false},
		{"/3/0/1", model.ResourcePath(3, 0, 1), false},
		{"/", model.Path{}, true},
		{"/3/x", model.Path{}, true},
		{"/1/2/3/4", model.Path{}, true},
	}
	for _, tt := range tests {
		got, err := parsePath(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePath(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBinding(t *testing.T) {
	b, err := parseBinding("uq")
	if err != nil || b != client.BindingUDP|client.BindingQueue {
		t.Errorf("parseBinding(uq) = %v, %v", b, err)
	}
	if _, err := parseBinding("x"); err == nil {
		t.Error("expected error")
	}
}
