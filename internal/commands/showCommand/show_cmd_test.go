package showCommand

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/config"
	"github.com/redjax/sysfacts/internal/constants"
	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
	sysctlservice "github.com/redjax/sysfacts/internal/services/sysctlService"
)

func testKernel(t *testing.T) sysctlservice.Kernel {
	t.Helper()
	tree, err := sysctlservice.NewTree(
		sysctlservice.Node{Path: sysctlservice.KeyPath{1, 1}, Name: "kern.ostype", Read: sysctlservice.StaticString("Darwin")},
		sysctlservice.Node{Path: sysctlservice.KeyPath{6, 24}, Name: "hw.memsize", Read: sysctlservice.StaticValue(uint64(1 << 34))},
	)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func runShowKey(t *testing.T, arg, as string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := showKey(cmd, testKernel(t), constants.DarwinKeys(), arg, as)
	return buf.String(), err
}

func TestShowKeyByName(t *testing.T) {
	out, err := runShowKey(t, "kern.ostype", "string")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"name: kern.ostype\n", "path: 1.1\n", "size: 7\n", "value: Darwin\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowKeyByPath(t *testing.T) {
	out, err := runShowKey(t, "6.24", "uint64")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "name:") || !strings.Contains(out, "value: 17179869184\n") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestShowKeyWrongWidth(t *testing.T) {
	if _, err := runShowKey(t, "6.24", "int32"); err == nil {
		t.Fatal("expected a size mismatch")
	}
	if _, err := runShowKey(t, "kern.nope", "string"); err == nil {
		t.Fatal("expected an unknown name error")
	}
}

func TestDecodeAs(t *testing.T) {
	if v, err := decodeAs([]byte{0xde, 0xad}, "hex"); err != nil || v != "dead" {
		t.Fatalf("hex = %q, %v", v, err)
	}
	if _, err := decodeAs([]byte{1}, "float"); err == nil {
		t.Fatal("expected unknown kind error")
	}
}

func TestPrintProperties(t *testing.T) {
	info := &platformservice.PlatformInfo{Sections: []platformservice.Section{
		{Key: platformservice.SectionSystem, Fields: []platformservice.Field{
			{Key: "hostname", Label: "Hostname", Value: "test-host.local"},
		}},
	}}

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := printProperties(cmd, info, []string{"HOSTNAME", "ram_size"}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hostname: test-host.local\nram_size: nil\n" {
		t.Fatalf("output = %q", buf.String())
	}
	if err := printProperties(cmd, info, []string{"uptime"}); err == nil {
		t.Fatal("expected unknown property error")
	}
}

func TestWriteProfile(t *testing.T) {
	p, err := platformservice.ProfileByID("ios")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeProfile(&buf, p)
	for _, want := range []string{"hostname", "1.10", "bridge", "awdl0"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("profile table missing %q:\n%s", want, buf.String())
		}
	}
}

func TestShowKeyDefaultsToKnownKind(t *testing.T) {
	for _, arg := range []string{"hw.memsize", "6.24"} {
		out, err := runShowKey(t, arg, "")
		if err != nil {
			t.Fatalf("%s: %v", arg, err)
		}
		for _, want := range []string{"kind: uint64\n", "value: 17179869184\n", "human: 16.0 GB\n"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: output missing %q:\n%s", arg, want, out)
			}
		}
	}

	out, err := runShowKey(t, "kern.ostype", "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kind: string\n") || strings.Contains(out, "human:") {
		t.Fatalf("output:\n%s", out)
	}

	// An explicit --as wins over the known kind.
	out, err = runShowKey(t, "hw.memsize", "hex")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kind: hex\n") || strings.Contains(out, "human:") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestShowKeyUnlistedKeyDecodesAsString(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := showKey(cmd, testKernel(t), nil, "kern.ostype", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "kind: string\nvalue: Darwin\n") {
		t.Fatalf("output:\n%s", buf.String())
	}
}

func networkService(t *testing.T, ifaces ...string) *platformservice.Service {
	t.Helper()
	profile, err := platformservice.ProfileByID("macos")
	if err != nil {
		t.Fatal(err)
	}
	svc, err := platformservice.New(platformservice.Options{
		Profile:          &profile,
		Kernel:           testKernel(t),
		Interfaces:       platformservice.InterfaceListerFunc(func() ([]string, error) { return ifaces, nil }),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		CommandAvailable: func(string) bool { return false },
		DiscoverGateway:  func() (net.IP, error) { return net.ParseIP("10.0.0.1"), nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestShowNetworkStructuredOutputParses(t *testing.T) {
	svc := networkService(t, "en0", "awdl0", "awdl0")
	list := func() ([]platformservice.NetworkInterface, error) {
		t.Fatal("interface listing printed in json mode")
		return nil, nil
	}

	var buf bytes.Buffer
	settings := config.Defaults()
	settings.Format = "json"
	if err := showNetwork(&buf, svc, list, &settings); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Sections []struct {
			Key string `json:"key"`
		} `json:"sections"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, buf.String())
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Key != platformservice.SectionNetworking {
		t.Fatalf("sections = %+v", doc.Sections)
	}
}

func TestShowNetworkText(t *testing.T) {
	svc := networkService(t, "en0", "awdl0", "awdl0")
	list := func() ([]platformservice.NetworkInterface, error) {
		return []platformservice.NetworkInterface{{Name: "en0", HardwareAddress: "aa:bb:cc:dd:ee:ff"}}, nil
	}

	var buf bytes.Buffer
	settings := config.Defaults()
	if err := showNetwork(&buf, svc, list, &settings); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"  - en0 (aa:bb:cc:dd:ee:ff)\n",
		"Active interface records: en0, awdl0, awdl0\n",
		"Wi-Fi Enabled: true\n",
		"Default Gateway: 10.0.0.1\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}

	failing := func() ([]platformservice.NetworkInterface, error) { return nil, errors.New("boom") }
	if err := showNetwork(io.Discard, svc, failing, &settings); err == nil {
		t.Fatal("expected the listing error")
	}
}

func TestWriteKnownKeysAndNodes(t *testing.T) {
	p, err := platformservice.ProfileByID("macos")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeKnownKeys(&buf, p)
	for _, want := range []string{"hw.memsize", "6.24", "uint64", "bytes", constants.NameCPUBrand, "resolved by name"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("known keys missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	writeTreeNodes(&buf, testKernel(t).(*sysctlservice.Tree))
	out := buf.String()
	if i, j := strings.Index(out, "kern.ostype"), strings.Index(out, "hw.memsize"); i < 0 || j < i {
		t.Fatalf("tree nodes out of order:\n%s", out)
	}
}
