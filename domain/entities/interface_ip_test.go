package entities

import "testing"

func TestInterfaceIP_Add(t *testing.T) {
	ip := make(InterfaceIP)
	ip.Add("1/1/1", FamilyIPv4, "10.0.0.1", 24)
	ip.Add("1/1/1", FamilyIPv4, "10.0.1.1", 30)
	ip.Add("1/1/1", FamilyIPv6, "2001:db8::1", 64)
	ip.Add("ve 10", FamilyIPv4, "192.168.10.1", 24)

	if len(ip) != 2 {
		t.Fatalf("expected 2 ports, got %d", len(ip))
	}
	if got := ip["1/1/1"][FamilyIPv4]["10.0.1.1"].PrefixLength; got != 30 {
		t.Errorf("prefix length = %d, want 30", got)
	}
	if got := len(ip["1/1/1"][FamilyIPv4]); got != 2 {
		t.Errorf("ipv4 address count = %d, want 2", got)
	}
	if got := ip["1/1/1"][FamilyIPv6]["2001:db8::1"].PrefixLength; got != 64 {
		t.Errorf("ipv6 prefix length = %d, want 64", got)
	}
	if _, ok := ip["ve 10"][FamilyIPv6]; ok {
		t.Errorf("unexpected ipv6 family for ve 10")
	}
}
