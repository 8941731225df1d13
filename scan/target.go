package scan

import (
	"errors"
	"net"

	"github.com/google/gopacket/macs"
	"github.com/mostlygeek/arp"
)

// lookupIP is swapped out in tests.
var lookupIP = net.LookupIP

// Target is a resolved scan target.
type Target struct {
	Host         string
	IP           net.IP
	MAC          string
	Manufacturer string
}

// Resolve turns a hostname or literal address into the first IPv4 address it
// resolves to. IPv6 addresses are skipped.
func Resolve(host string) (Target, error) {

	target := Target{Host: host}

	ip, err := resolveIPv4(host)
	if err != nil {
		return target, err
	}
	target.IP = ip

	// only local devices show up in the arp cache
	macStr := arp.Search(ip.String())
	if macStr != "" && macStr != "00:00:00:00:00:00" {
		if mac, err := net.ParseMAC(macStr); err == nil && len(mac) >= 3 {
			target.MAC = mac.String()
			prefix := [3]byte{
				mac[0],
				mac[1],
				mac[2],
			}
			if manufacturer, ok := macs.ValidMACPrefixMap[prefix]; ok {
				target.Manufacturer = manufacturer
			}
		}
	}

	return target, nil
}

func resolveIPv4(host string) (net.IP, error) {

	if host == "" {
		return nil, &ResolutionError{Host: host, Err: errors.New("empty host")}
	}

	if ip := net.ParseIP(host); ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4, nil
		}
		return nil, &ResolutionError{Host: host, Err: errors.New("IPv6 addresses are not supported")}
	}

	ips, err := lookupIP(host)
	if err != nil {
		return nil, &ResolutionError{Host: host, Err: err}
	}

	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4, nil
		}
	}

	return nil, &ResolutionError{Host: host, Err: errors.New("no IPv4 address found")}
}
