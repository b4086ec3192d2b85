// Package netx picks the LAN address advertised to the pairing device.
package netx

import (
	"errors"
	"net"
)

// ErrNoLANAddress is returned when no interface carries a private IPv4
// address. Without one the QR code would point nowhere reachable.
var ErrNoLANAddress = errors.New("no LAN IPv4 address found")

// LANIPv4 returns the first private, non-loopback IPv4 address of this host.
func LANIPv4() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	return firstLANIPv4(addrs)
}

func firstLANIPv4(addrs []net.Addr) (string, error) {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}

		ip := ipNet.IP.To4()
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if !ip.IsPrivate() {
			continue
		}

		return ip.String(), nil
	}
	return "", ErrNoLANAddress
}
