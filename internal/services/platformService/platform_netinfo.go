package platformservice

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"
)

type NetworkInterface struct {
	Name            string   `json:"name" yaml:"name"`
	HardwareAddress string   `json:"hardware_address,omitempty" yaml:"hardware_address,omitempty"`
	Flags           []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	IPAddresses     []string `json:"ip_addresses,omitempty" yaml:"ip_addresses,omitempty"`
}

// NetworkInfo is the machine's network identity: its interfaces and default gateway.
type NetworkInfo struct {
	Interfaces []NetworkInterface `json:"interfaces" yaml:"interfaces"`
	GatewayIPs []string           `json:"gateways,omitempty" yaml:"gateways,omitempty"`
}

var reportedFlags = []net.Flags{
	net.FlagUp, net.FlagLoopback, net.FlagBroadcast,
	net.FlagMulticast, net.FlagPointToPoint,
}

// GatherNetworkInfo lists interfaces and discovers the default gateway. A
// missing gateway is not an error.
func GatherNetworkInfo() (*NetworkInfo, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("listing interfaces: %w", err)
	}

	info := &NetworkInfo{Interfaces: make([]NetworkInterface, 0, len(ifaces))}

	for _, iface := range ifaces {
		info.Interfaces = append(info.Interfaces, describeInterface(iface))
	}

	if gw, err := gateway.DiscoverGateway(); err == nil && gw != nil && !gw.Equal(net.IPv4zero) {
		info.GatewayIPs = append(info.GatewayIPs, gw.String())
	}

	return info, nil
}

func describeInterface(iface net.Interface) NetworkInterface {
	ni := NetworkInterface{
		Name:            iface.Name,
		HardwareAddress: iface.HardwareAddr.String(),
	}

	for _, f := range reportedFlags {
		if iface.Flags&f != 0 {
			ni.Flags = append(ni.Flags, f.String())
		}
	}

	// Addresses are best effort; an interface without any is still listed
	if addrs, err := iface.Addrs(); err == nil {
		for _, addr := range addrs {
			ni.IPAddresses = append(ni.IPAddresses, addr.String())
		}
	}

	return ni
}
