package equal_test

import (
	"net"
	"net/netip"
	"time"

	"go.llib.dev/eqkit/port/equal"
)

var _ equal.Equalable[time.Time] = (*time.Time)(nil)

var _ equal.Equalable[net.IP] = (*net.IP)(nil)

var _ equal.Comparable[time.Time] = (*time.Time)(nil)

var _ equal.Comparable[netip.Addr] = (*netip.Addr)(nil)
