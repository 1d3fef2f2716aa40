package baseurl

import "strconv"

// Origin is the (scheme, host, port) tuple of a BaseURL. Port is the explicit
// port, else the scheme's known default, else 0.
type Origin struct {
	Scheme string
	Host   Host
	Port   uint16
}

// Origin returns the tuple origin of b. Every BaseURL has a host, so the
// origin is never opaque.
func (b *BaseURL) Origin() Origin {
	port, _ := b.PortOrKnownDefault()
	return Origin{
		Scheme: b.Scheme(),
		Host:   b.Host(),
		Port:   port,
	}
}

// String serializes the origin as "scheme://host[:port]", omitting the port
// when it is 0 or the scheme's default.
func (o Origin) String() string {
	s := o.Scheme + "://" + o.Host.String()
	if def, ok := KnownDefaultPort(o.Scheme); o.Port != 0 && (!ok || def != o.Port) {
		s += ":" + strconv.Itoa(int(o.Port))
	}
	return s
}
