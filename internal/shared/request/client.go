package request

import "strings"

type ClientType string

const (
	ClientWeb    ClientType = "web"
	ClientMobile ClientType = "mobile"
	ClientAPI    ClientType = "api"
)

// ResolveClientType prefers the explicit X-Client-Type header and falls back
// to sniffing the user agent.
func ResolveClientType(header, userAgent string) ClientType {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "web":
		return ClientWeb
	case "mobile":
		return ClientMobile
	case "api":
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return ClientAPI
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "cfnetwork"), strings.Contains(ua, "dart"):
		return ClientMobile
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	default:
		return ClientAPI
	}
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
