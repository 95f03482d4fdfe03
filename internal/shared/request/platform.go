package request

import "strings"

type ClientType string

const (
	ClientWeb     ClientType = "web"
	ClientMobile  ClientType = "mobile"
	ClientUnknown ClientType = "unknown"
)

// ResolveClientType prefers the explicit X-Client-Type header; when the
// caller does not send one, a browser-looking User-Agent counts as web.
func ResolveClientType(clientHeader, userAgent string) ClientType {
	switch strings.ToLower(strings.TrimSpace(clientHeader)) {
	case "web":
		return ClientWeb
	case "mobile":
		return ClientMobile
	}

	if strings.Contains(userAgent, "Mozilla") {
		return ClientWeb
	}
	return ClientUnknown
}

func IsWebClient(t ClientType) bool {
	return t == ClientWeb
}
