package hibp

import "net/url"

// DefaultBaseURL is the root of the unauthenticated v2 API.
const DefaultBaseURL = "https://haveibeenpwned.com/api/v2"

// accountBreachesURL addresses the per-account breach lookup. Both query
// parameters are optional and combine behind a single "?".
func accountBreachesURL(base, account, domain string, truncate bool) string {
	u := base + "/breachedaccount/" + url.PathEscape(account)
	q := url.Values{}
	if domain != "" {
		q.Set("domain", domain)
	}
	if truncate {
		q.Set("truncateResponse", "true")
	}
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// breachesURL addresses the full breach catalogue, optionally narrowed to the
// breaches of one site.
func breachesURL(base, domain string) string {
	u := base + "/breaches"
	if domain != "" {
		q := url.Values{}
		q.Set("domain", domain)
		u += "?" + q.Encode()
	}
	return u
}

// breachURL addresses a single breach by its stable name.
func breachURL(base, name string) string {
	return base + "/breach/" + url.PathEscape(name)
}

func dataClassesURL(base string) string {
	return base + "/dataclasses"
}

// pastesURL addresses the per-account paste lookup.
func pastesURL(base, account string) string {
	return base + "/pasteaccount/" + url.PathEscape(account)
}
