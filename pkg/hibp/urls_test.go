package hibp

import "testing"

const testBase = "https://haveibeenpwned.com/api/v2"

func TestAccountBreachesURL(t *testing.T) {
	tests := []struct {
		name     string
		account  string
		domain   string
		truncate bool
		want     string
	}{
		{
			name:    "plain account",
			account: "foo@example.com",
			want:    testBase + "/breachedaccount/foo@example.com",
		},
		{
			name:    "domain filter",
			account: "foo@example.com",
			domain:  "adobe.com",
			want:    testBase + "/breachedaccount/foo@example.com?domain=adobe.com",
		},
		{
			name:     "truncated",
			account:  "foo@example.com",
			truncate: true,
			want:     testBase + "/breachedaccount/foo@example.com?truncateResponse=true",
		},
		{
			name:     "domain filter and truncated share one question mark",
			account:  "foo@example.com",
			domain:   "adobe.com",
			truncate: true,
			want:     testBase + "/breachedaccount/foo@example.com?domain=adobe.com&truncateResponse=true",
		},
		{
			name:    "account needing path escaping",
			account: "weird user/name",
			want:    testBase + "/breachedaccount/weird%20user%2Fname",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accountBreachesURL(testBase, tt.account, tt.domain, tt.truncate)
			if got != tt.want {
				t.Errorf("accountBreachesURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBreachesURL(t *testing.T) {
	if got, want := breachesURL(testBase, ""), testBase+"/breaches"; got != want {
		t.Errorf("breachesURL() = %q, want %q", got, want)
	}
	if got, want := breachesURL(testBase, "adobe.com"), testBase+"/breaches?domain=adobe.com"; got != want {
		t.Errorf("breachesURL(domain) = %q, want %q", got, want)
	}
}

func TestBreachURL(t *testing.T) {
	if got, want := breachURL(testBase, "Adobe"), testBase+"/breach/Adobe"; got != want {
		t.Errorf("breachURL() = %q, want %q", got, want)
	}
	if got, want := breachURL(testBase, "Mate1 com"), testBase+"/breach/Mate1%20com"; got != want {
		t.Errorf("breachURL(escaped) = %q, want %q", got, want)
	}
}

func TestDataClassesURL(t *testing.T) {
	if got, want := dataClassesURL(testBase), testBase+"/dataclasses"; got != want {
		t.Errorf("dataClassesURL() = %q, want %q", got, want)
	}
}

func TestPastesURL(t *testing.T) {
	if got, want := pastesURL(testBase, "foo@example.com"), testBase+"/pasteaccount/foo@example.com"; got != want {
		t.Errorf("pastesURL() = %q, want %q", got, want)
	}
}
