package onlinepayments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const gcsHeaderPrefix = "x-gcs-"

// Signer produces v1HMAC Authorization headers.
type Signer struct {
	apiKeyID string
	secret   []byte
}

func NewSigner(apiKeyID, secretAPIKey string) *Signer {
	return &Signer{apiKeyID: apiKeyID, secret: []byte(secretAPIKey)}
}

// StringToSign lays out method, content type, date, the sorted X-GCS headers
// and the request path, one per line.
func StringToSign(method, contentType, date string, header http.Header, u *url.URL) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(method))
	b.WriteByte('\n')
	b.WriteString(contentType)
	b.WriteByte('\n')
	b.WriteString(date)
	b.WriteByte('\n')

	gcs := make([]string, 0, len(header))
	for name, values := range header {
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, gcsHeaderPrefix) {
			continue
		}
		gcs = append(gcs, lower+":"+canonicalValue(strings.Join(values, ",")))
	}
	sort.Strings(gcs)
	for _, h := range gcs {
		b.WriteString(h)
		b.WriteByte('\n')
	}

	b.WriteString(u.EscapedPath())
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	b.WriteByte('\n')

	return b.String()
}

func (s *Signer) Signature(stringToSign string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(stringToSign))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Authorization signs req; Content-Type, Date and X-GCS headers must already be set.
func (s *Signer) Authorization(req *http.Request) string {
	toSign := StringToSign(req.Method, req.Header.Get("Content-Type"), req.Header.Get("Date"), req.Header, req.URL)
	return fmt.Sprintf("GCS v1HMAC:%s:%s", s.apiKeyID, s.Signature(toSign))
}

// canonicalValue unfolds header values and trims whitespace.
func canonicalValue(v string) string {
	v = strings.ReplaceAll(v, "\r\n", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.TrimSpace(v)
}
