package payment

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
)

var ErrSignatureComputationFailed = errors.New("signature computation failed")

// Fields is a flat key/value set submitted to the gateway.
type Fields map[string]string

// CanonicalOrder is the fixed order of redirect fields. Keys outside it are never sent or signed.
var CanonicalOrder = []string{
	"merchant_id",
	"merchant_key",
	"return_url",
	"cancel_url",
	"notify_url",
	"email_address",
	"m_payment_id",
	"amount",
	"item_name",
	"item_description",
	"subscription_type",
	"billing_date",
	"recurring_amount",
	"frequency",
	"cycles",
}

type Redirect struct {
	// QueryString is the ordered field pairs followed by signature=<hex>, ready to append after '?'.
	QueryString string
	Signature   string
}

// BuildSignedRedirect serializes fields in canonical order, skipping blank values, and signs
// the result with the optional passphrase. The passphrase never appears in QueryString.
func BuildSignedRedirect(fields Fields, passphrase string) (Redirect, error) {
	pairs := make([]string, 0, len(CanonicalOrder))
	for _, key := range CanonicalOrder {
		value, ok := fields[key]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		pairs = append(pairs, key+"="+Encode(value))
	}
	if len(pairs) == 0 {
		return Redirect{}, ErrSignatureComputationFailed
	}

	canonical := strings.Join(pairs, "&")
	signatureInput := canonical
	if passphrase != "" {
		signatureInput += "&passphrase=" + Encode(passphrase)
	}
	signature := md5Hex(signatureInput)

	return Redirect{
		QueryString: canonical + "&signature=" + signature,
		Signature:   signature,
	}, nil
}

// BuildAPISignature signs REST API headers: blank values dropped, keys sorted, passphrase
// appended after the sorted pairs without trimming.
func BuildAPISignature(fields Fields, passphrase string) string {
	keys := make([]string, 0, len(fields))
	for key, value := range fields {
		if strings.TrimSpace(value) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		pairs = append(pairs, key+"="+Encode(fields[key]))
	}
	if passphrase != "" {
		pairs = append(pairs, "passphrase="+escape(passphrase))
	}

	return md5Hex(strings.Join(pairs, "&"))
}

func md5Hex(value string) string {
	sum := md5.Sum([]byte(value))
	return hex.EncodeToString(sum[:])
}
