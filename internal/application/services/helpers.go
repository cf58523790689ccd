package services

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
)

// ComputeHash fingerprints an operation and its command for idempotency checks.
func ComputeHash(op domain.Operation, v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte(fmt.Sprintf("%+v", v))
	}
	hash := sha256.Sum256(append([]byte(op+":"), data...))
	return fmt.Sprintf("%x", hash)
}
